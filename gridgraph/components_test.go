// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 3×4 grid
// with orthogonal connectivity (Conn4).
//
// Grid (9 = wall):
//
//	9 1 1 9
//	1 1 9 9
//	9 9 2 2
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{9, 1, 1, 9},
		{1, 1, 9, 9},
		{9, 9, 2, 2},
	}
	gg, err := NewGridGraph(grid, DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	// Collect sizes and sort for comparison.
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 tests ConnectedComponents on a 5×5 grid
// using diagonal connectivity (Conn8) to catch regions touching at corners.
//
// With Conn8, all 9 open cells connect through diagonal hops into a single region.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 9, 9, 9, 1},
		{9, 1, 9, 1, 9},
		{9, 9, 1, 9, 9},
		{9, 1, 9, 1, 9},
		{1, 9, 9, 9, 1},
	}
	opts := DefaultGridOptions()
	opts.Conn = Conn8
	gg, err := NewGridGraph(grid, opts)
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}
}

// TestConnectedComponents_AllWallAndSingle tests edge cases:
//   - grid made only of walls → zero components
//   - single open cell → one component of size 1
func TestConnectedComponents_AllWallAndSingle(t *testing.T) {
	gg1, _ := NewGridGraph([][]int{{9, 9}, {9, 9}}, DefaultGridOptions())
	if comps := gg1.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all-wall: got %d components; want 0", len(comps))
	}

	gg2, _ := NewGridGraph([][]int{{9, 0}}, DefaultGridOptions())
	comps2 := gg2.ConnectedComponents()
	if len(comps2) != 1 {
		t.Fatalf("single open: got %d components; want 1", len(comps2))
	}
	if len(comps2[0]) != 1 {
		t.Errorf("single open: component size = %d; want 1", len(comps2[0]))
	}
}

// TestComponentOf maps cells back to their component index.
func TestComponentOf(t *testing.T) {
	gg, _ := NewGridGraph([][]int{{0, 9, 0}}, DefaultGridOptions())
	comps := gg.ConnectedComponents()
	if got := gg.ComponentOf(comps, Coord{Row: 0, Col: 2}); got != 1 {
		t.Errorf("ComponentOf(0,2) = %d; want 1", got)
	}
	if got := gg.ComponentOf(comps, Coord{Row: 0, Col: 1}); got != -1 {
		t.Errorf("ComponentOf(wall) = %d; want -1", got)
	}
	if got := gg.ComponentOf(comps, Coord{Row: 5, Col: 5}); got != -1 {
		t.Errorf("ComponentOf(out of bounds) = %d; want -1", got)
	}
}
