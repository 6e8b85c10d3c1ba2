// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-aware neighbor lookups
//   - Identification of connected components of non-wall cells
//
// Cells equal to Wall are impassable; every other cell is open.
package gridgraph

import "fmt"

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCellRange if a value lies outside [0, opts.Wall].
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		for c, v := range values[r] {
			if v < 0 || v > opts.Wall {
				return nil, fmt.Errorf("%w: %d at (%d, %d)", ErrCellRange, v, r, c)
			}
			cells[r][c] = v
		}
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		Wall:            opts.Wall,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// At returns the value at c. The caller must ensure c is in bounds.
func (gg *GridGraph) At(c Coord) int {
	return gg.CellValues[c.Row][c.Col]
}

// ValueOr returns the value at c, or fallback when c is outside the grid.
func (gg *GridGraph) ValueOr(c Coord, fallback int) int {
	if !gg.InBounds(c) {
		return fallback
	}
	return gg.CellValues[c.Row][c.Col]
}

// IsWall reports whether c is in bounds and holds the wall value.
func (gg *GridGraph) IsWall(c Coord) bool {
	return gg.InBounds(c) && gg.CellValues[c.Row][c.Col] == gg.Wall
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the in-bounds neighbors of c in offset order.
func (gg *GridGraph) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := c.Add(d[0], d[1])
		if gg.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) Index(c Coord) int {
	return c.Row*gg.Width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Coord {
	return Coord{Row: idx / gg.Width, Col: idx % gg.Width}
}
