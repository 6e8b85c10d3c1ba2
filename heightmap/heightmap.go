// Package heightmap parses digit grids and locates their low points.
//
// A heightmap is a rectangular grid of heights in [0, 9]. A low point is a
// cell strictly lower than each of its four orthogonal neighbors; neighbors
// outside the grid count as MaxHeight, so edges never disqualify a cell.
package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lvbasin/gridgraph"
)

// MaxHeight is the tallest cell value. It also stands in for neighbors
// beyond the grid edge and marks basin boundaries.
const MaxHeight = gridgraph.DefaultWall

// Coord is re-exported so callers rarely need to import gridgraph.
type Coord = gridgraph.Coord

// Heightmap is an immutable grid of heights.
type Heightmap struct {
	grid *gridgraph.GridGraph
}

// New builds a Heightmap from already-decoded rows.
// Rows are copied; see gridgraph.NewGridGraph for the validation rules.
func New(rows [][]int) (*Heightmap, error) {
	gg, err := gridgraph.NewGridGraph(rows, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}
	return &Heightmap{grid: gg}, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heightmap: open input: %w", err)
	}
	defer f.Close()

	hm, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hm, nil
}

// Parse reads one row per line. Blank lines are skipped and a trailing
// carriage return is tolerated; every other character must be a decimal
// digit. The grid is sized from the input.
func Parse(r io.Reader) (*Heightmap, error) {
	sc := bufio.NewScanner(r)
	var (
		rows  [][]int
		width int
		line  int
	)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrNonDigit, ch, line, col+1)
			}
			row = append(row, int(ch-'0'))
		}
		if len(rows) == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRaggedRow, line, len(row), width)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	return New(rows)
}

// Rows returns the number of rows.
func (h *Heightmap) Rows() int { return h.grid.Height }

// Cols returns the number of columns.
func (h *Heightmap) Cols() int { return h.grid.Width }

// Height returns the height at c. c must be in bounds.
func (h *Heightmap) Height(c Coord) int { return h.grid.At(c) }

// Grid exposes the underlying grid graph for traversal.
func (h *Heightmap) Grid() *gridgraph.GridGraph { return h.grid }
