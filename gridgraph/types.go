// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvbasin.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellRange indicates a cell value outside [0, Wall].
	ErrCellRange = errors.New("gridgraph: cell value out of range")
)

// DefaultWall is the height that blocks movement between cells.
const DefaultWall = 9

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Coord identifies a cell by row and column. It is comparable and is
// used directly as a map key.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String renders the coordinate as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Add returns c shifted by the given row and column delta.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Wall is the cell value that is never traversed. It is also the
	// maximum accepted cell value.
	Wall int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Wall=9, Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Wall: DefaultWall,
		Conn: Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[row][col] holds the original input value.
// neighborOffsets is precomputed as (dRow, dCol) pairs.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	Wall            int
	neighborOffsets [][2]int
}
