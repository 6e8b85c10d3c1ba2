// Package basin provides tunable options and error definitions
// for flood-filling basins over a gridgraph.GridGraph.
package basin

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbasin/gridgraph"
)

// Sentinel errors for flood-fill execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("basin: grid is nil")

	// ErrSeedOutOfBounds is returned when the seed lies outside the grid.
	ErrSeedOutOfBounds = errors.New("basin: seed out of bounds")

	// ErrSeedIsWall is returned when the seed cell is itself a wall.
	ErrSeedIsWall = errors.New("basin: seed is a wall cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("basin: invalid option supplied")

	// ErrCellLimit is returned when the fill grows beyond MaxCells.
	ErrCellLimit = errors.New("basin: cell limit exceeded")
)

// Option configures Fill behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it will be recorded
// internally and surfaced as ErrOptionViolation when Fill is invoked.
type Option func(*FillOptions)

// FillOptions holds parameters and callbacks to customize a flood fill.
type FillOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a cell is dequeued. If it returns an error,
	// the fill aborts and propagates that error.
	OnVisit func(c gridgraph.Coord, depth int) error

	// ReverseNeighbors walks neighbor offsets back to front. The visited
	// set is the same either way; only Order changes.
	ReverseNeighbors bool

	// MaxCells, if > 0, fails the fill with ErrCellLimit once more cells
	// than this have been discovered. 0 means no limit.
	MaxCells int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a FillOptions with sane defaults:
//   - Context.Background()
//   - no-op OnVisit hook
//   - forward neighbor order
//   - no cell limit.
func DefaultOptions() FillOptions {
	return FillOptions{
		Ctx:     context.Background(),
		OnVisit: func(gridgraph.Coord, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *FillOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the fill.
func WithOnVisit(fn func(c gridgraph.Coord, depth int) error) Option {
	return func(o *FillOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithReversedNeighbors visits neighbors in reverse offset order.
func WithReversedNeighbors() Option {
	return func(o *FillOptions) {
		o.ReverseNeighbors = true
	}
}

// WithMaxCells bounds the number of cells a fill may discover.
//
//	n > 0: limit to n cells
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCells(n int) Option {
	return func(o *FillOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCells cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

// FillResult holds the outcome of a flood fill:
//   - Order: cells in visit sequence, seed first.
//   - Depth: BFS distance of every visited cell from the seed.
type FillResult struct {
	Order []gridgraph.Coord
	Depth map[gridgraph.Coord]int
}

// Size is the number of distinct cells reached.
func (r *FillResult) Size() int {
	return len(r.Depth)
}

// Contains reports whether c was reached.
func (r *FillResult) Contains(c gridgraph.Coord) bool {
	_, ok := r.Depth[c]
	return ok
}

// Basin pairs a low point with the size of the region filled from it.
type Basin struct {
	Seed gridgraph.Coord `json:"seed" yaml:"seed"`
	Size int             `json:"size" yaml:"size"`
}
