// Package basin flood-fills regions of a gridgraph.GridGraph outward from a
// seed cell, never crossing wall cells, and memoizes the resulting sizes.
//
// The fill uses an explicit FIFO queue, so stack usage stays constant no
// matter how large a connected region is.
package basin

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvbasin/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Coord
	depth int
}

// walker encapsulates mutable fill state.
type walker struct {
	grid    *gridgraph.GridGraph
	opts    FillOptions
	ctx     context.Context
	offsets [][2]int
	queue   []queueItem
	res     *FillResult
}

// Fill runs a breadth-first flood fill on g starting from seed,
// applying any number of functional Options.
// Returns ErrGridNil, ErrSeedOutOfBounds or ErrSeedIsWall for invalid input,
// ErrOptionViolation for bad options, ErrCellLimit when MaxCells is exceeded,
// the context error on cancellation, or any user-supplied hook error.
func Fill(g *gridgraph.GridGraph, seed gridgraph.Coord, opts ...Option) (*FillResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(seed) {
		return nil, fmt.Errorf("%w: %v", ErrSeedOutOfBounds, seed)
	}
	if g.IsWall(seed) {
		return nil, fmt.Errorf("%w: %v", ErrSeedIsWall, seed)
	}

	offsets := g.NeighborOffsets()
	if o.ReverseNeighbors {
		rev := make([][2]int, len(offsets))
		for i, d := range offsets {
			rev[len(offsets)-1-i] = d
		}
		offsets = rev
	}

	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		offsets: offsets,
		queue:   make([]queueItem, 0, 16),
		res: &FillResult{
			Depth: make(map[gridgraph.Coord]int),
		},
	}
	if err := w.enqueue(seed, 0); err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// enqueue marks c visited at depth d and appends it to the queue.
func (w *walker) enqueue(c gridgraph.Coord, d int) error {
	w.res.Depth[c] = d
	if w.opts.MaxCells > 0 && len(w.res.Depth) > w.opts.MaxCells {
		return fmt.Errorf("%w: more than %d cells", ErrCellLimit, w.opts.MaxCells)
	}
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
	return nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("basin: OnVisit error at %v: %w", item.cell, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors adds every unvisited, in-bounds, non-wall neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	for _, d := range w.offsets {
		n := item.cell.Add(d[0], d[1])
		if !w.grid.InBounds(n) || w.grid.At(n) == w.grid.Wall {
			continue
		}
		if _, seen := w.res.Depth[n]; seen {
			continue
		}
		if err := w.enqueue(n, item.depth+1); err != nil {
			return err
		}
	}
	return nil
}
