package basin

import (
	"context"
	"slices"
	"sync"

	"github.com/katalvlaran/lvbasin/gridgraph"
)

// Sizer computes basin sizes over a fixed grid and memoizes them by seed.
// The grid never changes, so a cached size stays valid for the Sizer's
// lifetime. Sizer is safe for concurrent use.
type Sizer struct {
	grid *gridgraph.GridGraph
	opts []Option

	mu    sync.RWMutex
	sizes map[gridgraph.Coord]int
}

// NewSizer returns a Sizer over g. opts are applied to every Fill.
func NewSizer(g *gridgraph.GridGraph, opts ...Option) *Sizer {
	return &Sizer{
		grid:  g,
		opts:  opts,
		sizes: make(map[gridgraph.Coord]int),
	}
}

// Size returns the number of cells reachable from seed, filling on the
// first request and answering from the memo table afterwards.
func (s *Sizer) Size(seed gridgraph.Coord) (int, error) {
	return s.SizeContext(context.Background(), seed)
}

// SizeContext is Size with cancellation.
func (s *Sizer) SizeContext(ctx context.Context, seed gridgraph.Coord) (int, error) {
	s.mu.RLock()
	n, ok := s.sizes[seed]
	s.mu.RUnlock()
	if ok {
		return n, nil
	}

	opts := append(slices.Clip(s.opts), WithContext(ctx))
	res, err := Fill(s.grid, seed, opts...)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.sizes[seed] = res.Size()
	s.mu.Unlock()
	return res.Size(), nil
}

// Cached reports whether seed already has a memoized size.
func (s *Sizer) Cached(seed gridgraph.Coord) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sizes[seed]
	return ok
}

// Len returns the number of memoized sizes.
func (s *Sizer) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sizes)
}

// SizeAll sizes every seed and returns the basins in seed order.
func (s *Sizer) SizeAll(ctx context.Context, seeds []gridgraph.Coord) ([]Basin, error) {
	out := make([]Basin, 0, len(seeds))
	for _, seed := range seeds {
		n, err := s.SizeContext(ctx, seed)
		if err != nil {
			return nil, err
		}
		out = append(out, Basin{Seed: seed, Size: n})
	}
	return out, nil
}

// Largest returns the n biggest basin sizes in descending order.
// If fewer than n basins exist, all sizes are returned.
// Ties are immaterial: only the values are reported.
func Largest(basins []Basin, n int) []int {
	sizes := make([]int, len(basins))
	for i, b := range basins {
		sizes[i] = b.Size
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	if n < len(sizes) {
		sizes = sizes[:max(n, 0)]
	}
	return sizes
}

// Product multiplies sizes together. The empty product is 1.
func Product(sizes []int) int {
	p := 1
	for _, s := range sizes {
		p *= s
	}
	return p
}
