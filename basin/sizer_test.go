package basin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbasin/basin"
	"github.com/katalvlaran/lvbasin/gridgraph"
)

// TestSizer_Memoizes checks the second query is served from cache and
// returns the same value as the first.
func TestSizer_Memoizes(t *testing.T) {
	gg := mustGrid(t, sampleRows)
	fills := 0
	s := basin.NewSizer(gg, basin.WithOnVisit(func(c gridgraph.Coord, depth int) error {
		if depth == 0 {
			fills++
		}
		return nil
	}))
	seed := gridgraph.Coord{Row: 2, Col: 2}

	assert.False(t, s.Cached(seed))
	first, err := s.Size(seed)
	require.NoError(t, err)
	assert.True(t, s.Cached(seed))

	for i := 0; i < 3; i++ {
		again, err := s.Size(seed)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, 14, first)
	assert.Equal(t, 1, fills, "fill should run once per seed")
	assert.Equal(t, 1, s.Len())
}

// TestSizer_ErrorsNotCached leaves failed seeds out of the memo table.
func TestSizer_ErrorsNotCached(t *testing.T) {
	s := basin.NewSizer(mustGrid(t, sampleRows))
	wall := gridgraph.Coord{Row: 0, Col: 2}

	_, err := s.Size(wall)
	require.ErrorIs(t, err, basin.ErrSeedIsWall)
	assert.False(t, s.Cached(wall))
	assert.Zero(t, s.Len())
}

// TestSizer_SizeAll sizes seeds in order.
func TestSizer_SizeAll(t *testing.T) {
	s := basin.NewSizer(mustGrid(t, sampleRows))
	seeds := []gridgraph.Coord{
		{Row: 0, Col: 1},
		{Row: 0, Col: 9},
		{Row: 2, Col: 2},
		{Row: 4, Col: 6},
	}
	basins, err := s.SizeAll(context.Background(), seeds)
	require.NoError(t, err)
	require.Len(t, basins, 4)
	for i, b := range basins {
		assert.Equal(t, seeds[i], b.Seed)
	}
	assert.Equal(t, []int{3, 9, 14, 9}, []int{basins[0].Size, basins[1].Size, basins[2].Size, basins[3].Size})
}

// TestLargestAndProduct covers ordering, truncation and the empty product.
func TestLargestAndProduct(t *testing.T) {
	basins := []basin.Basin{{Size: 3}, {Size: 9}, {Size: 14}, {Size: 9}}

	top := basin.Largest(basins, 3)
	assert.Equal(t, []int{14, 9, 9}, top)
	assert.Equal(t, 1134, basin.Product(top))

	assert.Equal(t, []int{14, 9, 9, 3}, basin.Largest(basins, 10))
	assert.Empty(t, basin.Largest(basins, 0))
	assert.Empty(t, basin.Largest(nil, 3))
	assert.Equal(t, 1, basin.Product(nil))
}
