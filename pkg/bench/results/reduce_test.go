package results

import (
	"testing"

	"github.com/mkraun/timerbench/pkg/bench/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_Empty(t *testing.T) {
	_, found := Reduce(nil)
	assert.False(t, found)

	_, found = Reduce([]types.Record{})
	assert.False(t, found)
}

func TestReduce_UniqueMinimum(t *testing.T) {
	records := []types.Record{
		{ResolutionMs: 0.5, DeltaMs: 1.5, StdevMs: 0.2},
		{ResolutionMs: 0.6, DeltaMs: 1.0, StdevMs: 0.1},
		{ResolutionMs: 0.7, DeltaMs: 1.2, StdevMs: 0.05},
	}

	best, found := Reduce(records)
	require.True(t, found)
	assert.Equal(t, 0.6, best.ResolutionMs)
}

func TestReduce_TieBrokenByStdev(t *testing.T) {
	records := []types.Record{
		{ResolutionMs: 0.5, DeltaMs: 1.0, StdevMs: 0.2},
		{ResolutionMs: 0.6, DeltaMs: 1.0, StdevMs: 0.1},
	}

	best, found := Reduce(records)
	require.True(t, found)
	assert.Equal(t, 0.6, best.ResolutionMs)
}

func TestReduce_FullTieFirstWins(t *testing.T) {
	records := []types.Record{
		{ResolutionMs: 0.5, DeltaMs: 1.0, StdevMs: 0.1},
		{ResolutionMs: 0.6, DeltaMs: 1.0, StdevMs: 0.1},
	}

	best, found := Reduce(records)
	require.True(t, found)
	assert.Equal(t, 0.5, best.ResolutionMs, "earlier record (lower resolution) wins a full tie")
}

func TestReduce_TieStableUnderNonTiedPermutation(t *testing.T) {
	tied1 := types.Record{ResolutionMs: 0.5, DeltaMs: 1.0, StdevMs: 0.1}
	tied2 := types.Record{ResolutionMs: 0.8, DeltaMs: 1.0, StdevMs: 0.1}
	other := types.Record{ResolutionMs: 0.6, DeltaMs: 2.0, StdevMs: 0.05}

	permutations := [][]types.Record{
		{tied1, tied2, other},
		{tied1, other, tied2},
		{other, tied1, tied2},
	}

	for _, perm := range permutations {
		best, found := Reduce(perm)
		require.True(t, found)
		assert.Equal(t, tied1.ResolutionMs, best.ResolutionMs)
	}
}

func TestReduce_SweepScenario(t *testing.T) {
	// Sweep 0.5..0.7 by 0.1 where round two is the unique minimum.
	records := []types.Record{
		{ResolutionMs: 0.5, DeltaMs: 1.4, StdevMs: 0.2},
		{ResolutionMs: 0.6, DeltaMs: 1.0, StdevMs: 0.1},
		{ResolutionMs: 0.7, DeltaMs: 1.1, StdevMs: 0.1},
	}

	best, found := Reduce(records)
	require.True(t, found)
	assert.Equal(t, 0.6, best.ResolutionMs)
	assert.Equal(t, 1.0, best.DeltaMs)
}
