package results

import (
	"testing"

	"github.com/mkraun/timerbench/pkg/bench/types"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	records := []types.Record{
		{ResolutionMs: 0.5, DeltaMs: 1.0, StdevMs: 0.1},
		{ResolutionMs: 0.6, DeltaMs: 2.0, StdevMs: 0.1},
		{ResolutionMs: 0.7, DeltaMs: 3.0, StdevMs: 0.1},
	}

	s := Summarize(records)
	assert.Equal(t, 3, s.Rounds)
	assert.InDelta(t, 2.0, s.MeanDeltaMs, 1e-12)
	assert.InDelta(t, 1.0, s.StdevDeltaMs, 1e-12)
	assert.Equal(t, 1.0, s.MinDeltaMs)
	assert.Equal(t, 3.0, s.MaxDeltaMs)
}

func TestSummarize_SingleRound(t *testing.T) {
	s := Summarize([]types.Record{{ResolutionMs: 0.5, DeltaMs: 1.0, StdevMs: 0.1}})
	assert.Equal(t, 1, s.Rounds)
	assert.Equal(t, 0.0, s.StdevDeltaMs)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
