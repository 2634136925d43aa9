package results

import (
	"github.com/mkraun/timerbench/pkg/bench/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the deltas observed across all recorded rounds.
type Summary struct {
	Rounds       int
	MeanDeltaMs  float64
	StdevDeltaMs float64
	MinDeltaMs   float64
	MaxDeltaMs   float64
}

// Summarize computes summary statistics over the recorded rounds.
// The zero Summary is returned for an empty input.
func Summarize(records []types.Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	deltas := make([]float64, len(records))
	for i, r := range records {
		deltas[i] = r.DeltaMs
	}

	stdev := 0.0
	if len(deltas) > 1 {
		stdev = stat.StdDev(deltas, nil)
	}

	return Summary{
		Rounds:       len(records),
		MeanDeltaMs:  stat.Mean(deltas, nil),
		StdevDeltaMs: stdev,
		MinDeltaMs:   floats.Min(deltas),
		MaxDeltaMs:   floats.Max(deltas),
	}
}
