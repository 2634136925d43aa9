// Package sweep drives the benchmark: it iterates requested resolutions
// from start to end, runs one measurement round per value, and records every
// valid round as it happens.
package sweep

import (
	"fmt"

	"github.com/mkraun/timerbench/pkg/bench/logging"
	"github.com/mkraun/timerbench/pkg/bench/types"
)

// Rounder runs a single measurement round at a requested resolution.
type Rounder interface {
	RunRound(resolutionMs float64, samples int) (types.Sample, error)
}

// Appender persists one result record durably before returning.
type Appender interface {
	Append(types.Record) error
}

// Progress describes the state of an in-flight sweep after a round.
type Progress struct {
	// Round is the 1-based round number.
	Round int

	// Planned is the iteration count estimated up front, for display only.
	Planned int

	// ResolutionMs is the quantized resolution evaluated this round.
	ResolutionMs float64

	// Sample is the measurement obtained this round.
	Sample types.Sample

	// Skipped is true when the sample was degenerate and not recorded.
	Skipped bool
}

// cursorSlack bounds the floating-point error tolerated when comparing the
// cursor against the end value, as a fraction of one increment. Accumulated
// rounding error from repeated addition sits far below this; a genuine extra
// step sits far above it.
const cursorSlack = 1e-9

// Driver owns the sweep parameters and iteration cursor for one run.
type Driver struct {
	rounds Rounder
	store  Appender
	log    *logging.Logger

	// OnRound, when set, is called after every round. The sweep is strictly
	// sequential, so the callback never runs concurrently.
	OnRound func(Progress)
}

// New creates a sweep driver.
func New(rounds Rounder, store Appender) *Driver {
	return &Driver{
		rounds: rounds,
		store:  store,
		log:    logging.Get("sweep"),
	}
}

// Run executes the sweep over the given parameters and returns the recorded
// rounds in ascending resolution order. A sampler or parse failure aborts
// the sweep and is returned along with the rounds recorded so far; a
// degenerate sample only drops its own round.
func (d *Driver) Run(p types.Params) ([]types.Record, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	planned := p.Iterations()
	limit := p.EndValue + p.IncrementValue*cursorSlack

	d.log.Info("sweep starting",
		"start_ms", p.StartValue,
		"end_ms", p.EndValue,
		"increment_ms", p.IncrementValue,
		"samples", p.SampleValue)

	var records []types.Record
	round := 0
	for cur := p.StartValue; cur <= limit; cur += p.IncrementValue {
		round++
		res := types.Quantize(cur)

		sample, err := d.rounds.RunRound(res, p.SampleValue)
		if err != nil {
			return records, fmt.Errorf("round %d (%.4f ms): %w", round, res, err)
		}

		if sample.Degenerate() {
			d.log.Warn("discarding degenerate measurement",
				"resolution_ms", res, "avg_ms", sample.AvgMs, "stdev_ms", sample.StdevMs)
			d.notify(Progress{Round: round, Planned: planned, ResolutionMs: res, Sample: sample, Skipped: true})
			continue
		}

		rec := types.Record{ResolutionMs: res, DeltaMs: sample.AvgMs, StdevMs: sample.StdevMs}
		if err := d.store.Append(rec); err != nil {
			return records, fmt.Errorf("recording round %d: %w", round, err)
		}
		records = append(records, rec)

		d.log.Debug("round recorded",
			"round", round, "resolution_ms", res, "delta_ms", rec.DeltaMs, "stdev_ms", rec.StdevMs)
		d.notify(Progress{Round: round, Planned: planned, ResolutionMs: res, Sample: sample})
	}

	d.log.Info("sweep finished", "rounds", round, "recorded", len(records))
	return records, nil
}

func (d *Driver) notify(p Progress) {
	if d.OnRound != nil {
		d.OnRound(p)
	}
}
