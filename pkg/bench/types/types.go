// Package types provides the core data types for the timer-resolution
// benchmark: sweep parameters, measurement samples, and result records,
// together with the quantization rules shared by the sweep driver and the
// resolution-setter invocation.
package types

import (
	"errors"
	"fmt"
	"math"
)

// Params holds the sweep parameters. Field names mirror the keys in
// appsettings.json.
type Params struct {
	// StartValue is the first requested resolution in milliseconds.
	StartValue float64 `mapstructure:"StartValue" json:"StartValue"`

	// IncrementValue is the step between requested resolutions in milliseconds.
	IncrementValue float64 `mapstructure:"IncrementValue" json:"IncrementValue"`

	// EndValue is the inclusive upper bound in milliseconds.
	EndValue float64 `mapstructure:"EndValue" json:"EndValue"`

	// SampleValue is the number of sleep samples taken per round.
	SampleValue int `mapstructure:"SampleValue" json:"SampleValue"`
}

// ErrInvalidParams is wrapped by all parameter validation failures.
var ErrInvalidParams = errors.New("invalid benchmark parameters")

// Validate checks the sweep invariants. A zero or negative increment would
// make the sweep loop never terminate, so it is rejected here rather than
// discovered mid-run.
func (p Params) Validate() error {
	switch {
	case p.StartValue <= 0:
		return fmt.Errorf("%w: start value must be positive, got %v", ErrInvalidParams, p.StartValue)
	case p.IncrementValue <= 0:
		return fmt.Errorf("%w: increment value must be positive, got %v", ErrInvalidParams, p.IncrementValue)
	case p.EndValue <= 0:
		return fmt.Errorf("%w: end value must be positive, got %v", ErrInvalidParams, p.EndValue)
	case p.StartValue > p.EndValue:
		return fmt.Errorf("%w: start value %v exceeds end value %v", ErrInvalidParams, p.StartValue, p.EndValue)
	case p.SampleValue <= 0:
		return fmt.Errorf("%w: sample value must be positive, got %v", ErrInvalidParams, p.SampleValue)
	}
	return nil
}

// Iterations returns the planned iteration count used for progress
// reporting. The sweep itself is driven by cursor comparison, not by this
// count, so the final point at or below EndValue is always evaluated.
func (p Params) Iterations() int {
	return int(math.Ceil((p.EndValue - p.StartValue) / p.IncrementValue))
}

// Quantize rounds a requested resolution to four decimal digits. The sweep
// cursor accumulates floating-point error as increments are added; rounding
// before any further use keeps every round's resolution reproducible.
func Quantize(ms float64) float64 {
	return math.Round(ms*10000) / 10000
}

// SetterUnits converts a resolution in milliseconds to the integer unit
// expected by the resolution-setter (hundreds of nanoseconds). Quantization
// is applied first so repeated cursor additions cannot drift the unit value.
func SetterUnits(ms float64) int {
	return int(math.Round(Quantize(ms) * 10000))
}

// Sample is one measurement reported by the sampler.
type Sample struct {
	// AvgMs is the mean observed sleep delta in milliseconds.
	AvgMs float64

	// StdevMs is the standard deviation of the observed deltas in milliseconds.
	StdevMs float64
}

// Degenerate reports whether the sample carries no usable signal. The
// sampler emits zeros when it could not measure; such rounds are dropped.
func (s Sample) Degenerate() bool {
	return s.AvgMs == 0 || s.StdevMs == 0
}

// Record is one persisted benchmark round.
type Record struct {
	// ResolutionMs is the requested (quantized) resolution.
	ResolutionMs float64

	// DeltaMs is the mean observed sleep delta at that resolution.
	DeltaMs float64

	// StdevMs is the standard deviation of the observed deltas.
	StdevMs float64
}
