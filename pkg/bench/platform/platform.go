// Package platform inspects the host the benchmark runs on: process
// elevation and the boot timer-source (HPET) configuration. Both are
// queried once and cached for the process lifetime.
package platform

import "sync"

// TimerSource classifies the boot timer-source configuration.
type TimerSource int

const (
	// TimerSourceUnknown means the status could not be determined.
	TimerSourceUnknown TimerSource = iota

	// TimerSourceEnabled means the platform clock (HPET) is in play.
	TimerSourceEnabled

	// TimerSourceDisabled means the platform clock is explicitly off.
	TimerSourceDisabled
)

// String returns the display form of the status.
func (t TimerSource) String() string {
	switch t {
	case TimerSourceEnabled:
		return "enabled"
	case TimerSourceDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Host caches per-process host facts. The zero value is ready to use.
type Host struct {
	elevOnce sync.Once
	elevated bool

	tsOnce sync.Once
	ts     TimerSource
	tsErr  error
}

// Elevated reports whether the process runs with elevated rights. The check
// runs once; the result is immutable for the process lifetime.
func (h *Host) Elevated() bool {
	h.elevOnce.Do(func() {
		h.elevated = processElevated()
	})
	return h.elevated
}

// TimerSource reports the boot timer-source status, queried once and cached.
func (h *Host) TimerSource() (TimerSource, error) {
	h.tsOnce.Do(func() {
		h.ts, h.tsErr = queryTimerSource()
	})
	return h.ts, h.tsErr
}
