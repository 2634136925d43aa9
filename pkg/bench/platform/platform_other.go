//go:build !windows

package platform

import (
	"errors"
	"os"
)

// The benchmark targets windows; these stubs keep the package building and
// testable everywhere.

func processElevated() bool {
	return os.Geteuid() == 0
}

func queryTimerSource() (TimerSource, error) {
	return TimerSourceUnknown, errors.New("timer-source inspection requires windows")
}

// DisableTimerSource is unavailable off windows.
func (h *Host) DisableTimerSource() error {
	return errors.New("timer-source remediation requires windows")
}
