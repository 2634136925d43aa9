//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// kernelKeyPath holds the kernel session-manager registry key controlling
// global timer-resolution requests.
const kernelKeyPath = `SYSTEM\CurrentControlSet\Control\Session Manager\kernel`

// processElevated checks the process token for elevation.
func processElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// queryTimerSource reads the current boot entry and classifies the
// timer-source keys.
func queryTimerSource() (TimerSource, error) {
	out, err := exec.Command("bcdedit", "/enum", "{current}").Output()
	if err != nil {
		return TimerSourceUnknown, fmt.Errorf("querying boot configuration: %w", err)
	}
	return classifyTimerSource(string(out)), nil
}

// DisableTimerSource rewrites the boot configuration so the platform clock
// is not used and dynamic ticks are off, and enables global timer-resolution
// requests in the registry. Takes effect after a reboot.
func (h *Host) DisableTimerSource() error {
	steps := [][]string{
		{"bcdedit", "/set", "useplatformtick", "no"},
		{"bcdedit", "/set", "disabledynamictick", "yes"},
	}
	for _, step := range steps {
		if out, err := exec.Command(step[0], step[1:]...).CombinedOutput(); err != nil {
			return fmt.Errorf("%s: %w: %s", strings.Join(step, " "), err, strings.TrimSpace(string(out)))
		}
	}

	key, err := registry.OpenKey(registry.LOCAL_MACHINE, kernelKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("opening kernel registry key: %w", err)
	}
	defer key.Close()

	if err := key.SetDWordValue("GlobalTimerResolutionRequests", 1); err != nil {
		return fmt.Errorf("setting GlobalTimerResolutionRequests: %w", err)
	}
	return nil
}
