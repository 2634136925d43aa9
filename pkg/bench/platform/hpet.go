package platform

import "strings"

// classifyTimerSource classifies the boot timer-source from bcdedit output.
// Two boot keys control it: the platform clock is considered disabled only
// when `useplatformtick no` and `disabledynamictick yes` are both explicit.
// An absent key leaves the platform clock in play, so it classifies as
// enabled.
func classifyTimerSource(bcdeditOut string) TimerSource {
	var usePlatformTick, disableDynamicTick string

	for _, line := range strings.Split(bcdeditOut, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "useplatformtick":
			usePlatformTick = strings.ToLower(fields[1])
		case "disabledynamictick":
			disableDynamicTick = strings.ToLower(fields[1])
		}
	}

	if usePlatformTick == "no" && disableDynamicTick == "yes" {
		return TimerSourceDisabled
	}
	return TimerSourceEnabled
}
