//go:build !windows

package proc

import (
	"os/exec"
	"strings"
	"syscall"
)

// detach puts the child in its own process group so it is not tied to our
// terminal session.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// KillByName terminates matching processes via pkill. The benchmark targets
// windows; this exists so the package builds and tests everywhere.
func (systemExecer) KillByName(name string) (int, error) {
	name = strings.TrimSuffix(name, ".exe")
	err := exec.Command("pkill", "-x", name).Run()
	if err != nil {
		// pkill exits 1 when nothing matched; that is not a failure here.
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}
