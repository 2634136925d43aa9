package proc

import (
	"os/exec"
)

// systemExecer is the Execer backed by real processes.
type systemExecer struct{}

// SystemExecer returns an Execer that spawns real processes.
func SystemExecer() Execer {
	return systemExecer{}
}

// StartDetached launches the executable in the background. Stdout is left
// nil so the child writes to the null device. The child is reaped in the
// background; its exit status is irrelevant because it is terminated by
// image name at the end of the round.
func (systemExecer) StartDetached(path string, args ...string) error {
	cmd := exec.Command(path, args...)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() { _ = cmd.Wait() }()
	return nil
}

// CaptureOutput runs the executable to completion and returns its stdout.
func (systemExecer) CaptureOutput(path string, args ...string) ([]byte, error) {
	return exec.Command(path, args...).Output()
}
