// Package proc controls the per-round lifecycle of the external helper
// processes: the resolution setter (detached, killed by image name after
// every round) and the sleep sampler (blocking, stdout captured).
package proc

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mkraun/timerbench/pkg/bench/logging"
	"github.com/mkraun/timerbench/pkg/bench/measure"
	"github.com/mkraun/timerbench/pkg/bench/types"
)

// SettleDelay is the pause between applying a resolution change and
// measuring its effect.
const SettleDelay = time.Millisecond

// Execer abstracts process control so the controller can be tested without
// spawning real processes.
type Execer interface {
	// StartDetached launches the executable in the background with its
	// stdout discarded and no console window, without waiting for it to
	// exit.
	StartDetached(path string, args ...string) error

	// CaptureOutput runs the executable to completion and returns its
	// standard output.
	CaptureOutput(path string, args ...string) ([]byte, error)

	// KillByName force-terminates every process whose image name matches,
	// returning how many were terminated.
	KillByName(name string) (int, error)
}

// Controller runs one measurement round at a time.
type Controller struct {
	exec    Execer
	setter  string
	sampler string
	kill    string // image name used for cleanup
	settle  time.Duration
	log     *logging.Logger
}

// NewController creates a controller for the given helper executables.
func NewController(exec Execer, setterPath, samplerPath string) *Controller {
	return &Controller{
		exec:    exec,
		setter:  setterPath,
		sampler: samplerPath,
		kill:    filepath.Base(setterPath),
		settle:  SettleDelay,
		log:     logging.Get("proc"),
	}
}

// RunRound applies one requested resolution, waits for it to settle, runs
// the sampler, and parses the measurement. Any stray setter instance is
// terminated before RunRound returns, even when an earlier step failed: a
// surviving setter would corrupt the next round's measurement.
//
// A failed setter spawn is logged and the round proceeds, yielding a
// baseline measurement. Sampler and parse failures are returned to the
// caller and abort the sweep.
func (c *Controller) RunRound(resolutionMs float64, samples int) (types.Sample, error) {
	defer c.cleanup()

	units := types.SetterUnits(resolutionMs)

	// The spawn is handed to a worker so slow process creation cannot stall
	// the controller, but its outcome is observed before sequencing
	// continues.
	spawned := make(chan error, 1)
	go func() {
		spawned <- c.exec.StartDetached(c.setter, "--resolution", strconv.Itoa(units), "--no-console")
	}()
	if err := <-spawned; err != nil {
		c.log.Warn("failed to start resolution setter",
			"resolution_ms", resolutionMs, "error", err)
	}

	time.Sleep(c.settle)

	out, err := c.exec.CaptureOutput(c.sampler, "--samples", strconv.Itoa(samples))
	if err != nil {
		return types.Sample{}, fmt.Errorf("running sampler: %w", err)
	}

	sample, err := measure.Parse(out)
	if err != nil {
		return types.Sample{}, fmt.Errorf("sampler output: %w", err)
	}

	return sample, nil
}

// cleanup terminates all running setter instances by image name. This is
// best-effort: failures are logged, never fatal.
func (c *Controller) cleanup() {
	killed, err := c.exec.KillByName(c.kill)
	if err != nil {
		c.log.Warn("failed to terminate resolution setter", "process", c.kill, "error", err)
		return
	}
	if killed > 0 {
		c.log.Debug("terminated resolution setter", "process", c.kill, "count", killed)
	}
}
