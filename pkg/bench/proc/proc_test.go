package proc

import (
	"errors"
	"testing"

	"github.com/mkraun/timerbench/pkg/bench/measure"
	"github.com/mkraun/timerbench/pkg/bench/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecer records every call and returns scripted results.
type fakeExecer struct {
	startArgs   [][]string
	startErr    error
	captureArgs [][]string
	captureOut  []byte
	captureErr  error
	killCalls   []string
	killErr     error
}

func (f *fakeExecer) StartDetached(path string, args ...string) error {
	f.startArgs = append(f.startArgs, append([]string{path}, args...))
	return f.startErr
}

func (f *fakeExecer) CaptureOutput(path string, args ...string) ([]byte, error) {
	f.captureArgs = append(f.captureArgs, append([]string{path}, args...))
	return f.captureOut, f.captureErr
}

func (f *fakeExecer) KillByName(name string) (int, error) {
	f.killCalls = append(f.killCalls, name)
	return 0, f.killErr
}

func newTestController(f *fakeExecer) *Controller {
	c := NewController(f, `C:\bench\SetTimerResolution.exe`, `C:\bench\MeasureSleep.exe`)
	c.settle = 0 // no need to sleep in tests
	return c
}

func TestRunRound_Success(t *testing.T) {
	fake := &fakeExecer{captureOut: []byte("Avg: 0.5123\nSTDEV: 0.0211\n")}
	c := newTestController(fake)

	sample, err := c.RunRound(0.5, 100)
	require.NoError(t, err)
	assert.Equal(t, types.Sample{AvgMs: 0.5123, StdevMs: 0.0211}, sample)

	require.Len(t, fake.startArgs, 1)
	assert.Equal(t,
		[]string{`C:\bench\SetTimerResolution.exe`, "--resolution", "5000", "--no-console"},
		fake.startArgs[0])

	require.Len(t, fake.captureArgs, 1)
	assert.Equal(t,
		[]string{`C:\bench\MeasureSleep.exe`, "--samples", "100"},
		fake.captureArgs[0])

	assert.Equal(t, []string{"SetTimerResolution.exe"}, fake.killCalls)
}

func TestRunRound_SetterSpawnFailureContinues(t *testing.T) {
	fake := &fakeExecer{
		startErr:   errors.New("file not found"),
		captureOut: []byte("Avg: 15.6\nSTDEV: 0.9\n"),
	}
	c := newTestController(fake)

	// The sampler still runs and yields a baseline measurement.
	sample, err := c.RunRound(0.5, 10)
	require.NoError(t, err)
	assert.Equal(t, 15.6, sample.AvgMs)
	assert.Len(t, fake.killCalls, 1)
}

func TestRunRound_SamplerFailureIsFatalAndStillCleansUp(t *testing.T) {
	fake := &fakeExecer{captureErr: errors.New("exec format error")}
	c := newTestController(fake)

	_, err := c.RunRound(0.5, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running sampler")

	// Cleanup must run despite the failure.
	assert.Equal(t, []string{"SetTimerResolution.exe"}, fake.killCalls)
}

func TestRunRound_ParseFailureIsFatalAndStillCleansUp(t *testing.T) {
	fake := &fakeExecer{captureOut: []byte("Avg: 0.5\n")} // STDEV missing
	c := newTestController(fake)

	_, err := c.RunRound(0.5, 10)
	require.Error(t, err)

	var missing *measure.MissingFieldError
	assert.ErrorAs(t, err, &missing)
	assert.Len(t, fake.killCalls, 1)
}

func TestRunRound_KillFailureIsNotFatal(t *testing.T) {
	fake := &fakeExecer{
		captureOut: []byte("Avg: 0.5\nSTDEV: 0.1\n"),
		killErr:    errors.New("access denied"),
	}
	c := newTestController(fake)

	_, err := c.RunRound(0.5, 10)
	assert.NoError(t, err)
}

func TestRunRound_UnitConversion(t *testing.T) {
	fake := &fakeExecer{captureOut: []byte("Avg: 0.5\nSTDEV: 0.1\n")}
	c := newTestController(fake)

	// Cursor drift: 0.1*3 accumulates error but the setter argument must
	// stay exact.
	_, err := c.RunRound(0.1+0.1+0.1, 10)
	require.NoError(t, err)
	assert.Equal(t, "3000", fake.startArgs[0][2])
}
