// Package tools locates the external helper executables the benchmark
// depends on: the resolution setter and the sleep sampler.
package tools

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// Default helper executable names, expected next to the benchmark binary.
const (
	SetterExe  = "SetTimerResolution.exe"
	SamplerExe = "MeasureSleep.exe"
)

// Tools holds resolved paths to the helper executables.
type Tools struct {
	SetterPath  string
	SamplerPath string
}

// SetterProcessName returns the image name used when terminating stray
// setter instances.
func (t Tools) SetterProcessName() string {
	return filepath.Base(t.SetterPath)
}

// Locate resolves the helper executables, preferring explicit overrides and
// falling back to the directory containing the running binary. Every missing
// executable is reported, not just the first.
func Locate(setterOverride, samplerOverride string) (Tools, error) {
	exeDir := "."
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}

	t := Tools{
		SetterPath:  pick(setterOverride, filepath.Join(exeDir, SetterExe)),
		SamplerPath: pick(samplerOverride, filepath.Join(exeDir, SamplerExe)),
	}

	var merr *multierror.Error
	for _, path := range []string{t.SetterPath, t.SamplerPath} {
		if _, err := os.Stat(path); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("missing dependency %s: %w", path, err))
		}
	}

	return t, merr.ErrorOrNil()
}

func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
