// Package measure parses the sampler's textual output into a measurement
// sample. The sampler prints two labeled lines, in no guaranteed order:
//
//	Avg: 0.5123
//	STDEV: 0.0211
package measure

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mkraun/timerbench/pkg/bench/types"
)

// Output labels emitted by the sampler.
const (
	avgPrefix   = "Avg: "
	stdevPrefix = "STDEV: "
)

// ErrNotText is returned when the sampler output is not valid UTF-8.
var ErrNotText = errors.New("sampler output is not valid text")

// MissingFieldError reports a labeled line absent from the sampler output.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("sampler output missing %q line", e.Field)
}

// Parse scans the raw sampler output for the first line carrying each label.
// Both labels are required; the value on a labeled line must parse as a
// float. Parse does not judge the values themselves: a zero sample parses
// fine and is rejected later as degenerate.
func Parse(raw []byte) (types.Sample, error) {
	if !utf8.Valid(raw) {
		return types.Sample{}, ErrNotText
	}

	var (
		avg, stdev         float64
		avgSeen, stdevSeen bool
	)

	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case !avgSeen && strings.HasPrefix(line, avgPrefix):
			v, err := parseValue(line, avgPrefix)
			if err != nil {
				return types.Sample{}, err
			}
			avg, avgSeen = v, true
		case !stdevSeen && strings.HasPrefix(line, stdevPrefix):
			v, err := parseValue(line, stdevPrefix)
			if err != nil {
				return types.Sample{}, err
			}
			stdev, stdevSeen = v, true
		}
	}
	if err := sc.Err(); err != nil {
		return types.Sample{}, fmt.Errorf("scanning sampler output: %w", err)
	}

	if !avgSeen {
		return types.Sample{}, &MissingFieldError{Field: strings.TrimSpace(avgPrefix)}
	}
	if !stdevSeen {
		return types.Sample{}, &MissingFieldError{Field: strings.TrimSpace(stdevPrefix)}
	}

	return types.Sample{AvgMs: avg, StdevMs: stdev}, nil
}

func parseValue(line, prefix string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(line[len(prefix):]), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q value: %w", strings.TrimSpace(prefix), err)
	}
	return v, nil
}
