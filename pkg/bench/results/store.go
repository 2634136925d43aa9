// Package results persists benchmark rounds to an append-only CSV file and
// reduces the recorded rounds to the optimal operating point.
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mkraun/timerbench/pkg/bench/types"
)

// Header is the first row of the results file.
var Header = []string{"RequestedResolutionMs", "DeltaMs", "StandardDeviation"}

// Store appends benchmark records to a CSV file. Every append is flushed and
// synced before returning, so a mid-sweep crash loses at most the in-flight
// round. Records are never updated or deleted.
type Store struct {
	path string
	file *os.File
	w    *csv.Writer
}

// Create opens a fresh results file at path and writes the header.
func Create(path string) (*Store, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating results file: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(Header); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing results header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return nil, fmt.Errorf("flushing results header: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return nil, fmt.Errorf("syncing results file: %w", err)
	}

	return &Store{path: path, file: file, w: w}, nil
}

// Path returns the location of the results file.
func (s *Store) Path() string {
	return s.path
}

// Append durably persists one record with four-decimal formatting.
func (s *Store) Append(r types.Record) error {
	row := []string{
		fmt.Sprintf("%.4f", r.ResolutionMs),
		fmt.Sprintf("%.4f", r.DeltaMs),
		fmt.Sprintf("%.4f", r.StdevMs),
	}
	if err := s.w.Write(row); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("flushing record: %w", err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("syncing results file: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (s *Store) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.file.Close()
		return fmt.Errorf("flushing results file: %w", err)
	}
	return s.file.Close()
}

// ReadAll re-parses the full results file from the start, in insertion
// order. Malformed rows (including the header) are skipped silently: the
// file may have been hand-edited or truncated by a crash, and the rows that
// do parse are still valid measurements.
func ReadAll(path string) ([]types.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening results file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records []types.Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue // skip malformed row
			}
			return nil, fmt.Errorf("reading results file: %w", err)
		}

		rec, ok := parseRow(row)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string) (types.Record, bool) {
	if len(row) != 3 {
		return types.Record{}, false
	}

	values := make([]float64, 3)
	for i, field := range row {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return types.Record{}, false
		}
		values[i] = v
	}

	return types.Record{
		ResolutionMs: values[0],
		DeltaMs:      values[1],
		StdevMs:      values[2],
	}, true
}
