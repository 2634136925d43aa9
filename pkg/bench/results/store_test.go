package results

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkraun/timerbench/pkg/bench/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	store, err := Create(path)
	require.NoError(t, err)

	records := []types.Record{
		{ResolutionMs: 0.5, DeltaMs: 1.5012, StdevMs: 0.2199},
		{ResolutionMs: 0.6, DeltaMs: 1.0, StdevMs: 0.1},
		{ResolutionMs: 0.7, DeltaMs: 1.25, StdevMs: 0.3333},
	}
	for _, r := range records {
		require.NoError(t, store.Append(r))
	}
	require.NoError(t, store.Close())

	got, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Values survive the round trip to four decimal places, in sweep order.
	for i, r := range records {
		assert.InDelta(t, r.ResolutionMs, got[i].ResolutionMs, 0.00005)
		assert.InDelta(t, r.DeltaMs, got[i].DeltaMs, 0.00005)
		assert.InDelta(t, r.StdevMs, got[i].StdevMs, 0.00005)
	}
}

func TestStore_HeaderWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	store, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RequestedResolutionMs,DeltaMs,StandardDeviation\n", string(data))
}

func TestStore_AppendIsImmediatelyDurable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	store, err := Create(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Append(types.Record{ResolutionMs: 0.5, DeltaMs: 1.0, StdevMs: 0.1}))

	// Readable before Close, as a crash mid-sweep would leave it.
	got, err := ReadAll(path)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReadAll_SkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	content := strings.Join([]string{
		"RequestedResolutionMs,DeltaMs,StandardDeviation",
		"0.5000,1.5012,0.2199",
		"not,a,row",
		"0.6000,1.0000",
		"",
		"0.7000,1.2500,0.3333",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0.5, got[0].ResolutionMs)
	assert.Equal(t, 0.7, got[1].ResolutionMs)
}

func TestReadAll_MissingFile(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
