package results

import (
	"math"

	"github.com/mkraun/timerbench/pkg/bench/types"
)

// Reduce selects the record with the lowest delta, breaking ties by lower
// standard deviation. Comparison is strict on both criteria, so on a full
// tie the earlier record wins; since records are in sweep order, that means
// the lower resolution. The second return is false when no records exist.
func Reduce(records []types.Record) (types.Record, bool) {
	best := types.Record{DeltaMs: math.Inf(1), StdevMs: math.Inf(1)}
	found := false

	for _, r := range records {
		if r.DeltaMs < best.DeltaMs || (r.DeltaMs == best.DeltaMs && r.StdevMs < best.StdevMs) {
			best = r
			found = true
		}
	}

	return best, found
}
