package fit

import (
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

// Report summarizes the bookkeeping an Allocator performed: how often it tried to reclaim fragmented
// space, how many merges those attempts achieved, and the mean and standard deviation of the free list
// length observed at each Alloc call.
type Report struct {
	Strategy             string
	Reclaims             int
	Merges               int
	Samples              int64
	MeanFreeListLength   float64
	StdDevFreeListLength float64
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %d reclaims, %d merges, free list length %.2f ± %.2f over %d allocations",
		r.Strategy, r.Reclaims, r.Merges, r.MeanFreeListLength, r.StdDevFreeListLength, r.Samples)
}

func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("strategy", r.Strategy),
		slog.Int("reclaims", r.Reclaims),
		slog.Int("merges", r.Merges),
		slog.Int64("samples", r.Samples),
		slog.Float64("meanFreeListLength", r.MeanFreeListLength),
		slog.Float64("stdDevFreeListLength", r.StdDevFreeListLength),
	)
}

// WriteJSON populates a json object with the report's fields
func (r Report) WriteJSON(json jwriter.ObjectState) {
	json.Name("Strategy").String(r.Strategy)
	json.Name("Reclaims").Int(r.Reclaims)
	json.Name("Merges").Int(r.Merges)
	json.Name("Samples").Int(int(r.Samples))
	json.Name("MeanFreeListLength").Float64(r.MeanFreeListLength)
	json.Name("StdDevFreeListLength").Float64(r.StdDevFreeListLength)
}
