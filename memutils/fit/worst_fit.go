package fit

import "golang.org/x/exp/slog"

// WorstFit hands out space from the largest free Region, leaving the largest possible remainder behind.
// Ties go to the Region found first in free-list order.
type WorstFit struct {
	Fitter
}

var _ Allocator = &WorstFit{}

func NewWorstFit(logger *slog.Logger, options Options) *WorstFit {
	w := &WorstFit{}
	w.Fitter = newFitter(logger, KindWorstFit, options, w)
	return w
}

func (w *WorstFit) search(wanted int) *Region {
	worst := -1
	for index, area := range w.areas {
		if worst < 0 || area.size > w.areas[worst].size {
			worst = index
		}
	}

	if worst < 0 || w.areas[worst].size < wanted {
		return nil
	}

	region, _ := w.take(worst, wanted)
	return region
}

func (w *WorstFit) coalesce() bool {
	merged, _ := w.reclaim()
	return merged
}
