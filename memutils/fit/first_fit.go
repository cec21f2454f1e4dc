package fit

import "golang.org/x/exp/slog"

// FirstFit hands out the first free Region, in free-list order, that is large enough for a request.
// The lazy variant appends freed Regions to the back of the free list; the eager variant keeps the list
// in address order and fully coalesced.
type FirstFit struct {
	Fitter
}

var _ Allocator = &FirstFit{}

func NewFirstFit(logger *slog.Logger, options Options) *FirstFit {
	f := &FirstFit{}
	f.Fitter = newFitter(logger, KindFirstFit, options, f)
	return f
}

func (f *FirstFit) search(wanted int) *Region {
	for index, area := range f.areas {
		if area.size >= wanted {
			region, _ := f.take(index, wanted)
			return region
		}
	}

	return nil
}

func (f *FirstFit) coalesce() bool {
	merged, _ := f.reclaim()
	return merged
}
