package fit

import "golang.org/x/exp/slog"

// BestFit hands out the smallest free Region that is large enough for a request. Ties go to the Region
// found first in free-list order. Every search visits the whole list unless it finds an exact fit.
type BestFit struct {
	Fitter
}

var _ Allocator = &BestFit{}

func NewBestFit(logger *slog.Logger, options Options) *BestFit {
	b := &BestFit{}
	b.Fitter = newFitter(logger, KindBestFit, options, b)
	return b
}

func (b *BestFit) search(wanted int) *Region {
	best := -1
	for index, area := range b.areas {
		if area.size < wanted {
			continue
		}

		if best < 0 || area.size < b.areas[best].size {
			best = index
		}

		// Nothing can beat an exact fit, and later ties lose anyway
		if area.size == wanted {
			break
		}
	}

	if best < 0 {
		return nil
	}

	region, _ := b.take(best, wanted)
	return region
}

func (b *BestFit) coalesce() bool {
	merged, _ := b.reclaim()
	return merged
}
