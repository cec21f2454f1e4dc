package fit

import "golang.org/x/exp/slog"

// NextFit works like FirstFit, but each search resumes at the free-list position where the previous
// successful search stopped, wrapping around to the front at most once. This spreads allocations over the
// list instead of repeatedly splitting the Regions at its front, at the cost of sometimes passing over a
// better-placed Region.
type NextFit struct {
	Fitter

	// cursor is an index into the free list. A value equal to the list length means "past the end" and
	// is treated as the front by the next search.
	cursor int
}

var _ Allocator = &NextFit{}

func NewNextFit(logger *slog.Logger, options Options) *NextFit {
	n := &NextFit{}
	n.Fitter = newFitter(logger, KindNextFit, options, n)
	return n
}

// Cursor returns the free-list index the next search will start from
func (n *NextFit) Cursor() int {
	if n.cursor >= len(n.areas) {
		return 0
	}

	return n.cursor
}

func (n *NextFit) search(wanted int) *Region {
	count := len(n.areas)
	start := n.Cursor()

	for step := 0; step < count; step++ {
		index := (start + step) % count
		if n.areas[index].size < wanted {
			continue
		}

		// Either the remainder or the Region after the consumed one now sits at index
		region, _ := n.take(index, wanted)
		n.cursor = index
		return region
	}

	return nil
}

func (n *NextFit) coalesce() bool {
	merged, reordered := n.reclaim()
	if merged || reordered {
		n.cursor = 0
	}

	return merged
}

func (n *NextFit) areaInserted(index int) {
	if index <= n.cursor {
		n.cursor++
	}
}
