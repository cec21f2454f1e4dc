package fit

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/fitsim/memutils"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// strategy is implemented by each member of the fit family and called back by Fitter
type strategy interface {
	// search finds a free Region of at least wanted units, removes wanted units from the free list and
	// returns them, or returns nil without changing anything
	search(wanted int) *Region
	// coalesce merges adjacent free Regions and reports whether anything was merged
	coalesce() bool
}

// insertObserver is implemented by strategies that hold positions in the free list and need to know
// when a Region is inserted in front of them
type insertObserver interface {
	areaInserted(index int)
}

// Fitter holds the bookkeeping shared by every strategy in the fit family: the free list, the table of
// Regions currently held by callers, and the counters reported by Report. Concrete strategies embed it
// and supply the search and coalesce operations.
type Fitter struct {
	name      string
	logger    *slog.Logger
	eager     bool
	checkMode bool
	size      int

	areas       []*Region
	outstanding *swiss.Map[*Region, struct{}]

	reclaims int
	merges   int
	lengths  memutils.SampleStatistics

	strategy strategy
}

func newFitter(logger *slog.Logger, kind Kind, options Options, strategy strategy) Fitter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	name := kind.String() + " (lazy)"
	if options.Eager {
		name = kind.String() + " (eager)"
	}

	return Fitter{
		name:      name,
		logger:    logger,
		eager:     options.Eager,
		checkMode: options.CheckMode,
		strategy:  strategy,
	}
}

// Name returns the strategy name and its coalescing variant
func (f *Fitter) Name() string { return f.name }

// Size returns the number of units in the managed space
func (f *Fitter) Size() int { return f.size }

// Eager reports whether this is the variant that coalesces on every Free
func (f *Fitter) Eager() bool { return f.eager }

func (f *Fitter) SetCheckMode(enabled bool) { f.checkMode = enabled }

func (f *Fitter) CheckMode() bool { return f.checkMode }

func (f *Fitter) Configure(total int) {
	memutils.Assertf(f.size == 0 && len(f.areas) == 0, "%s is already configured with %d units", f.name, f.size)
	memutils.Assertf(total > 0, "%s cannot manage %d units", f.name, total)

	f.size = total
	f.areas = []*Region{NewRegion(0, total)}
	f.outstanding = swiss.NewMap[*Region, struct{}](42)
}

func (f *Fitter) Alloc(wanted int) (*Region, error) {
	memutils.Assertf(f.size > 0, "%s has not been configured", f.name)
	memutils.Assertf(wanted > 0, "%s cannot allocate %d units", f.name, wanted)
	memutils.Assertf(wanted <= f.size, "%s cannot allocate %d units from a space of %d", f.name, wanted, f.size)

	f.lengths.AddSample(len(f.areas))

	region := f.strategy.search(wanted)
	if region == nil && f.strategy.coalesce() {
		f.logger.Debug("retrying search after reclaim",
			slog.String("strategy", f.name),
			slog.Int("wanted", wanted),
			slog.Int("regions", len(f.areas)))
		region = f.strategy.search(wanted)
	}

	if region == nil {
		f.logger.Debug("out of memory",
			slog.String("strategy", f.name),
			slog.Int("wanted", wanted),
			slog.Int("freeUnits", f.SumFreeSize()),
			slog.Int("regions", len(f.areas)))
		return nil, errors.Wrapf(memutils.ErrOutOfMemory, "%s: %d units requested, %d free in %d regions",
			f.name, wanted, f.SumFreeSize(), len(f.areas))
	}

	memutils.Assertf(region.size == wanted, "%s returned %s for a request of %d units", f.name, region, wanted)
	f.outstanding.Put(region, struct{}{})

	memutils.DebugValidate(f)
	return region, nil
}

func (f *Fitter) Free(region *Region) {
	memutils.Assertf(region != nil, "%s cannot free a nil region", f.name)
	memutils.Assertf(f.outstanding != nil && f.outstanding.Has(region),
		"%s was not allocated by %s or has already been freed", region, f.name)

	if f.checkMode || memutils.DebugChecks {
		for _, area := range f.areas {
			memutils.Assertf(!region.Overlaps(area), "%s: freed %s overlaps free %s", f.name, region, area)
		}
	}

	f.outstanding.Delete(region)

	if f.eager {
		index, _ := slices.BinarySearchFunc(f.areas, region, ByAddress)
		f.insertArea(index, region)
		f.strategy.coalesce()
	} else {
		f.insertArea(len(f.areas), region)
	}

	memutils.DebugValidate(f)
}

func (f *Fitter) Coalesce() bool {
	memutils.Assertf(f.size > 0, "%s has not been configured", f.name)
	return f.strategy.coalesce()
}

func (f *Fitter) insertArea(index int, region *Region) {
	f.areas = slices.Insert(f.areas, index, region)

	if observer, ok := f.strategy.(insertObserver); ok {
		observer.areaInserted(index)
	}
}

// take hands out the first wanted units of the free Region at index. The remainder, if any, stays at
// the same position in the free list. split reports whether there was a remainder.
func (f *Fitter) take(index, wanted int) (region *Region, split bool) {
	region = f.areas[index]
	if region.size == wanted {
		f.areas = slices.Delete(f.areas, index, index+1)
		return region, false
	}

	f.areas[index] = region.Split(wanted)
	return region, true
}

// reclaim is the coalescing pass shared by all strategies. It leaves the free list in ascending address
// order with no two adjacent Regions left unmerged. merged reports whether any Regions were joined and
// reordered whether the list had to be sorted first.
func (f *Fitter) reclaim() (merged bool, reordered bool) {
	f.reclaims++

	if len(f.areas) < 2 {
		return false, false
	}

	if !slices.IsSortedFunc(f.areas, ByAddress) {
		slices.SortFunc(f.areas, ByAddress)
		reordered = true
	}

	merges := 0
	current := 0
	for i := 1; i < len(f.areas); i++ {
		next := f.areas[i]
		if next.Follows(f.areas[current]) {
			f.areas[current].Join(next)
			merges++
			continue
		}

		current++
		f.areas[current] = next
	}

	clear(f.areas[current+1:])
	f.areas = f.areas[:current+1]
	f.merges += merges

	if merges > 0 {
		f.logger.Debug("reclaimed fragmented space",
			slog.String("strategy", f.name),
			slog.Int("merged", merges),
			slog.Int("regions", len(f.areas)))
	}

	return merges > 0, reordered
}

func (f *Fitter) Report() Report {
	return Report{
		Strategy:             f.name,
		Reclaims:             f.reclaims,
		Merges:               f.merges,
		Samples:              f.lengths.Count,
		MeanFreeListLength:   f.lengths.Mean(),
		StdDevFreeListLength: f.lengths.StdDev(),
	}
}

// FreeListLengths returns the raw free-list length samples gathered by Alloc
func (f *Fitter) FreeListLengths() memutils.SampleStatistics {
	return f.lengths
}

func (f *Fitter) AllocationCount() int {
	if f.outstanding == nil {
		return 0
	}

	return f.outstanding.Count()
}

func (f *Fitter) FreeRegionsCount() int {
	return len(f.areas)
}

func (f *Fitter) SumFreeSize() int {
	sum := 0
	for _, area := range f.areas {
		sum += area.size
	}

	return sum
}

func (f *Fitter) VisitFreeRegions(visit func(base, size int) error) error {
	for _, area := range f.areas {
		err := visit(area.base, area.size)
		if err != nil {
			return err
		}
	}

	return nil
}

func (f *Fitter) Validate() error {
	if f.size == 0 {
		if len(f.areas) != 0 {
			return errors.Errorf("%s is unconfigured but has %d free regions", f.name, len(f.areas))
		}
		return nil
	}

	for index, area := range f.areas {
		if !area.live() {
			return errors.Errorf("free region at index %d was joined into another region but is still listed", index)
		}
		if area.base < 0 || area.base+area.size > f.size {
			return errors.Errorf("free %s lies outside the managed space of %d units", area, f.size)
		}
	}

	if f.eager {
		for i := 1; i < len(f.areas); i++ {
			prev, next := f.areas[i-1], f.areas[i]
			if next.base <= prev.base {
				return errors.Errorf("eager free list is out of address order: %s precedes %s", prev, next)
			}
			if next.Follows(prev) {
				return errors.Errorf("eager free list left adjacent %s and %s unmerged", prev, next)
			}
		}
	}

	// Free and outstanding regions together must tile [0, size) exactly
	all := make([]*Region, 0, len(f.areas)+f.outstanding.Count())
	all = append(all, f.areas...)
	f.outstanding.Iter(func(region *Region, _ struct{}) bool {
		all = append(all, region)
		return false
	})
	slices.SortFunc(all, ByAddress)

	nextBase := 0
	for _, region := range all {
		if region.base < nextBase {
			return errors.Errorf("%s overlaps the region ending at %d", region, nextBase-1)
		}
		if region.base > nextBase {
			return errors.Errorf("units %d...%d are neither free nor allocated", nextBase, region.base-1)
		}
		nextBase = region.base + region.size
	}

	if nextBase != f.size {
		return errors.Errorf("the regions cover %d units, but %s manages %d", nextBase, f.name, f.size)
	}

	return nil
}

func (f *Fitter) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	stats.SpaceCount++
	stats.TotalUnits += f.size

	for _, area := range f.areas {
		stats.AddUnusedRange(area.size)
	}

	if f.outstanding == nil {
		return
	}

	f.outstanding.Iter(func(region *Region, _ struct{}) bool {
		stats.AddAllocation(region.size)
		return false
	})
}

func (f *Fitter) PrintDetailedMap(json jwriter.ObjectState) {
	json.Name("Strategy").String(f.name)
	json.Name("TotalUnits").Int(f.size)
	json.Name("FreeUnits").Int(f.SumFreeSize())
	json.Name("Allocations").Int(f.AllocationCount())
	json.Name("FreeRegions").Int(len(f.areas))

	freeList := json.Name("FreeList").Array()
	for _, area := range f.areas {
		printFreeRegion(&freeList, area)
	}
	freeList.End()
}

func printFreeRegion(json *jwriter.ArrayState, area *Region) {
	obj := json.Object()
	defer obj.End()

	obj.Name("Base").Int(area.base)
	obj.Name("Size").Int(area.size)
}
