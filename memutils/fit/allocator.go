// Package fit simulates the "fit" family of free-list allocation strategies over an abstract linear space
// of units. Every strategy manages the same kind of free list and exposes the same Allocator contract, so
// that their fragmentation and bookkeeping costs can be compared under identical workloads.
package fit

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/fitsim/memutils"
	"golang.org/x/exp/slog"
)

// Allocator is the contract shared by every fit strategy. An Allocator is not safe for concurrent use;
// independent Allocators share no state and can be driven from separate goroutines.
type Allocator interface {
	// Name returns a human-readable name for the strategy and its coalescing variant, such as
	// "NextFit (eager)"
	Name() string

	// Configure must be called exactly once, before any other operation that touches the free list. It
	// records the number of units in the managed space and creates a single free Region covering all of them.
	// Calling it twice, or with a total that is not positive, is a contract violation and panics.
	Configure(total int)
	// Size returns the number of units the Allocator was configured with, or 0 if Configure has not been
	// called
	Size() int

	// Alloc requests a Region of exactly wanted units. wanted must be positive and no larger than Size();
	// anything else is a contract violation and panics. If no free Region is large enough, even after the
	// Allocator has coalesced adjacent free space and searched again, Alloc returns an error for which
	// errors.Is(err, memutils.ErrOutOfMemory) is true. The returned Region belongs to the caller until it
	// is passed to Free.
	Alloc(wanted int) (*Region, error)
	// Free returns a Region obtained from Alloc on this Allocator. Passing any other Region, or the same
	// Region twice, is a contract violation and panics. When check mode is enabled, Free first verifies that
	// the Region does not overlap any free Region, which costs a scan of the whole free list.
	Free(region *Region)
	// Coalesce merges adjacent free Regions immediately and reports whether anything was merged. Alloc
	// already does this on its own when a search fails, so calling it is never required.
	Coalesce() bool

	// SetCheckMode enables or disables the overlap scan performed by Free. It never changes which Regions
	// are handed out.
	SetCheckMode(enabled bool)
	// CheckMode reports whether the overlap scan is enabled
	CheckMode() bool

	// Report summarizes the bookkeeping the Allocator has performed so far
	Report() Report

	// Validate performs internal consistency checks: free Regions must not overlap, and free and outstanding
	// Regions together must tile the configured space exactly. It is expensive and intended for tests and
	// diagnostics.
	Validate() error
	// AllocationCount returns the number of Regions currently held by callers
	AllocationCount() int
	// FreeRegionsCount returns the length of the free list
	FreeRegionsCount() int
	// SumFreeSize returns the number of units in the free list
	SumFreeSize() int
	// VisitFreeRegions calls visit for each free Region in free-list order, stopping at the first error
	VisitFreeRegions(visit func(base, size int) error) error

	// AddDetailedStatistics sums this Allocator's free and outstanding Regions into stats
	AddDetailedStatistics(stats *memutils.DetailedStatistics)
	// PrintDetailedMap populates a json object with the Allocator's totals and its free list
	PrintDetailedMap(json jwriter.ObjectState)
}

// Kind identifies a placement policy
type Kind uint32

const (
	// KindFirstFit takes the first free Region, in free-list order, that is large enough
	KindFirstFit Kind = iota + 1
	// KindNextFit behaves like KindFirstFit but resumes searching where the previous search stopped
	KindNextFit
	// KindBestFit takes the smallest free Region that is large enough
	KindBestFit
	// KindWorstFit takes the largest free Region
	KindWorstFit
)

var kindMapping = map[Kind]string{
	KindFirstFit: "FirstFit",
	KindNextFit:  "NextFit",
	KindBestFit:  "BestFit",
	KindWorstFit: "WorstFit",
}

func (k Kind) String() string {
	return kindMapping[k]
}

// Kinds lists every placement policy in a stable order
func Kinds() []Kind {
	return []Kind{KindFirstFit, KindNextFit, KindBestFit, KindWorstFit}
}

// ParseKind accepts a policy name such as "bestfit", "best-fit" or "BestFit"
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(name, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")

	for kind, kindName := range kindMapping {
		if strings.EqualFold(kindName, normalized) {
			return kind, nil
		}
	}

	return 0, errors.Newf("unknown fit strategy %q", name)
}

// Options contains construction-time settings shared by every strategy
type Options struct {
	// Eager selects the variant that coalesces adjacent free space on every Free. The default lazy
	// variant only coalesces when a search fails.
	Eager bool
	// CheckMode enables the overlap scan in Free from the start. It can be changed later with
	// Allocator.SetCheckMode.
	CheckMode bool
}

// New creates an unconfigured Allocator of the requested kind. logger may be nil.
func New(logger *slog.Logger, kind Kind, options Options) (Allocator, error) {
	switch kind {
	case KindFirstFit:
		return NewFirstFit(logger, options), nil
	case KindNextFit:
		return NewNextFit(logger, options), nil
	case KindBestFit:
		return NewBestFit(logger, options), nil
	case KindWorstFit:
		return NewWorstFit(logger, options), nil
	}

	return nil, errors.Newf("unknown fit strategy %d", kind)
}
