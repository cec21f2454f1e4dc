package fit

import (
	"fmt"

	"github.com/vkngwrapper/fitsim/memutils"
)

// Region describes the half-open interval [Base, Base+Size) of the managed space. A live Region always
// has a positive size. Regions move between an allocator's free list and its callers by pointer: the
// pointer handed out by Alloc is the one that must be passed back to Free.
type Region struct {
	base int
	size int
}

// NewRegion creates a Region covering [base, base+size)
func NewRegion(base, size int) *Region {
	memutils.Assertf(base >= 0, "region base must not be negative, but is %d", base)
	memutils.Assertf(size > 0, "region size must be positive, but is %d", size)

	return &Region{base: base, size: size}
}

// Base returns the first unit of the region
func (r *Region) Base() int { return r.base }

// Size returns the number of units in the region, or 0 once the region has been absorbed by Join
func (r *Region) Size() int { return r.size }

// End returns the last unit inside the region
func (r *Region) End() int { return r.base + r.size - 1 }

func (r *Region) live() bool {
	return r.size > 0
}

// Overlaps reports whether the two regions share at least one unit. It is a diagnostic check and is not
// used while searching for space.
func (r *Region) Overlaps(other *Region) bool {
	return r.base < other.base+other.size && other.base < r.base+r.size
}

// Follows reports whether r begins at the unit immediately after the end of prev
func (r *Region) Follows(prev *Region) bool {
	return r.base == prev.base+prev.size
}

// Split shrinks r to its first n units and returns a new Region holding the rest. The caller decides
// where the returned Region goes.
func (r *Region) Split(n int) *Region {
	memutils.Assertf(r.live(), "cannot split a region that was joined into another")
	memutils.Assertf(n > 0 && n < r.size, "cannot split %s at %d", r, n)

	rest := &Region{base: r.base + n, size: r.size - n}
	r.size = n

	return rest
}

// Join grows r by the size of other, which must start immediately after r ends. Afterward other is
// dead: its size is 0 and it must not be referenced by a free list or a caller.
func (r *Region) Join(other *Region) {
	memutils.Assertf(r.live() && other.live(), "cannot join a region that was already joined into another")
	memutils.Assertf(other.Follows(r), "cannot join %s onto %s: they are not adjacent", other, r)

	r.size += other.size
	other.size = 0
}

func (r *Region) String() string {
	return fmt.Sprintf("Region(%d...%d:%d)", r.base, r.End(), r.size)
}

// ByAddress orders regions by ascending base
func ByAddress(a, b *Region) int {
	return a.base - b.base
}

// BySizeAscending orders regions from smallest to largest
func BySizeAscending(a, b *Region) int {
	return a.size - b.size
}

// BySizeDescending orders regions from largest to smallest
func BySizeDescending(a, b *Region) int {
	return b.size - a.size
}
