package fit_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/fitsim/memutils/fit"
	"golang.org/x/exp/slices"
)

func TestRegionBounds(t *testing.T) {
	region := fit.NewRegion(10, 5)

	require.Equal(t, 10, region.Base())
	require.Equal(t, 5, region.Size())
	require.Equal(t, 14, region.End())
	require.Equal(t, "Region(10...14:5)", region.String())
}

func TestRegionInvalid(t *testing.T) {
	requireAssertion(t, func() { fit.NewRegion(-1, 5) })
	requireAssertion(t, func() { fit.NewRegion(0, 0) })
}

func TestRegionOverlaps(t *testing.T) {
	region := fit.NewRegion(10, 5)

	require.True(t, region.Overlaps(fit.NewRegion(14, 1)))
	require.True(t, region.Overlaps(fit.NewRegion(0, 11)))
	require.True(t, region.Overlaps(fit.NewRegion(11, 2)))
	require.False(t, region.Overlaps(fit.NewRegion(15, 3)))
	require.False(t, region.Overlaps(fit.NewRegion(0, 10)))
}

func TestRegionSplit(t *testing.T) {
	region := fit.NewRegion(0, 30)
	rest := region.Split(10)

	require.Equal(t, 0, region.Base())
	require.Equal(t, 10, region.Size())
	require.Equal(t, 10, rest.Base())
	require.Equal(t, 20, rest.Size())
	require.True(t, rest.Follows(region))

	requireAssertion(t, func() { region.Split(10) })
	requireAssertion(t, func() { region.Split(0) })
}

func TestRegionJoin(t *testing.T) {
	left := fit.NewRegion(0, 10)
	right := fit.NewRegion(10, 5)
	gap := fit.NewRegion(20, 5)

	requireAssertion(t, func() { left.Join(gap) })
	requireAssertion(t, func() { right.Join(left) })

	left.Join(right)
	require.Equal(t, 15, left.Size())
	require.Equal(t, 0, right.Size())

	requireAssertion(t, func() { left.Join(right) })
	requireAssertion(t, func() { right.Split(1) })
}

func TestRegionOrdering(t *testing.T) {
	regions := []*fit.Region{
		fit.NewRegion(40, 1),
		fit.NewRegion(0, 30),
		fit.NewRegion(30, 10),
	}

	slices.SortFunc(regions, fit.ByAddress)
	require.Equal(t, []int{0, 30, 40}, []int{regions[0].Base(), regions[1].Base(), regions[2].Base()})

	slices.SortFunc(regions, fit.BySizeAscending)
	require.Equal(t, []int{1, 10, 30}, []int{regions[0].Size(), regions[1].Size(), regions[2].Size()})

	slices.SortFunc(regions, fit.BySizeDescending)
	require.Equal(t, []int{30, 10, 1}, []int{regions[0].Size(), regions[1].Size(), regions[2].Size()})
}
