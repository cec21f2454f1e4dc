package fit_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/fitsim/memutils"
	"github.com/vkngwrapper/fitsim/memutils/fit"
	"golang.org/x/exp/slices"
)

func TestParseKind(t *testing.T) {
	for name, expected := range map[string]fit.Kind{
		"firstfit":  fit.KindFirstFit,
		"NextFit":   fit.KindNextFit,
		"best-fit":  fit.KindBestFit,
		"Worst_Fit": fit.KindWorstFit,
	} {
		kind, err := fit.ParseKind(name)
		require.NoError(t, err, name)
		require.Equal(t, expected, kind, name)
	}

	_, err := fit.ParseKind("buddy")
	require.Error(t, err)
}

func TestNewUnknownKind(t *testing.T) {
	_, err := fit.New(nil, fit.Kind(99), fit.Options{})
	require.Error(t, err)
}

func TestNames(t *testing.T) {
	lazy, err := fit.New(nil, fit.KindNextFit, fit.Options{})
	require.NoError(t, err)
	require.Equal(t, "NextFit (lazy)", lazy.Name())

	eager, err := fit.New(nil, fit.KindBestFit, fit.Options{Eager: true})
	require.NoError(t, err)
	require.Equal(t, "BestFit (eager)", eager.Name())
}

func TestConfigure(t *testing.T) {
	for _, v := range allVariants() {
		allocator, err := fit.New(nil, v.kind, fit.Options{Eager: v.eager})
		require.NoError(t, err)

		require.Equal(t, 0, allocator.Size())
		require.NoError(t, allocator.Validate())
		requireAssertion(t, func() { _, _ = allocator.Alloc(1) })
		requireAssertion(t, func() { allocator.Coalesce() })
		requireAssertion(t, func() { allocator.Configure(0) })

		allocator.Configure(100)
		require.Equal(t, 100, allocator.Size())
		require.Equal(t, []span{{Base: 0, Size: 100}}, freeList(t, allocator))
		require.Equal(t, 0, allocator.AllocationCount())
		require.NoError(t, allocator.Validate())

		requireAssertion(t, func() { allocator.Configure(100) })
	}
}

func TestAllocOutOfRange(t *testing.T) {
	for _, v := range allVariants() {
		allocator := newAllocator(t, v, 100)

		requireAssertion(t, func() { _, _ = allocator.Alloc(0) })
		requireAssertion(t, func() { _, _ = allocator.Alloc(-5) })
		requireAssertion(t, func() { _, _ = allocator.Alloc(101) })
	}
}

func TestAllocWholeSpace(t *testing.T) {
	for _, v := range allVariants() {
		allocator := newAllocator(t, v, 100)

		region := mustAlloc(t, allocator, 100)
		require.Equal(t, 0, region.Base())
		require.Equal(t, 0, allocator.FreeRegionsCount())
		require.Equal(t, 0, allocator.SumFreeSize())

		_, err := allocator.Alloc(1)
		require.ErrorIs(t, err, memutils.ErrOutOfMemory, allocator.Name())

		allocator.Free(region)
		require.Equal(t, []span{{Base: 0, Size: 100}}, freeList(t, allocator))
		require.NoError(t, allocator.Validate())
	}
}

func TestFreeContractViolations(t *testing.T) {
	for _, v := range allVariants() {
		allocator := newAllocator(t, v, 100)
		other := newAllocator(t, v, 100)

		region := mustAlloc(t, allocator, 10)
		foreign := mustAlloc(t, other, 10)

		requireAssertion(t, func() { allocator.Free(nil) })
		requireAssertion(t, func() { allocator.Free(foreign) })
		requireAssertion(t, func() { allocator.Free(fit.NewRegion(0, 10)) })

		allocator.Free(region)
		requireAssertion(t, func() { allocator.Free(region) })

		require.NoError(t, allocator.Validate())
		require.Equal(t, 100, allocator.SumFreeSize())
	}
}

func TestSmallSpaceExhaustion(t *testing.T) {
	for _, v := range allVariants() {
		allocator := newAllocator(t, v, 30)

		first := mustAlloc(t, allocator, 10)
		mustAlloc(t, allocator, 10)
		third := mustAlloc(t, allocator, 10)

		allocator.Free(first)
		allocator.Free(third)

		// 20 units are free but they are not adjacent
		_, err := allocator.Alloc(20)
		require.ErrorIs(t, err, memutils.ErrOutOfMemory, allocator.Name())
		require.Equal(t, 20, allocator.SumFreeSize())
		require.Equal(t, 2, allocator.FreeRegionsCount())
		require.NoError(t, allocator.Validate())
	}
}

func TestBestFitScenarioAllVariants(t *testing.T) {
	for _, v := range allVariants() {
		allocator := newAllocator(t, v, 100)

		allocator.Free(mustAlloc(t, allocator, 100))

		regions := []*fit.Region{
			mustAlloc(t, allocator, 30),
			mustAlloc(t, allocator, 50),
			mustAlloc(t, allocator, 10),
		}
		require.Equal(t, []span{{Base: 90, Size: 10}}, freeList(t, allocator), allocator.Name())

		_, err := allocator.Alloc(15)
		require.ErrorIs(t, err, memutils.ErrOutOfMemory, allocator.Name())

		for _, region := range regions {
			allocator.Free(region)
		}
		allocator.Coalesce()
		require.Equal(t, []span{{Base: 0, Size: 100}}, freeList(t, allocator), allocator.Name())

		region := mustAlloc(t, allocator, 15)
		require.Equal(t, 0, region.Base())
	}
}

func TestCoalesceIdempotent(t *testing.T) {
	for _, v := range allVariants() {
		allocator := newAllocator(t, v, 100)

		var regions []*fit.Region
		for i := 0; i < 10; i++ {
			regions = append(regions, mustAlloc(t, allocator, 10))
		}
		for _, index := range []int{3, 0, 4, 9, 1, 7} {
			allocator.Free(regions[index])
		}

		allocator.Coalesce()
		before := freeList(t, allocator)
		require.Equal(t, []span{{Base: 0, Size: 20}, {Base: 30, Size: 20}, {Base: 70, Size: 10}, {Base: 90, Size: 10}}, before)

		require.False(t, allocator.Coalesce())
		require.Equal(t, before, freeList(t, allocator))
		require.NoError(t, allocator.Validate())
	}
}

func TestLazyFreeDefersMerging(t *testing.T) {
	allocator := newAllocator(t, variant{kind: fit.KindFirstFit}, 30)

	first := mustAlloc(t, allocator, 10)
	second := mustAlloc(t, allocator, 10)
	allocator.Free(second)
	allocator.Free(first)

	require.Equal(t, []span{{Base: 20, Size: 10}, {Base: 10, Size: 10}, {Base: 0, Size: 10}}, freeList(t, allocator))
	require.True(t, allocator.Coalesce())
	require.Equal(t, []span{{Base: 0, Size: 30}}, freeList(t, allocator))
}

func TestEagerFreeMerges(t *testing.T) {
	allocator := newAllocator(t, variant{kind: fit.KindFirstFit, eager: true}, 30)

	first := mustAlloc(t, allocator, 10)
	second := mustAlloc(t, allocator, 10)
	allocator.Free(second)
	require.Equal(t, []span{{Base: 10, Size: 20}}, freeList(t, allocator))

	allocator.Free(first)
	require.Equal(t, []span{{Base: 0, Size: 30}}, freeList(t, allocator))
	require.False(t, allocator.Coalesce())
}

func TestCheckModeDoesNotChangePlacement(t *testing.T) {
	for _, v := range allVariants() {
		plain := newAllocator(t, v, 1000)
		checked := newAllocator(t, v, 1000)
		checked.SetCheckMode(true)
		require.True(t, checked.CheckMode())
		require.False(t, plain.CheckMode())

		rng := rand.New(rand.NewSource(7))
		var plainHeld, checkedHeld []*fit.Region
		for i := 0; i < 500; i++ {
			if len(plainHeld) > 0 && rng.Intn(2) == 0 {
				index := rng.Intn(len(plainHeld))
				plain.Free(plainHeld[index])
				checked.Free(checkedHeld[index])
				plainHeld = slices.Delete(plainHeld, index, index+1)
				checkedHeld = slices.Delete(checkedHeld, index, index+1)
				continue
			}

			wanted := 1 + rng.Intn(100)
			a, errA := plain.Alloc(wanted)
			b, errB := checked.Alloc(wanted)
			require.Equal(t, errA == nil, errB == nil)
			if errA == nil {
				require.Equal(t, a.Base(), b.Base())
				plainHeld = append(plainHeld, a)
				checkedHeld = append(checkedHeld, b)
			}
		}

		require.Equal(t, freeList(t, plain), freeList(t, checked))
	}
}

func TestRandomWorkloadKeepsSpaceTiled(t *testing.T) {
	const total = 4096

	for _, v := range allVariants() {
		allocator := newAllocator(t, v, total)
		allocator.SetCheckMode(true)

		rng := rand.New(rand.NewSource(1337))
		var held []*fit.Region
		heldUnits := 0

		for i := 0; i < 2000; i++ {
			if len(held) > 0 && rng.Intn(3) == 0 {
				index := rng.Intn(len(held))
				heldUnits -= held[index].Size()
				allocator.Free(held[index])
				held = slices.Delete(held, index, index+1)
			} else {
				wanted := 1 + rng.Intn(256)
				region, err := allocator.Alloc(wanted)
				if err != nil {
					require.ErrorIs(t, err, memutils.ErrOutOfMemory)
				} else {
					require.Equal(t, wanted, region.Size())
					require.LessOrEqual(t, region.Base()+region.Size(), total)
					held = append(held, region)
					heldUnits += wanted
				}
			}

			require.Equal(t, len(held), allocator.AllocationCount())
			require.Equal(t, total, allocator.SumFreeSize()+heldUnits)
			if i%50 == 0 {
				require.NoError(t, allocator.Validate(), allocator.Name())
			}
		}

		for _, region := range held {
			allocator.Free(region)
		}
		allocator.Coalesce()

		require.Equal(t, []span{{Base: 0, Size: total}}, freeList(t, allocator), allocator.Name())
		require.NoError(t, allocator.Validate())
	}
}
