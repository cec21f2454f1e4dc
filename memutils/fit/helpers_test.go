package fit_test

import (
	"testing"

	cerrors "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/fitsim/memutils/fit"
)

type variant struct {
	kind  fit.Kind
	eager bool
}

func allVariants() []variant {
	var variants []variant
	for _, kind := range fit.Kinds() {
		variants = append(variants, variant{kind: kind}, variant{kind: kind, eager: true})
	}
	return variants
}

func newAllocator(t *testing.T, v variant, total int) fit.Allocator {
	allocator, err := fit.New(nil, v.kind, fit.Options{Eager: v.eager})
	require.NoError(t, err)
	allocator.Configure(total)
	return allocator
}

func mustAlloc(t *testing.T, allocator fit.Allocator, wanted int) *fit.Region {
	region, err := allocator.Alloc(wanted)
	require.NoError(t, err)
	require.Equal(t, wanted, region.Size())
	return region
}

// requireAssertion runs f and fails the test unless it panics with an assertion failure
func requireAssertion(t *testing.T, f func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() {
			recovered = recover()
		}()
		f()
	}()

	require.NotNil(t, recovered, "expected a contract violation")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	require.True(t, cerrors.IsAssertionFailure(err), "panic %v is not an assertion failure", err)
}

type span struct {
	Base int
	Size int
}

func freeList(t *testing.T, allocator fit.Allocator) []span {
	var spans []span
	err := allocator.VisitFreeRegions(func(base, size int) error {
		spans = append(spans, span{Base: base, Size: size})
		return nil
	})
	require.NoError(t, err)
	return spans
}
