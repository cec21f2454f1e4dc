package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~int64 | ~uint
}

// Assertf panics with an assertion failure built from format and args if cond is false. It is used for
// contract violations: conditions that can only be false because of a bug in the caller or in the
// allocator itself. The panic value satisfies cerrors.IsAssertionFailure.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(cerrors.AssertionFailedf(format, args...))
	}
}

// CheckPositive returns an error if value is not strictly positive
func CheckPositive[T Number](value T, name string) error {
	if value <= 0 {
		return cerrors.Newf("%s must be positive, but is %d", name, value)
	}
	return nil
}
