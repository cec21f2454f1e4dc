package memutils

import "github.com/pkg/errors"

// ErrOutOfMemory is the error returned from an allocation request that no free region can satisfy, even
// after any coalescing the allocator was willing to perform. It is an expected outcome, not a fault: callers
// should test for it with errors.Is and count it.
var ErrOutOfMemory error = errors.New("no free region large enough for the request")
