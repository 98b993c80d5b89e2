package tombmap

import "errors"

// ErrCapacityExhausted is returned when an operation would need to grow the
// table past the top of the capacity ladder. The table is left unchanged.
var ErrCapacityExhausted = errors.New("tombmap: capacity exhausted")

// ErrAllocationFailed is returned when a rebuild's allocator call is
// refused. The table is left unchanged: the old slot array is never
// released until the new one has been fully populated.
var ErrAllocationFailed = errors.New("tombmap: allocation failed")
