package vec

import "errors"

// ErrTooLarge is returned when a requested capacity exceeds MaxLen for
// the element type. Go's allocator has no recoverable out-of-memory
// signal, so an oversized size request is the allocation failure this
// package can detect and report.
var ErrTooLarge = errors.New("vec: requested capacity too large")
