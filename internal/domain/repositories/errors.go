package repositories

import "errors"

// Sentinel errors shared by every backing store. Implementations wrap the
// underlying cause with %w around one of these so callers can branch with
// errors.Is without seeing store-specific error shapes.
var (
	// ErrNotFound is returned by update and delete when the target id does
	// not exist. Point lookups by id return (nil, nil) instead.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate signals a uniqueness violation, e.g. a fiscal code or a
	// report/invoice number already in use.
	ErrDuplicate = errors.New("duplicate value violates a uniqueness rule")

	// ErrStoreUnavailable signals that the store could not be opened or
	// initialized. It is fatal to the call chain and must not be retried
	// silently.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnsupported marks an operation a backend legitimately does not
	// implement, so feature code can degrade instead of crashing.
	ErrUnsupported = errors.New("operation not supported by this backend")
)
