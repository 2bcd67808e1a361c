package tcps

import "errors"

// Error taxonomy from spec §7: semantic, not name-specific.
var (
	// ErrInvalid is returned when an argument violates a stated
	// precondition (bad size, bad hint). Not retryable.
	ErrInvalid = errors.New("tcps: invalid argument")

	// ErrNoSpace is returned when a request exceeds the largest size class.
	ErrNoSpace = errors.New("tcps: request exceeds largest size class")

	// ErrOutOfMemory is returned when the page source refused to grow the
	// pool by one host page. May be retryable after pressure relief.
	ErrOutOfMemory = errors.New("tcps: page source out of memory")

	// ErrNoEvict is returned when reclamation is attempted without an
	// eviction callback, with a zero retry budget, or with no candidate
	// page in the pool. Not retryable until prerequisites change.
	ErrNoEvict = errors.New("tcps: no eviction callback or no reclaim candidate")

	// ErrExhausted is returned when reclamation hits its retry budget
	// without successfully returning a page.
	ErrExhausted = errors.New("tcps: reclaim retry budget exhausted")
)
