package tcps

// Hint carries allocation hints analogous to the source's gfp flags. This
// pool only ever backs anonymous memory reachable by ordinary loads and
// stores, so it forbids the one hint that would require special handling.
type Hint int

const (
	// HintDefault requests ordinary memory. This is the only hint this
	// pool accepts.
	HintDefault Hint = iota

	// HintHighMem requests memory unsuitable for this pool's use case
	// (spec §4.3: "allocator hint (highmem-forbidden on this pool)").
	// Passing it to Alloc always returns ErrInvalid.
	HintHighMem
)
