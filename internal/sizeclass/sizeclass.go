// Package sizeclass holds the fixed table of chunk sizes a pool carves its
// host pages into.
package sizeclass

import "errors"

var (
	// ErrEmpty is returned when a table is built with no class sizes.
	ErrEmpty = errors.New("sizeclass: table must have at least one class")
	// ErrPageSize is returned when the page size is not a positive power of two.
	ErrPageSize = errors.New("sizeclass: page size must be a positive power of two")
	// ErrClassSize is returned when a class size is invalid for the page size.
	ErrClassSize = errors.New("sizeclass: class size must be positive and divide the page size")
	// ErrNotDecreasing is returned when class sizes are not strictly decreasing.
	ErrNotDecreasing = errors.New("sizeclass: class sizes must be strictly decreasing")
)

// Table is the compile-time-style class-size table from spec §3: a fixed,
// strictly decreasing array of chunk byte sizes, each dividing the host page
// size. Class 0 is the largest class.
type Table struct {
	pageSize uint64
	sizes    []uint64
}

// New validates classSizes against pageSize and returns the resulting Table.
// classSizes must be strictly decreasing and each entry must divide
// pageSize evenly.
func New(pageSize uint64, classSizes []uint64) (*Table, error) {
	if pageSize == 0 || pageSize&(pageSize-1) != 0 {
		return nil, ErrPageSize
	}
	if len(classSizes) == 0 {
		return nil, ErrEmpty
	}
	for i, s := range classSizes {
		if s == 0 || pageSize%s != 0 {
			return nil, ErrClassSize
		}
		if i > 0 && s >= classSizes[i-1] {
			return nil, ErrNotDecreasing
		}
	}
	sizes := make([]uint64, len(classSizes))
	copy(sizes, classSizes)
	return &Table{pageSize: pageSize, sizes: sizes}, nil
}

// PageSize returns the host page size this table was built for.
func (t *Table) PageSize() uint64 {
	return t.pageSize
}

// Count returns the number of classes, C.
func (t *Table) Count() int {
	return len(t.sizes)
}

// Size returns CLASS_SIZE[class].
func (t *Table) Size(class int) uint64 {
	return t.sizes[class]
}

// Largest returns CLASS_SIZE[0], the largest class.
func (t *Table) Largest() uint64 {
	return t.sizes[0]
}

// ChunksPerPage returns how many chunks of the given class fit in one host page.
func (t *Table) ChunksPerPage(class int) int {
	return int(t.pageSize / t.sizes[class])
}

// ClassOf returns the smallest class whose size is >= size (tightest fit),
// per spec §4.3 and the resolved open question in spec §9. ok is false if
// size exceeds the largest class.
func (t *Table) ClassOf(size uint64) (class int, ok bool) {
	if size == 0 || size > t.sizes[0] {
		return 0, false
	}
	// sizes is strictly decreasing, so the last class with size >= requested
	// is the tightest fit; scan from the smallest class upward.
	for c := len(t.sizes) - 1; c >= 0; c-- {
		if t.sizes[c] >= size {
			return c, true
		}
	}
	return 0, false
}
