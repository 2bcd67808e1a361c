// Package chunkset provides the ordered chunk-address set used for both
// per-class free-sets and the pool-wide reclaim-set (spec §4.1). It is a
// thin wrapper over github.com/google/btree, keyed by chunk handle.
package chunkset

import "github.com/google/btree"

// Handle is a chunk's address: an opaque integer equal to its in-page byte
// address. It doubles as the pool's externally visible allocation handle.
type Handle uintptr

const degree = 32

type item Handle

func (a item) Less(than btree.Item) bool {
	return a < than.(item)
}

// Set is an ordered set of chunk handles.
type Set struct {
	tree *btree.BTree
}

// New returns an empty Set.
func New() *Set {
	return &Set{tree: btree.New(degree)}
}

// Len returns the number of handles in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Insert adds h to the set. Precondition: h is not already a member.
func (s *Set) Insert(h Handle) {
	s.tree.ReplaceOrInsert(item(h))
}

// Remove removes h from the set, reporting whether it was present.
func (s *Set) Remove(h Handle) bool {
	return s.tree.Delete(item(h)) != nil
}

// Contains reports whether h is a member of the set.
func (s *Set) Contains(h Handle) bool {
	return s.tree.Has(item(h))
}

// Min returns the smallest handle in the set.
func (s *Set) Min() (Handle, bool) {
	it := s.tree.Min()
	if it == nil {
		return 0, false
	}
	return Handle(it.(item)), true
}

// Max returns the largest handle in the set.
func (s *Set) Max() (Handle, bool) {
	it := s.tree.Max()
	if it == nil {
		return 0, false
	}
	return Handle(it.(item)), true
}

// TakeMin removes and returns the smallest handle in the set.
func (s *Set) TakeMin() (Handle, bool) {
	it := s.tree.DeleteMin()
	if it == nil {
		return 0, false
	}
	return Handle(it.(item)), true
}

// TakeAny removes and returns an arbitrary handle from the set. The current
// implementation always takes the minimum; callers must not depend on any
// particular member being chosen.
func (s *Set) TakeAny() (Handle, bool) {
	return s.TakeMin()
}

// Predecessor returns the largest member strictly less than h.
func (s *Set) Predecessor(h Handle) (Handle, bool) {
	var found Handle
	ok := false
	s.tree.DescendLessOrEqual(item(h), func(i btree.Item) bool {
		v := Handle(i.(item))
		if v == h {
			return true
		}
		found, ok = v, true
		return false
	})
	return found, ok
}

// Successor returns the smallest member strictly greater than h.
func (s *Set) Successor(h Handle) (Handle, bool) {
	var found Handle
	ok := false
	s.tree.AscendGreaterOrEqual(item(h), func(i btree.Item) bool {
		v := Handle(i.(item))
		if v == h {
			return true
		}
		found, ok = v, true
		return false
	})
	return found, ok
}

// MoveRange moves every handle x with lo <= x < hi out of from and, if to is
// non-nil, into to; if to is nil the handles are discarded. It returns the
// number of handles moved.
//
// The scan collects matching handles before mutating the tree, sidestepping
// the erase-during-iteration pitfall spec §9 calls out; either that or a
// re-seek-from-lo loop is an acceptable strategy, and collect-then-mutate is
// the simpler one to get right.
func MoveRange(from, to *Set, lo, hi Handle) int {
	var victims []Handle
	from.tree.AscendRange(item(lo), item(hi), func(i btree.Item) bool {
		victims = append(victims, Handle(i.(item)))
		return true
	})
	for _, h := range victims {
		from.tree.Delete(item(h))
		if to != nil {
			to.tree.ReplaceOrInsert(item(h))
		}
	}
	return len(victims)
}
