// Package hostpage implements the host-page abstraction from spec §3: a
// page-frame-allocator-sized region carved into equal chunks of one size
// class, plus the per-class insertion-ordered roster used to pick reclaim
// candidates.
package hostpage

import "github.com/markmansi/tcps/internal/chunkset"

// Page is a single host page: a fixed-size region obtained from a
// PageSource, tagged with the class it is currently carved into and whether
// it is under reclamation. Class never changes once a page has been carved
// (spec §4.7's "class-stability" property).
type Page struct {
	Base       chunkset.Handle
	Class      int
	Reclaiming bool

	mem []byte

	prev, next *Page
}

// newPage wraps a freshly obtained memory region as a Page. It does not
// carve chunks or set Class; the caller (Pool.Alloc) does that once it knows
// which class the page is for.
func newPage(base chunkset.Handle, mem []byte) *Page {
	return &Page{Base: base, mem: mem}
}

// Bytes returns the byte slice backing the chunk at handle h, which must
// fall within this page and be aligned to size.
func (p *Page) Bytes(h chunkset.Handle, size uint64) []byte {
	offset := uint64(h) - uint64(p.Base)
	return p.mem[offset : offset+size]
}
