package hostpage

import "github.com/markmansi/tcps/internal/chunkset"

// PageSource is the collaborator interface from spec §6.1: page_alloc and
// page_free, the host-side page-frame allocator this module treats as an
// external dependency.
type PageSource interface {
	// AllocPage returns one freshly obtained page-sized region.
	AllocPage() (*Page, error)
	// FreePage returns a page to the source. Precondition: no outstanding
	// references to the page's memory remain.
	FreePage(*Page) error
}

// NewMmapSource returns the default PageSource: one real anonymous memory
// mapping of pageSize bytes per page, backed by golang.org/x/sys/unix on
// platforms that support it, and a heap fallback elsewhere (see
// mmap_other.go).
func NewMmapSource(pageSize uint64) PageSource {
	return newMmapSource(pageSize)
}

func newPageFromBytes(mem []byte) *Page {
	return newPage(baseOf(mem), mem)
}

func baseOf(mem []byte) chunkset.Handle {
	if len(mem) == 0 {
		return 0
	}
	return chunkset.Handle(addrOf(mem))
}
