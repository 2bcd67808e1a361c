// Package tcps implements the Tiered Compressed-Page Store: a
// fixed-size-class backing allocator carved from host pages, with a
// cooperative page-reclamation protocol driven by a user eviction callback.
package tcps

import (
	"sync"

	"github.com/markmansi/tcps/internal/chunkset"
	"github.com/markmansi/tcps/internal/hostpage"
	"github.com/markmansi/tcps/internal/sizeclass"
)

// Handle is the opaque identifier returned by Alloc: numerically equal to
// the chunk's address.
type Handle = chunkset.Handle

// Pool is the root object of spec §3: a lock, per-class free-sets and page
// rosters, a pool-wide reclaim-set, a byte counter, and the collaborators
// (page source and eviction callback).
type Pool struct {
	mu sync.Mutex

	table  *sizeclass.Table
	source hostpage.PageSource
	ops    *Ops

	free    []*chunkset.Set   // per class, spec P.free[c]
	rosters []*hostpage.Roster // per class, spec P.pages[c]
	reclaim *chunkset.Set      // pool-wide, spec P.reclaim

	pages map[chunkset.Handle]*hostpage.Page // page base -> descriptor

	bytes       uint64
	retryBudget int
}

// New creates a pool per spec §4.2's create(ops). ops is carried inside cfg;
// a nil Config.Ops disables reclamation.
func New(cfg Config) (*Pool, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}
	table, err := sizeclass.New(cfg.PageSize, cfg.ClassSizes)
	if err != nil {
		return nil, err
	}

	p := &Pool{
		table:       table,
		source:      cfg.Source,
		ops:         cfg.Ops,
		free:        make([]*chunkset.Set, table.Count()),
		rosters:     make([]*hostpage.Roster, table.Count()),
		reclaim:     chunkset.New(),
		pages:       make(map[chunkset.Handle]*hostpage.Page),
		retryBudget: cfg.RetryBudget,
	}
	for c := 0; c < table.Count(); c++ {
		p.free[c] = chunkset.New()
		p.rosters[c] = hostpage.NewRoster()
	}
	return p, nil
}

// DefaultRetryBudget returns the retry budget this pool was configured
// with, for callers of ReclaimOne that want spec §6.3's default behavior.
func (p *Pool) DefaultRetryBudget() int {
	return p.retryBudget
}

// Close tears the pool down per spec §4.2's destroy(P). Precondition: the
// reclaim-set is empty and every chunk of every remaining page is free —
// i.e. every externally issued handle has been returned via Free. Violating
// this precondition is a programmer error and panics, per spec §7.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.reclaim.Len() != 0 {
		panic("tcps: Close of pool with a non-empty reclaim-set")
	}

	for c := 0; c < p.table.Count(); c++ {
		roster := p.rosters[c]
		for roster.Tail() != nil {
			page := roster.Tail()
			p.checkFullyFree(page, c)

			roster.Detach(page)
			chunkset.MoveRange(p.free[c], nil, page.Base, page.Base+chunkset.Handle(p.table.PageSize()))
			delete(p.pages, page.Base)

			if err := p.source.FreePage(page); err != nil {
				return err
			}
			p.bytes -= p.table.PageSize()
		}
	}
	return nil
}

// checkFullyFree panics if any chunk of page is not present in this pool's
// class-c free-set, i.e. if some handle was never returned via Free.
func (p *Pool) checkFullyFree(page *hostpage.Page, class int) {
	size := p.table.Size(class)
	n := p.table.ChunksPerPage(class)
	for i := 0; i < n; i++ {
		addr := page.Base + chunkset.Handle(uint64(i)*size)
		if !p.free[class].Contains(addr) {
			panic("tcps: Close of pool with outstanding live handles")
		}
	}
}

// Alloc implements spec §4.3.
func (p *Pool) Alloc(size int, hint Hint) (Handle, error) {
	if size <= 0 || hint != HintDefault {
		return 0, ErrInvalid
	}

	p.mu.Lock()
	class, ok := p.table.ClassOf(uint64(size))
	if !ok {
		p.mu.Unlock()
		return 0, ErrNoSpace
	}

	if h, ok := p.free[class].TakeMin(); ok {
		p.mu.Unlock()
		return h, nil
	}
	p.mu.Unlock()

	page, err := p.source.AllocPage()
	if err != nil {
		return 0, ErrOutOfMemory
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	page.Class = class
	page.Reclaiming = false

	chunkSize := p.table.Size(class)
	n := p.table.ChunksPerPage(class)
	for i := 0; i < n; i++ {
		p.free[class].Insert(page.Base + Handle(uint64(i)*chunkSize))
	}
	p.pages[page.Base] = page
	p.rosters[class].PushHead(page)
	p.bytes += p.table.PageSize()

	h, ok := p.free[class].TakeMin()
	if !ok {
		// unreachable: we just inserted n >= 1 chunks.
		panic("tcps: newly carved page has no free chunks")
	}
	return h, nil
}

// Free implements spec §4.4.
func (p *Pool) Free(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	page := p.pageFor(h)
	if page == nil {
		panic("tcps: Free of a handle not owned by this pool")
	}

	class := page.Class
	size := p.table.Size(class)
	if uint64(h-page.Base)%size != 0 {
		panic("tcps: Free of a misaligned handle")
	}
	if p.free[class].Contains(h) || p.reclaim.Contains(h) {
		panic("tcps: double free")
	}

	if page.Reclaiming {
		p.reclaim.Insert(h)
	} else {
		p.free[class].Insert(h)
	}
}

// Map implements spec §4.5: a direct view onto the chunk's bytes.
func (p *Pool) Map(h Handle) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	page := p.pageFor(h)
	if page == nil {
		panic("tcps: Map of a handle not owned by this pool")
	}
	return page.Bytes(h, p.table.Size(page.Class))
}

// Unmap implements spec §4.5: a no-op, preserved only to match the
// collaborator's expected API.
func (p *Pool) Unmap(h Handle) {}

// Size implements spec §4.6.
func (p *Pool) Size() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bytes
}

// pageFor recovers a page descriptor from a handle by masking to the host
// page boundary, per spec §9's lookup-strategy choice (i). Callers must hold
// p.mu.
func (p *Pool) pageFor(h Handle) *hostpage.Page {
	base := h &^ Handle(p.table.PageSize()-1)
	return p.pages[base]
}
