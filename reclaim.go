package tcps

import (
	"github.com/markmansi/tcps/internal/chunkset"
	"github.com/markmansi/tcps/internal/hostpage"
)

// ReclaimOne implements the reclaim driver of spec §4.7: it attempts to
// return exactly one host page to the page source by evicting its still-live
// chunks via Ops.Evict.
func (p *Pool) ReclaimOne(retries int) error {
	p.mu.Lock()
	if p.ops == nil || p.ops.Evict == nil || retries <= 0 || !p.hasCandidate() {
		p.mu.Unlock()
		return ErrNoEvict
	}
	p.mu.Unlock()

	curClass := 0

	for retries > 0 {
		victim, class, err := p.selectAndQuarantine(&curClass)
		if err != nil {
			return err
		}
		pageSize := p.table.PageSize()

		status := p.evictChunks(victim, class)

		p.mu.Lock()
		drained := status == nil && p.pageFullyReclaimed(victim, class)
		if drained {
			// S4 verify drained.
			chunkset.MoveRange(p.reclaim, nil, victim.Base, victim.Base+Handle(pageSize))
			victim.Reclaiming = false
			delete(p.pages, victim.Base)
			p.mu.Unlock()

			if err := p.source.FreePage(victim); err != nil {
				return err
			}

			p.mu.Lock()
			p.bytes -= pageSize
			p.mu.Unlock()
			return nil
		}

		// S5 reverse quarantine.
		victim.Reclaiming = false
		chunkset.MoveRange(p.reclaim, p.free[class], victim.Base, victim.Base+Handle(pageSize))
		p.rosters[class].PushHead(victim)
		retries--
		p.mu.Unlock()
	}

	return ErrExhausted
}

// hasCandidate reports whether any class has a non-empty page roster.
// Callers must hold p.mu.
func (p *Pool) hasCandidate() bool {
	for _, r := range p.rosters {
		if !r.Empty() {
			return true
		}
	}
	return false
}

// selectAndQuarantine implements S1 and S2 as one critical section: it walks
// classes from largest to smallest looking for a non-quarantined tail page,
// rotates it to the head of its roster, then immediately quarantines it
// (flags it, detaches it from the roster, and moves its free chunks into the
// pool-wide reclaim-set) before releasing the lock. Folding S1 and S2 into a
// single lock acquisition closes the window in which a concurrent caller
// could observe the same selected-but-not-yet-quarantined page as a valid
// candidate. curClass persists across calls within one ReclaimOne
// invocation, matching spec §4.7's "state variables local to this call".
func (p *Pool) selectAndQuarantine(curClass *int) (*hostpage.Page, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		if *curClass >= p.table.Count() {
			return nil, 0, ErrExhausted
		}
		roster := p.rosters[*curClass]
		if roster.Empty() {
			*curClass++
			continue
		}
		cand := roster.Tail()
		if cand.Reclaiming {
			*curClass++
			continue
		}
		roster.MoveToHead(cand)

		class := *curClass
		cand.Reclaiming = true
		roster.Detach(cand)
		chunkset.MoveRange(p.free[class], p.reclaim, cand.Base, cand.Base+Handle(p.table.PageSize()))
		return cand, class, nil
	}
}

// evictChunks implements S3: iterate the victim page's chunk addresses,
// skipping any already quarantined, calling Ops.Evict on the rest. It
// returns nil on full success or the first non-nil error from Evict.
func (p *Pool) evictChunks(victim *hostpage.Page, class int) error {
	size := p.table.Size(class)
	n := p.table.ChunksPerPage(class)

	for i := 0; i < n; i++ {
		addr := victim.Base + Handle(uint64(i)*size)

		p.mu.Lock()
		already := p.reclaim.Contains(addr)
		p.mu.Unlock()
		if already {
			continue
		}

		if err := p.ops.Evict(addr); err != nil {
			return err
		}
	}
	return nil
}

// pageFullyReclaimed implements S4's verification: every chunk address of
// victim must be a member of the reclaim-set. Callers must hold p.mu.
func (p *Pool) pageFullyReclaimed(victim *hostpage.Page, class int) bool {
	size := p.table.Size(class)
	n := p.table.ChunksPerPage(class)
	for i := 0; i < n; i++ {
		addr := victim.Base + Handle(uint64(i)*size)
		if !p.reclaim.Contains(addr) {
			return false
		}
	}
	return true
}
