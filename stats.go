package tcps

// ClassStats reports the state of one size class.
type ClassStats struct {
	// Size is the chunk size in bytes for this class.
	Size uint64

	// Pages is the number of host pages currently carved into this class.
	Pages int

	// FreeChunks is the number of chunks in this class currently available
	// to Alloc.
	FreeChunks int
}

// PoolStats is a point-in-time snapshot of a Pool's bookkeeping, exposed for
// introspection by operators and tests. It is not part of the reclaim
// protocol itself.
type PoolStats struct {
	// Bytes is the total host memory currently held by the pool.
	Bytes uint64

	// ReclaimChunks is the number of chunks currently quarantined in the
	// pool-wide reclaim-set: free chunks of pages under reclamation, either
	// moved there at quarantine or freed since. S3 skips them rather than
	// passing them to Ops.Evict.
	ReclaimChunks int

	// Classes holds one entry per size class, largest first.
	Classes []ClassStats
}

// Stats returns a snapshot of the pool's current bookkeeping.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := PoolStats{
		Bytes:         p.bytes,
		ReclaimChunks: p.reclaim.Len(),
		Classes:       make([]ClassStats, p.table.Count()),
	}
	for c := 0; c < p.table.Count(); c++ {
		stats.Classes[c] = ClassStats{
			Size:       p.table.Size(c),
			Pages:      p.rosters[c].Len(),
			FreeChunks: p.free[c].Len(),
		}
	}
	return stats
}
