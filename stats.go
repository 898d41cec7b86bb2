package virtual

// Stats describes the effectiveness of a list's page cache. Counters
// accumulate over the lifetime of the list and survive cache clears and
// Close; Pages reflects the current store size.
type Stats struct {
	// Pages is the number of pages currently cached.
	Pages int

	// Hits counts reads answered from a live cached page.
	Hits uint64

	// Misses counts reads that had to fetch from the source.
	Misses uint64

	// Fetches counts source FetchRange calls made on behalf of reads and
	// enumeration, excluding prefetch.
	Fetches uint64

	// Prefetches counts speculative neighbor-page fetches.
	Prefetches uint64

	// Evictions counts pages removed by TTL sweeps.
	Evictions uint64
}

// Stats returns a snapshot of the list's cache counters. It remains callable
// after Close.
func (l *List[T]) Stats() Stats {
	stats := l.stats
	stats.Pages = l.store.len()
	return stats
}
