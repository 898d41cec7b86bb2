package virtual

import (
	"context"
	"time"
)

// Get returns the item at the given global index, fetching and caching the
// covering page as needed.
//
// A negative index, or an index at or beyond the end of the data reported by
// the source, fails with [ErrOutOfRange]. Errors returned by the source's
// own fetch are propagated to the caller unchanged; a failed fetch never
// populates the cache, so the next access retries naturally.
func (l *List[T]) Get(ctx context.Context, index int) (T, error) {
	var zero T
	if l.closed {
		return zero, disposedError("Get")
	}
	if index < 0 {
		return zero, outOfRangeError(index)
	}
	l.evictExpired()

	pageIndex := index / l.pageSize
	offset := index % l.pageSize

	// Warm the neighboring pages through the temporary path before
	// resolving the page actually needed. The results are discarded, so
	// speculative reads never grow the cache; failures are equally
	// speculative and do not fail the read.
	if l.prefetch {
		l.prefetchPage(ctx, pageIndex+1)
		if pageIndex > 0 {
			l.prefetchPage(ctx, pageIndex-1)
		}
	}

	pg, err := l.resolvePage(ctx, pageIndex)
	if err != nil {
		return zero, err
	}
	if pg == nil || offset >= len(pg.items) {
		// Absent page (source has nothing at this range) or a short
		// final page: both mean the index is past the end of the data.
		return zero, outOfRangeError(index)
	}
	return pg.items[offset], nil
}

// Len returns the total item count reported by the source, after sweeping
// expired pages.
func (l *List[T]) Len(ctx context.Context) (int, error) {
	if l.closed {
		return 0, disposedError("Len")
	}
	l.evictExpired()
	return l.source.Count(ctx)
}

// IndexOf returns the global index of item, delegating the search to the
// source. It returns -1 if the item is not present.
func (l *List[T]) IndexOf(ctx context.Context, item T) (int, error) {
	if l.closed {
		return -1, disposedError("IndexOf")
	}
	l.evictExpired()
	return l.source.IndexOf(ctx, item)
}

// Contains reports whether item is present in the source.
func (l *List[T]) Contains(ctx context.Context, item T) (bool, error) {
	index, err := l.IndexOf(ctx, item)
	if err != nil {
		return false, err
	}
	return index >= 0, nil
}

// resolvePage returns the page with the given index through the caching
// path: a live cached page is reused, anything else triggers a fetch. A nil
// page with a nil error means the source has no data for that range.
func (l *List[T]) resolvePage(ctx context.Context, pageIndex int) (*page[T], error) {
	if pg, ok := l.store.get(pageIndex); ok && !l.expired(pg) {
		l.stats.Hits++
		return pg, nil
	}
	l.stats.Misses++

	items, err := l.fetchTemporary(ctx, pageIndex)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		// End of data at this range. Drop any stale entry under the
		// same key so a source that later grows is re-queried cleanly.
		l.store.remove(pageIndex)
		return nil, nil
	}

	pg := &page[T]{
		index:         pageIndex,
		items:         items,
		lastRefreshed: time.Now(),
	}
	l.store.put(pg)
	return pg, nil
}

// fetchTemporary asks the source for one page worth of items without
// touching the store. Both the caching path and enumeration fetch through
// it; only the caching path stores the result.
func (l *List[T]) fetchTemporary(ctx context.Context, pageIndex int) ([]T, error) {
	l.stats.Fetches++
	return l.source.FetchRange(ctx, pageIndex*l.pageSize, l.pageSize)
}

// prefetchPage speculatively queries the source for a neighbor page,
// discarding the result and any error.
func (l *List[T]) prefetchPage(ctx context.Context, pageIndex int) {
	l.stats.Prefetches++
	_, _ = l.source.FetchRange(ctx, pageIndex*l.pageSize, l.pageSize)
}
