// Package virtual provides a read-only, on-demand-loading view over a large or
// remote dataset.
//
// # Overview
//
// A [List] presents the items of a [Source] as an indexable, enumerable
// sequence without materializing the whole dataset in memory. Items are
// loaded one page at a time and cached:
//
//  1. Pages (fixed-size blocks of items): fetched from the source on first
//     access and reused for subsequent reads.
//  2. TTL eviction: cached pages older than the configured cache time are
//     dropped lazily before every read.
//  3. Neighbor prefetch: reads speculatively warm the adjacent pages without
//     growing the cache, amortizing the scroll-adjacent access patterns of
//     virtualized list UIs.
//
// # Architecture
//
// Data flows one way, from the source to the caller:
//
//	Source → page → page store → List → caller
//
// A change notification (if the source supports one) flows the opposite
// direction and clears the entire page store; the source reports only that
// something changed, not what, so total invalidation is the only safe
// response.
//
// The list is not safe for concurrent use. All fetching happens
// synchronously on the calling goroutine; there is no background worker.
// Callers that share a list across goroutines must provide their own mutual
// exclusion around the entire list.
//
// # Usage
//
// Create a list over a source and read from it:
//
//	list, err := virtual.New[Record](src, 100, virtual.WithTTL(time.Minute))
//	if err != nil {
//	    return err
//	}
//	defer list.Close()
//
//	record, err := list.Get(ctx, 1234)
//
// Enumerate the whole sequence without polluting the cache:
//
//	it := list.Iter(ctx)
//	for it.Next() {
//	    process(it.Item())
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// Ready-made sources (an in-memory slice with change notification, and a
// JSON Lines file on a billy filesystem) live in the source subpackage.
package virtual
