package virtual

import (
	"context"
	"iter"
)

// Iterator is a forward-only cursor over the full virtualized sequence.
//
// Iteration fetches one page at a time through the temporary (non-caching)
// path: a full scan should not evict or pollute the random-access cache.
// The sequence ends at the first page for which the source returns no items.
//
// An Iterator is not safe for concurrent use, and iterating while the
// underlying source is being mutated requires external synchronization.
// A new Iterator (starting over from the first page) is obtained by calling
// Iter again.
type Iterator[T any] struct {
	list      *List[T]
	ctx       context.Context
	pageIndex int // next page to fetch
	items     []T // current page
	offset    int // position within items
	index     int // global index of the current item
	err       error
	done      bool
}

// Iter returns an iterator positioned before the first item. If the list is
// already disposed the iterator yields nothing and reports [ErrDisposed]
// from Err.
func (l *List[T]) Iter(ctx context.Context) *Iterator[T] {
	it := &Iterator[T]{
		list:   l,
		ctx:    ctx,
		offset: -1,
		index:  -1,
	}
	if l.closed {
		it.err = disposedError("Iter")
		it.done = true
		return it
	}
	l.evictExpired()
	return it
}

// Next advances to the next item. It returns false when the sequence is
// exhausted or an error occurred; Err distinguishes the two.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	if it.list.closed {
		it.err = disposedError("Next")
		it.done = true
		return false
	}

	it.offset++
	if it.offset >= len(it.items) {
		items, err := it.list.fetchTemporary(it.ctx, it.pageIndex)
		if err != nil {
			it.err = err
			it.done = true
			return false
		}
		if len(items) == 0 {
			// End of data: empty page is the sole termination signal.
			it.done = true
			return false
		}
		it.pageIndex++
		it.items = items
		it.offset = 0
	}

	it.index++
	return true
}

// Item returns the item Next advanced to. It returns the zero value before
// the first Next or after iteration has ended.
func (it *Iterator[T]) Item() T {
	if it.offset < 0 || it.offset >= len(it.items) {
		var zero T
		return zero
	}
	return it.items[it.offset]
}

// Index returns the global index of the current item, or -1 before the
// first Next.
func (it *Iterator[T]) Index() int {
	return it.index
}

// Err returns the error that stopped iteration, or nil if iteration ended
// normally (or has not ended yet). Source errors are propagated unchanged.
func (it *Iterator[T]) Err() error {
	return it.err
}

// All returns a range-over-func view of the sequence, yielding each global
// index and item in order. Iteration stops silently if the source fails
// mid-scan; callers that need to distinguish errors from end-of-data should
// use [List.Iter] instead.
//
// Example:
//
//	for i, item := range list.All(ctx) {
//	    fmt.Println(i, item)
//	}
func (l *List[T]) All(ctx context.Context) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iter(ctx)
		for it.Next() {
			if !yield(it.Index(), it.Item()) {
				return
			}
		}
	}
}
