package virtual

import (
	"io"
	"runtime"
	"time"
)

// List is a read-only, on-demand-loading view over the items of a [Source].
//
// Reads resolve through a page cache: the page covering the requested index
// is fetched from the source on first access and reused until it expires or
// the cache is invalidated. The list owns its source exclusively; closing
// the list releases the source.
//
// A List is not safe for concurrent use. Constructed by [New].
type List[T any] struct {
	source   Source[T]
	pageSize int
	ttl      *time.Duration
	prefetch bool

	store  *pageStore[T]
	closed bool

	// Change-notification wiring. sourceCancel detaches the list from a
	// notifying source; subscribers receive the re-raised notification.
	sourceCancel func()
	subscribers  map[int]func()
	nextSubID    int

	stats   Stats
	cleanup *runtime.Cleanup
}

// New creates a List over source with the given page size.
//
// The page size is fixed for the lifetime of the list and must be at least 1.
// If the source implements [ChangeNotifier], the list subscribes immediately
// and clears its cache on every notification. If the source implements
// io.Closer, it is closed when the list is closed.
//
// Example:
//
//	list, err := virtual.New[Record](src, 100,
//	    virtual.WithTTL(time.Minute))
func New[T any](source Source[T], pageSize int, opts ...Option) (*List[T], error) {
	if source == nil {
		return nil, invalidConfigError("source is required")
	}
	if pageSize < 1 {
		return nil, invalidConfigError("page size must be at least 1, got %d", pageSize)
	}

	options := defaultListOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.ttl != nil && *options.ttl < 0 {
		return nil, invalidConfigError("cache TTL must not be negative, got %s", *options.ttl)
	}

	l := &List[T]{
		source:      source,
		pageSize:    pageSize,
		ttl:         options.ttl,
		prefetch:    options.prefetch,
		store:       newPageStore[T](),
		subscribers: make(map[int]func()),
	}

	if notifier, ok := source.(ChangeNotifier); ok {
		l.sourceCancel = notifier.OnChange(l.invalidate)
	}

	// Safety net for callers that forget to Close: release a closeable
	// source when the list becomes unreachable. Best-effort only; an
	// explicit Close cancels it.
	if closer, ok := source.(io.Closer); ok {
		cleanup := runtime.AddCleanup(l, func(c io.Closer) { _ = c.Close() }, closer)
		l.cleanup = &cleanup
	}

	return l, nil
}

// Close disposes the list: it unsubscribes from the source's change
// notifications, drops all cached pages, and closes the source if it
// implements io.Closer. Every subsequent read fails with [ErrDisposed].
//
// Close is idempotent; a second call is a no-op and returns nil.
func (l *List[T]) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true

	if l.cleanup != nil {
		l.cleanup.Stop()
		l.cleanup = nil
	}
	if l.sourceCancel != nil {
		l.sourceCancel()
		l.sourceCancel = nil
	}
	l.store.clear()
	l.subscribers = nil

	if closer, ok := l.source.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// OnChange registers fn to be invoked whenever the list's cache is
// invalidated by a change notification from the source. The returned cancel
// function removes the registration.
//
// Notifications are re-raised synchronously, after the cache has been
// cleared, so a subscriber that immediately re-reads the list observes fresh
// data.
func (l *List[T]) OnChange(fn func()) (cancel func(), err error) {
	if l.closed {
		return nil, disposedError("OnChange")
	}
	id := l.nextSubID
	l.nextSubID++
	l.subscribers[id] = fn
	return func() {
		if l.subscribers != nil {
			delete(l.subscribers, id)
		}
	}, nil
}

// invalidate is the source change handler: total cache clear, then re-raise.
// The source reports only that something changed, never what, so selective
// invalidation is not possible.
func (l *List[T]) invalidate() {
	if l.closed {
		return
	}
	l.store.clear()
	for _, fn := range l.subscribers {
		fn()
	}
}

// ClearCache drops every cached page. The next read of any index fetches
// fresh data from the source.
func (l *List[T]) ClearCache() error {
	if l.closed {
		return disposedError("ClearCache")
	}
	l.store.clear()
	return nil
}

// EvictExpired removes every cached page older than the configured TTL.
// Reads perform the same sweep implicitly; EvictExpired exists for callers
// that want to bound memory between reads. Without a TTL it is a no-op.
func (l *List[T]) EvictExpired() error {
	if l.closed {
		return disposedError("EvictExpired")
	}
	l.evictExpired()
	return nil
}

// evictExpired is the lazy full-scan TTL sweep run before every read.
func (l *List[T]) evictExpired() {
	if l.ttl == nil {
		return
	}
	ttl := *l.ttl
	now := time.Now()
	evicted := l.store.evictFunc(func(pg *page[T]) bool {
		return now.Sub(pg.lastRefreshed) > ttl
	})
	l.stats.Evictions += uint64(evicted)
}

// expired reports whether pg is past the configured TTL. A page whose age
// equals the TTL exactly is still live.
func (l *List[T]) expired(pg *page[T]) bool {
	if l.ttl == nil {
		return false
	}
	return time.Since(pg.lastRefreshed) > *l.ttl
}

// Insert always fails with [ErrReadOnly].
func (l *List[T]) Insert(index int, item T) error {
	return readOnlyError("Insert")
}

// Remove always fails with [ErrReadOnly].
func (l *List[T]) Remove(index int) error {
	return readOnlyError("Remove")
}

// Set always fails with [ErrReadOnly].
func (l *List[T]) Set(index int, item T) error {
	return readOnlyError("Set")
}

// Clear always fails with [ErrReadOnly]. To drop cached pages without
// touching the source, use ClearCache.
func (l *List[T]) Clear() error {
	return readOnlyError("Clear")
}
