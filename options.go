package virtual

import "time"

// Option configures a [List] at construction time.
type Option func(*listOptions)

type listOptions struct {
	ttl      *time.Duration // nil = pages never expire by time
	prefetch bool           // speculative warming of neighbor pages
}

func defaultListOptions() *listOptions {
	return &listOptions{
		prefetch: true,
	}
}

// WithTTL bounds the age of cached pages. A page older than ttl is evicted
// lazily before the next read and re-fetched on demand. Without this option
// cached pages are retained until the cache is cleared or the list closed.
//
// The TTL must not be negative; New rejects a negative value with
// [ErrInvalidConfig].
//
// Example:
//
//	list, err := virtual.New[Row](src, 100, virtual.WithTTL(30*time.Second))
func WithTTL(ttl time.Duration) Option {
	return func(opts *listOptions) {
		opts.ttl = &ttl
	}
}

// WithoutPrefetch disables the speculative, non-caching fetch of the pages
// adjacent to the one being read. Prefetching warms the source's own caches
// for scroll-adjacent access patterns at the cost of up to two extra source
// calls per read; sources with no internal caching, or callers with random
// access patterns, gain nothing from it.
func WithoutPrefetch() Option {
	return func(opts *listOptions) {
		opts.prefetch = false
	}
}
