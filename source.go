package virtual

import "context"

// Source supplies the items behind a [List]. Implementations typically wrap
// an expensive or remote collection: a database query, a paginated API, a
// large file.
//
// A Source is consulted synchronously on the caller's goroutine; any timeout
// or cancellation behavior belongs to the implementation (honoring the
// provided context).
type Source[T any] interface {
	// Count returns the total number of items available.
	Count(ctx context.Context) (int, error)

	// FetchRange returns up to count items starting at the global index
	// start. Returning fewer items than requested is permitted; returning
	// zero items (or a nil slice, which is treated identically) signals
	// that no data exists at or beyond start.
	FetchRange(ctx context.Context, start, count int) ([]T, error)

	// IndexOf returns the global index of item, or -1 if the item is not
	// present in the source.
	IndexOf(ctx context.Context, item T) (int, error)
}

// ChangeNotifier is an optional capability of a [Source] whose underlying
// content can change out-of-band. A [List] backed by a ChangeNotifier
// subscribes at construction and clears its entire cache on every
// notification.
//
// OnChange registers fn to be invoked (synchronously, on the goroutine that
// mutates the source) whenever the source's content changes. The returned
// cancel function removes the registration and is safe to call multiple
// times.
type ChangeNotifier interface {
	OnChange(fn func()) (cancel func())
}
