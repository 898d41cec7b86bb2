package virtual

import (
	"errors"

	platformerrors "github.com/jmgilman/go/errors"
)

// Sentinel errors for the failure modes of a [List].
// They can be checked using errors.Is() for error handling and testing.
// Errors surfaced by the underlying [Source] are never translated into these
// sentinels; they are propagated to the caller unchanged.
var (
	// ErrInvalidConfig indicates that New was called with an unusable
	// configuration, such as a page size below 1 or a negative cache TTL.
	ErrInvalidConfig = errors.New("invalid list configuration")

	// ErrOutOfRange indicates that an index does not resolve to an item:
	// the index is negative, or it lies at or beyond the end of the data
	// reported by the source.
	ErrOutOfRange = errors.New("index out of range")

	// ErrDisposed indicates that an operation was attempted on a list
	// after Close was called.
	ErrDisposed = errors.New("list is disposed")

	// ErrReadOnly indicates that a mutation was attempted on the list.
	// The view is permanently read-only regardless of the mutability of
	// the underlying source.
	ErrReadOnly = errors.New("list is read-only")
)

// invalidConfigError reports a constructor misconfiguration, classified as a
// platform configuration error.
func invalidConfigError(format string, args ...any) error {
	return platformerrors.Wrapf(ErrInvalidConfig, platformerrors.CodeInvalidConfig, format, args...)
}

// outOfRangeError reports that index resolves past the end of the available
// data. Classified as not-found so callers can treat it as "no such element"
// rather than a defect.
func outOfRangeError(index int) error {
	return platformerrors.Wrapf(ErrOutOfRange, platformerrors.CodeNotFound, "no item at index %d", index)
}

// disposedError reports an operation on a closed list.
func disposedError(op string) error {
	return platformerrors.Wrapf(ErrDisposed, platformerrors.CodeConflict, "%s called on a disposed list", op)
}

// readOnlyError reports a rejected mutation.
func readOnlyError(op string) error {
	return platformerrors.Wrapf(ErrReadOnly, platformerrors.CodeNotImplemented, "%s is not supported on a read-only list", op)
}
