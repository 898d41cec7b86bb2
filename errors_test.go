package virtual

import (
	"errors"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
)

// TestErrorClassification verifies that each failure mode carries both its
// sentinel (for errors.Is) and its platform code (for GetCode).
func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     platformerrors.ErrorCode
	}{
		{
			name:     "invalid configuration",
			err:      invalidConfigError("page size must be at least 1, got %d", 0),
			sentinel: ErrInvalidConfig,
			code:     platformerrors.CodeInvalidConfig,
		},
		{
			name:     "out of range",
			err:      outOfRangeError(42),
			sentinel: ErrOutOfRange,
			code:     platformerrors.CodeNotFound,
		},
		{
			name:     "disposed",
			err:      disposedError("Get"),
			sentinel: ErrDisposed,
			code:     platformerrors.CodeConflict,
		},
		{
			name:     "read only",
			err:      readOnlyError("Insert"),
			sentinel: ErrReadOnly,
			code:     platformerrors.CodeNotImplemented,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.Equal(t, tt.code, platformerrors.GetCode(tt.err))
			assert.False(t, platformerrors.IsRetryable(tt.err),
				"list errors are permanent, retrying cannot help")
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrInvalidConfig, ErrOutOfRange, ErrDisposed, ErrReadOnly}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
		}
	}
}
