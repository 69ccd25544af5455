package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "rate limit", err: ErrRateLimit, want: true},
		{name: "server error wrapped", err: fmt.Errorf("fetch: %w", ErrServerError), want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "not found", err: ErrNotFound, want: false},
		{name: "bad request", err: ErrBadRequest, want: false},
		{name: "retryable marker", err: &RetryableError{Err: errors.New("flaky"), Retryable: true}, want: true},
		{name: "non-retryable marker", err: &RetryableError{Err: errors.New("fatal"), Retryable: false}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestFormatUserError(t *testing.T) {
	assert.Empty(t, FormatUserError(nil))
	assert.Equal(t, "boom", FormatUserError(errors.New("boom")))

	friendly := NewUserError("Backend is unreachable", ErrServerError)
	assert.Equal(t, "Backend is unreachable", FormatUserError(friendly))

	wrapped := fmt.Errorf("confirm: %w", friendly)
	assert.Equal(t, "Backend is unreachable", FormatUserError(wrapped))
}
