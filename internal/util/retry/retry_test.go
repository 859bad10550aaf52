package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithExponentialBackoff_Success(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_SuccessAfterRetries(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("temporary error")
		}
		return nil
	}, WithInitialDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithExponentialBackoff_Exhausted(t *testing.T) {
	t.Parallel()
	attempts := 0
	last := errors.New("persistent error")

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return last
	}, WithMaxRetries(3), WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.Equal(t, 4, attempts, "1 attempt + 3 retries")

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 4, exhausted.Attempts)
	assert.ErrorIs(t, err, last)
	assert.Contains(t, err.Error(), "after 4 attempts")
}

func TestWithExponentialBackoff_ContextCancellation(t *testing.T) {
	t.Parallel()
	attempts := 0
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithExponentialBackoff(ctx, func() error {
		attempts++
		return errors.New("error")
	}, WithInitialDelay(10*time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_FatalError(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return Fatal(errors.New("fatal error"))
	}, WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_RetryIf(t *testing.T) {
	t.Parallel()
	retryable := errors.New("not yet")
	permanent := errors.New("bad request")

	tests := []struct {
		name     string
		errs     []error
		wantErr  error
		attempts int
	}{
		{name: "retryable then success", errs: []error{retryable, retryable, nil}, attempts: 3},
		{name: "permanent stops immediately", errs: []error{permanent, nil}, wantErr: permanent, attempts: 1},
		{name: "retryable then permanent", errs: []error{retryable, permanent}, wantErr: permanent, attempts: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			attempts := 0
			err := WithExponentialBackoff(context.Background(), func() error {
				e := tt.errs[attempts]
				attempts++
				return e
			},
				WithInitialDelay(time.Millisecond),
				WithRetryIf(func(err error) bool { return errors.Is(err, retryable) }))

			assert.Equal(t, tt.attempts, attempts)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			var exhausted *ExhaustedError
			assert.False(t, errors.As(err, &exhausted), "permanent errors are returned as-is")
		})
	}
}

func TestWithExponentialBackoff_OnRetryAndMaxDelay(t *testing.T) {
	t.Parallel()
	var delays []time.Duration
	var nexts []int

	_ = WithExponentialBackoff(context.Background(), func() error {
		return errors.New("error")
	},
		WithMaxRetries(4),
		WithInitialDelay(time.Millisecond),
		WithMultiplier(3),
		WithMaxDelay(5*time.Millisecond),
		WithOnRetry(func(next int, delay time.Duration, _ error) {
			nexts = append(nexts, next)
			delays = append(delays, delay)
		}))

	assert.Equal(t, []int{2, 3, 4, 5}, nexts)
	assert.Equal(t, []time.Duration{
		time.Millisecond,
		3 * time.Millisecond,
		5 * time.Millisecond,
		5 * time.Millisecond,
	}, delays)
}

func TestFatal(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Fatal(nil))

	original := errors.New("test error")
	err := Fatal(original)
	assert.True(t, IsFatal(err))
	assert.Equal(t, original.Error(), err.Error())
	assert.Same(t, original, errors.Unwrap(err))
}

func TestIsFatal_Wrapped(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("sentinel")
	wrapped := fmt.Errorf("context: %w", Fatal(sentinel))

	assert.True(t, IsFatal(wrapped))
	assert.ErrorIs(t, wrapped, sentinel)
	assert.False(t, IsFatal(errors.New("regular")))
}
