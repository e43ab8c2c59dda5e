package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_StopsAfterAttempts(t *testing.T) {
	cfg := RetryConfig{Attempts: 3, BackoffBase: time.Millisecond, BackoffMax: time.Millisecond}

	calls := 0
	err := Retry(context.Background(), cfg, nil, func(context.Context) error {
		calls++
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 3, calls)
}

func TestRetry_SucceedsMidway(t *testing.T) {
	cfg := RetryConfig{Attempts: 5, BackoffBase: time.Millisecond, BackoffMax: time.Millisecond}

	calls := 0
	err := Retry(context.Background(), cfg, nil, func(context.Context) error {
		calls++
		if calls < 3 {
			return errBoom
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_BreakerOpenAbortsImmediately(t *testing.T) {
	cfg := RetryConfig{Attempts: 5, BackoffBase: time.Millisecond}

	calls := 0
	err := Retry(context.Background(), cfg, nil, func(context.Context) error {
		calls++
		return ErrBreakerOpen
	})
	require.ErrorIs(t, err, ErrBreakerOpen)
	assert.Equal(t, 1, calls)
}

func TestRetry_NonRetryableAborts(t *testing.T) {
	cfg := RetryConfig{Attempts: 5, BackoffBase: time.Millisecond}
	permanent := errors.New("schema violation")

	calls := 0
	err := Retry(context.Background(), cfg, func(err error) bool {
		return !errors.Is(err, permanent)
	}, func(context.Context) error {
		calls++
		return permanent
	})
	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetry_ContextCancellation(t *testing.T) {
	cfg := RetryConfig{Attempts: 10, BackoffBase: 50 * time.Millisecond, BackoffMax: 50 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, cfg, nil, func(context.Context) error {
		calls++
		cancel()
		return errBoom
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestBackoffDelay_WithinCeiling(t *testing.T) {
	cfg := RetryConfig{BackoffBase: time.Second, BackoffMax: 4 * time.Second}

	for attempt := 1; attempt <= 10; attempt++ {
		for i := 0; i < 50; i++ {
			d := BackoffDelay(cfg, attempt)
			assert.GreaterOrEqual(t, d, time.Duration(0))
			assert.Less(t, d, 4*time.Second)
		}
	}

	// First retry draws from [0, base).
	for i := 0; i < 50; i++ {
		assert.Less(t, BackoffDelay(cfg, 1), time.Second)
	}
}
