package resilience

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// RetryConfig controls the exponential backoff retry loop.
type RetryConfig struct {
	// Attempts is the total number of tries, including the first.
	Attempts int
	// BackoffBase is the delay ceiling after the first failure; it doubles
	// each attempt.
	BackoffBase time.Duration
	// BackoffMax caps the delay ceiling.
	BackoffMax time.Duration
}

// Retryable classifies whether an error is worth retrying. A nil function
// retries everything except breaker-open and context errors.
type Retryable func(error) bool

// Retry runs fn up to cfg.Attempts times with full-jitter exponential
// backoff. Breaker-open and context cancellation abort immediately
// regardless of attempts remaining.
func Retry(ctx context.Context, cfg RetryConfig, retryable Retryable, fn func(context.Context) error) error {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < cfg.Attempts; attempt++ {
		if attempt > 0 {
			if err := sleepWithJitter(ctx, cfg, attempt); err != nil {
				return err
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, ErrBreakerOpen) {
			return lastErr
		}
		if ctx.Err() != nil {
			return lastErr
		}
		if retryable != nil && !retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

// BackoffDelay computes the full-jitter delay before the given attempt
// (attempt 1 = first retry). The ceiling doubles per attempt and is capped;
// the actual delay is uniform in [0, ceiling).
func BackoffDelay(cfg RetryConfig, attempt int) time.Duration {
	ceiling := cfg.BackoffBase << (attempt - 1)
	if cfg.BackoffMax > 0 && (ceiling > cfg.BackoffMax || ceiling <= 0) {
		ceiling = cfg.BackoffMax
	}
	if ceiling <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(ceiling)))
}

func sleepWithJitter(ctx context.Context, cfg RetryConfig, attempt int) error {
	delay := BackoffDelay(cfg, attempt)
	if delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
