package config

import "time"

// OutboxConfig controls the outbox processor: how events are polled, claimed,
// retried, and dead-lettered.
type OutboxConfig struct {
	// WorkerCount is the number of processor goroutines per replica.
	WorkerCount int

	// BatchSize is the maximum number of events claimed per poll cycle.
	BatchSize int

	// MaxInFlight is the per-instance cap on events being handled at once.
	// When reached, the processor sleeps before polling again.
	MaxInFlight int

	// PollInterval is the base interval for checking dispatchable events.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// MaxRetries is the delivery attempt cap before an event dead-letters.
	MaxRetries int

	// RetryBackoffBase and RetryBackoffCap bound the full-jitter exponential
	// backoff applied to failed events.
	RetryBackoffBase time.Duration
	RetryBackoffCap  time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight handlers
	// during shutdown.
	GracefulShutdownTimeout time.Duration

	// ClaimLease is how long an in_flight claim stays valid. A worker that
	// crashes mid-delivery never finishes its claim; once the lease expires
	// the orphan scan requeues (or dead-letters) the event. Must exceed the
	// longest handler run, including the LLM timeout.
	ClaimLease time.Duration

	// OrphanScanInterval is how often each replica scans for expired claims.
	// Zero disables the scan.
	OrphanScanInterval time.Duration
}

// DefaultOutboxConfig returns the built-in outbox defaults.
func DefaultOutboxConfig() *OutboxConfig {
	return &OutboxConfig{
		WorkerCount:             2,
		BatchSize:               32,
		MaxInFlight:             8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MaxRetries:              3,
		RetryBackoffBase:        1 * time.Second,
		RetryBackoffCap:         60 * time.Second,
		GracefulShutdownTimeout: 5 * time.Minute,
		ClaimLease:              10 * time.Minute,
		OrphanScanInterval:      1 * time.Minute,
	}
}
