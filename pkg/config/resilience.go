package config

import "time"

// ResilienceConfig controls the circuit breakers guarding external services.
type ResilienceConfig struct {
	// FailMax is the consecutive-failure count that opens a breaker.
	FailMax int

	// ResetTimeout is how long an open breaker waits before admitting a
	// half-open probe.
	ResetTimeout time.Duration
}

// DefaultResilienceConfig returns the built-in breaker defaults.
func DefaultResilienceConfig() *ResilienceConfig {
	return &ResilienceConfig{
		FailMax:      3,
		ResetTimeout: 60 * time.Second,
	}
}
