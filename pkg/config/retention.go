package config

import "time"

// RetentionConfig controls archival and checkpoint retention.
type RetentionConfig struct {
	// DeadLetterArchiveAfter is how long a protocol stays in dead_letter
	// before reads (and the sweep) move it to archived.
	DeadLetterArchiveAfter time.Duration

	// DoneEventTTL is how long delivered outbox events are kept for
	// inspection before the sweep deletes them.
	DoneEventTTL time.Duration

	// CleanupInterval is how often the retention loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		DeadLetterArchiveAfter: 7 * 24 * time.Hour,
		DoneEventTTL:           72 * time.Hour,
		CleanupInterval:        12 * time.Hour,
	}
}
