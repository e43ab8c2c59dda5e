package config

import "time"

// PipelineConfig controls pipeline runs.
type PipelineConfig struct {
	// MaxPDFBytes is the upper bound accepted by the ingest node.
	MaxPDFBytes int64

	// LLMTimeout bounds a single extraction call.
	LLMTimeout time.Duration

	// GroundingFanOut is the maximum number of entities grounded in
	// parallel within one batch.
	GroundingFanOut int
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxPDFBytes:     50 << 20, // 50 MiB
		LLMTimeout:      120 * time.Second,
		GroundingFanOut: 8,
	}
}
