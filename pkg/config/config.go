// Package config provides configuration for the Eligius pipeline core.
// Each concern has its own config struct with built-in defaults; Load applies
// environment overrides on top.
package config

import (
	"os"
)

// Config is the umbrella configuration object returned by Load and passed to
// the component constructors.
type Config struct {
	Outbox      *OutboxConfig
	Pipeline    *PipelineConfig
	Terminology *TerminologyConfig
	Resilience  *ResilienceConfig
	Retention   *RetentionConfig
	Review      *ReviewConfig

	// LLM settings.
	GeminiAPIKey string
	GeminiModel  string

	// Object store settings.
	GCSBucket string

	// Terminology cache; empty disables the cache.
	RedisAddr string

	// Observability sink; empty disables tracing.
	MLFlowTrackingURI string
}

// Load builds the configuration from defaults plus environment overrides.
func Load() *Config {
	return &Config{
		Outbox:      DefaultOutboxConfig(),
		Pipeline:    DefaultPipelineConfig(),
		Terminology: DefaultTerminologyConfig(),
		Resilience:  DefaultResilienceConfig(),
		Retention:   DefaultRetentionConfig(),
		Review:      DefaultReviewConfig(),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),

		GCSBucket: getEnvOrDefault("GCS_BUCKET", "eligius-protocols"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		MLFlowTrackingURI: os.Getenv("MLFLOW_TRACKING_URI"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
