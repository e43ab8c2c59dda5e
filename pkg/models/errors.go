package models

// ErrorCategory is the coarse classification of a pipeline failure. It drives
// the human-readable error_reason on the protocol and the outbox retry
// decision.
type ErrorCategory string

// Error categories.
const (
	ErrorPDFQuality         ErrorCategory = "pdf_quality"
	ErrorLLMUnavailable     ErrorCategory = "llm_unavailable"
	ErrorLLMSchemaViolation ErrorCategory = "llm_schema_violation"
	ErrorTimeout            ErrorCategory = "timeout"
	ErrorAuth               ErrorCategory = "auth"
	ErrorStorage            ErrorCategory = "storage"
	ErrorToolMissing        ErrorCategory = "tool_missing"
	ErrorBreakerOpen        ErrorCategory = "breaker_open"
	ErrorPipelineFailed     ErrorCategory = "pipeline_failed"
)

// Retryable reports whether the outbox should re-queue a failure of this
// category. Non-retryable categories still consume the retry budget so the
// protocol eventually dead-letters with a stable reason.
func (c ErrorCategory) Retryable() bool {
	switch c {
	case ErrorLLMUnavailable, ErrorTimeout, ErrorStorage, ErrorBreakerOpen, ErrorPipelineFailed:
		return true
	}
	return false
}

// HumanReason returns the short user-facing string for the category.
func (c ErrorCategory) HumanReason() string {
	switch c {
	case ErrorPDFQuality:
		return "PDF text quality too low"
	case ErrorLLMUnavailable:
		return "AI service temporarily unavailable"
	case ErrorLLMSchemaViolation:
		return "AI response did not match the extraction schema"
	case ErrorTimeout:
		return "Processing timed out"
	case ErrorAuth:
		return "Credentials rejected by an upstream service"
	case ErrorStorage:
		return "Document storage unavailable"
	case ErrorToolMissing:
		return "UMLS grounding service unavailable"
	case ErrorBreakerOpen:
		return "AI service temporarily unavailable"
	default:
		return "Processing failed"
	}
}

// ErrorMetadata is the structured error context stored in
// protocol.metadata["error"] when a protocol dead-letters.
type ErrorMetadata struct {
	Category   ErrorCategory `json:"category"`
	Reason     string        `json:"reason"`
	RetryCount int           `json:"retry_count"`
}

// ToMap converts the metadata for storage in the protocol's JSON metadata.
func (e ErrorMetadata) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"category":    string(e.Category),
		"reason":      e.Reason,
		"retry_count": e.RetryCount,
	}
}
