package outbox

import (
	"context"
	"errors"
	"strings"

	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/resilience"
)

// Categorize maps a handler failure to an error category. Typed errors win;
// message substrings are the fallback for errors that crossed an untyped
// boundary.
func Categorize(err error) models.ErrorCategory {
	var ce *models.CategorizedError
	if errors.As(err, &ce) {
		return ce.Category
	}
	if errors.Is(err, resilience.ErrBreakerOpen) {
		return models.ErrorBreakerOpen
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return models.ErrorTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "pdf") || strings.Contains(msg, "quality"):
		return models.ErrorPDFQuality
	case strings.Contains(msg, "circuit breaker"):
		return models.ErrorBreakerOpen
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return models.ErrorTimeout
	case strings.Contains(msg, "unauthorized") || strings.Contains(msg, "401") ||
		strings.Contains(msg, "forbidden") || strings.Contains(msg, "credential"):
		return models.ErrorAuth
	case strings.Contains(msg, "storage") || strings.Contains(msg, "bucket"):
		return models.ErrorStorage
	case strings.Contains(msg, "no handler") || strings.Contains(msg, "tool"):
		return models.ErrorToolMissing
	default:
		return models.ErrorPipelineFailed
	}
}

// deadLetterReason is the protocol-facing error_reason written when the
// retry budget is exhausted.
func deadLetterReason(category models.ErrorCategory) string {
	if category == models.ErrorPipelineFailed {
		return "Maximum retries exceeded"
	}
	return category.HumanReason()
}

// eventError is the last_error recorded on the event row between attempts.
func eventError(category models.ErrorCategory, err error) string {
	if category == models.ErrorPipelineFailed {
		return "failed: " + err.Error()
	}
	return string(category) + ": " + err.Error()
}
