package outbox

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/resilience"
)

func TestCategorize_TypedErrorWins(t *testing.T) {
	err := fmt.Errorf("wrapped: %w",
		models.NewCategorizedError(models.ErrorPDFQuality, errors.New("garbled text layer")))
	assert.Equal(t, models.ErrorPDFQuality, Categorize(err))
}

func TestCategorize_BreakerOpen(t *testing.T) {
	assert.Equal(t, models.ErrorBreakerOpen,
		Categorize(fmt.Errorf("llm call: %w", resilience.ErrBreakerOpen)))
}

func TestCategorize_ContextDeadline(t *testing.T) {
	assert.Equal(t, models.ErrorTimeout,
		Categorize(fmt.Errorf("extract: %w", context.DeadlineExceeded)))
}

func TestCategorize_MessageSubstrings(t *testing.T) {
	cases := map[string]models.ErrorCategory{
		"pdf text layer unreadable":        models.ErrorPDFQuality,
		"request timeout after 120s":       models.ErrorTimeout,
		"got 401 from upstream":            models.ErrorAuth,
		"bucket does not exist":            models.ErrorStorage,
		"no handler for event kind X":      models.ErrorToolMissing,
		"something completely unexpected":  models.ErrorPipelineFailed,
	}
	for msg, want := range cases {
		assert.Equal(t, want, Categorize(errors.New(msg)), msg)
	}
}

func TestDeadLetterReason(t *testing.T) {
	assert.Equal(t, "AI service temporarily unavailable", deadLetterReason(models.ErrorLLMUnavailable))
	assert.Equal(t, "PDF text quality too low", deadLetterReason(models.ErrorPDFQuality))
	assert.Equal(t, "UMLS grounding service unavailable", deadLetterReason(models.ErrorToolMissing))
	assert.Equal(t, "Maximum retries exceeded", deadLetterReason(models.ErrorPipelineFailed))
}

func TestEventError_DefaultFallback(t *testing.T) {
	err := errors.New("mystery")
	assert.Equal(t, "failed: mystery", eventError(models.ErrorPipelineFailed, err))
	assert.Equal(t, "timeout: mystery", eventError(models.ErrorTimeout, err))
}
