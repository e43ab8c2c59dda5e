package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategory_Retryable(t *testing.T) {
	retryable := []ErrorCategory{
		ErrorLLMUnavailable, ErrorTimeout, ErrorStorage, ErrorBreakerOpen, ErrorPipelineFailed,
	}
	for _, c := range retryable {
		assert.True(t, c.Retryable(), string(c))
	}

	permanent := []ErrorCategory{
		ErrorPDFQuality, ErrorLLMSchemaViolation, ErrorAuth, ErrorToolMissing,
	}
	for _, c := range permanent {
		assert.False(t, c.Retryable(), string(c))
	}
}

func TestCategorizedError_WrapsAndUnwraps(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewCategorizedError(ErrorStorage, inner)

	assert.Equal(t, "storage: connection refused", err.Error())
	assert.ErrorIs(t, err, inner)

	wrapped := fmt.Errorf("handler failed: %w", err)
	var ce *CategorizedError
	require.ErrorAs(t, wrapped, &ce)
	assert.Equal(t, ErrorStorage, ce.Category)
}

func TestProtocolEventPayload_RoundTrip(t *testing.T) {
	payload := ProtocolEventPayload{ProtocolID: "p1", Title: "Phase II study"}

	m, err := payload.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "p1", m["protocol_id"])

	decoded, err := DecodeProtocolEventPayload(m)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestCategoryEntityType_Fallback(t *testing.T) {
	assert.Equal(t, EntityMedication, CategoryEntityType("prior_therapy"))
	assert.Equal(t, EntityLabValue, CategoryEntityType("lab_value"))
	assert.Equal(t, EntityCondition, CategoryEntityType("something_new"))
}

func TestReviewDecision_Valid(t *testing.T) {
	assert.True(t, DecisionApproved.Valid())
	assert.True(t, DecisionModified.Valid())
	assert.False(t, ReviewDecision("").Valid())
	assert.False(t, ReviewDecision("maybe").Valid())
}
