package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/pkg/models"
)

func schemaViolation(t *testing.T, err error) {
	t.Helper()
	var ce *models.CategorizedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, models.ErrorLLMSchemaViolation, ce.Category)
}

func TestParseExtraction_ValidResponse(t *testing.T) {
	raw := []byte(`{"criteria":[
		{
			"text": "Hemoglobin >= 9 g/dL",
			"kind": "inclusion",
			"category": "lab_value",
			"confidence": 0.93,
			"page": 12,
			"thresholds": [{"field": "hemoglobin", "value": 9, "comparator": ">=", "unit": "g/dL"}],
			"assertion_status": "PRESENT",
			"entities": [{"text": "hemoglobin", "context": "Hemoglobin >= 9 g/dL"}]
		},
		{
			"text": "No myocardial infarction within 6 months",
			"kind": "exclusion",
			"category": "condition",
			"confidence": 0.88,
			"page": 13,
			"temporal": {"duration": "P6M", "relation": "within", "reference": "screening"},
			"assertion_status": "ABSENT",
			"entities": [{"text": "myocardial infarction"}]
		}
	]}`)

	criteria, err := parseExtraction(raw)
	require.NoError(t, err)
	require.Len(t, criteria, 2)

	assert.Equal(t, models.KindInclusion, criteria[0].Kind)
	require.Len(t, criteria[0].Thresholds, 1)
	assert.Equal(t, models.ComparatorGTE, criteria[0].Thresholds[0].Comparator)

	require.NotNil(t, criteria[1].Temporal)
	assert.Equal(t, models.TemporalWithin, criteria[1].Temporal.Relation)
}

func TestParseExtraction_InvalidJSON(t *testing.T) {
	_, err := parseExtraction([]byte(`I could not process this document.`))
	schemaViolation(t, err)
}

func TestParseExtraction_EmptyCriteria(t *testing.T) {
	_, err := parseExtraction([]byte(`{"criteria":[]}`))
	schemaViolation(t, err)
}

func TestParseExtraction_InvalidKind(t *testing.T) {
	_, err := parseExtraction([]byte(`{"criteria":[{"text":"x","kind":"maybe","category":"other"}]}`))
	schemaViolation(t, err)
}

func TestParseExtraction_InvalidComparator(t *testing.T) {
	_, err := parseExtraction([]byte(`{"criteria":[
		{"text":"x","kind":"inclusion","category":"lab_value",
		 "thresholds":[{"field":"anc","value":1500,"comparator":"~"}]}
	]}`))
	schemaViolation(t, err)
}

func TestParseExtraction_EmptyText(t *testing.T) {
	_, err := parseExtraction([]byte(`{"criteria":[{"text":"","kind":"inclusion","category":"other"}]}`))
	schemaViolation(t, err)
}
