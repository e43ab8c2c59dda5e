// Package llm extracts eligibility criteria from protocol documents with a
// generative model. The extractor returns structured criteria; everything
// downstream (entity typing, grounding, persistence) is deterministic.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eligius-health/eligius/pkg/models"
)

// Extractor turns a protocol PDF into structured eligibility criteria.
type Extractor interface {
	Extract(ctx context.Context, pdf []byte, title string) ([]models.ExtractedCriterion, error)
}

const extractionPrompt = `You are extracting eligibility criteria from a clinical trial protocol document.

Identify every inclusion and exclusion criterion. For each criterion return:
- text: the criterion verbatim
- kind: "inclusion" or "exclusion"
- category: one of condition, medication, prior_therapy, procedure, lab_value, demographic, biomarker, comorbidity, medical_history, other
- confidence: 0..1 extraction confidence
- page: 1-based page number the criterion appears on
- thresholds: numeric constraints as {field, value, comparator (=,<,<=,>,>=,range), upper (for range), unit}
- temporal: time constraint as {duration (ISO-8601), relation (within,before,after,at_least), reference} or null
- conditions: list of conditional clauses ("if ...") or []
- assertion_status: PRESENT, ABSENT, HYPOTHETICAL, HISTORICAL or CONDITIONAL
- entities: medical terms mentioned, each {text, context, confidence}

Respond with JSON only: {"criteria": [...]}`

// extractionResponse is the envelope the model must return.
type extractionResponse struct {
	Criteria []models.ExtractedCriterion `json:"criteria"`
}

// parseExtraction decodes and validates the model's JSON reply. Any shape
// problem is a schema violation, which the outbox treats as permanent.
func parseExtraction(raw []byte) ([]models.ExtractedCriterion, error) {
	var resp extractionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, models.NewCategorizedError(models.ErrorLLMSchemaViolation,
			fmt.Errorf("response is not valid JSON: %w", err))
	}
	if len(resp.Criteria) == 0 {
		return nil, models.NewCategorizedError(models.ErrorLLMSchemaViolation,
			fmt.Errorf("response contains no criteria"))
	}

	for i, criterion := range resp.Criteria {
		if criterion.Text == "" {
			return nil, models.NewCategorizedError(models.ErrorLLMSchemaViolation,
				fmt.Errorf("criterion %d has empty text", i))
		}
		switch criterion.Kind {
		case models.KindInclusion, models.KindExclusion:
		default:
			return nil, models.NewCategorizedError(models.ErrorLLMSchemaViolation,
				fmt.Errorf("criterion %d has invalid kind %q", i, criterion.Kind))
		}
		for _, threshold := range criterion.Thresholds {
			if !threshold.Comparator.Valid() {
				return nil, models.NewCategorizedError(models.ErrorLLMSchemaViolation,
					fmt.Errorf("criterion %d has invalid comparator %q", i, threshold.Comparator))
			}
		}
	}
	return resp.Criteria, nil
}
