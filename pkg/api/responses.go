package api

import (
	"time"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/pkg/models"
)

// ProtocolResponse is the API shape of a protocol.
type ProtocolResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Status      string                 `json:"status"`
	ErrorReason string                 `json:"error_reason,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func toProtocolResponse(p *ent.Protocol) ProtocolResponse {
	resp := ProtocolResponse{
		ID:        p.ID,
		Title:     p.Title,
		Status:    string(p.Status),
		Metadata:  p.Metadata,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.ErrorReason != nil {
		resp.ErrorReason = *p.ErrorReason
	}
	return resp
}

// BatchResponse is the API shape of a criteria batch with its criteria.
type BatchResponse struct {
	ID              string              `json:"id"`
	ProtocolID      string              `json:"protocol_id"`
	ExtractionModel string              `json:"extraction_model"`
	TotalCount      int                 `json:"total_count"`
	ReviewedCount   int                 `json:"reviewed_count"`
	CreatedAt       time.Time           `json:"created_at"`
	Criteria        []CriterionResponse `json:"criteria"`
}

// CriterionResponse is the API shape of one criterion.
type CriterionResponse struct {
	ID              string                     `json:"id"`
	Text            string                     `json:"text"`
	Kind            string                     `json:"kind"`
	Category        string                     `json:"category"`
	Confidence      float64                    `json:"confidence"`
	Page            int                        `json:"page"`
	Thresholds      []models.NumericThreshold  `json:"thresholds,omitempty"`
	Temporal        *models.TemporalConstraint `json:"temporal,omitempty"`
	Conditions      []string                   `json:"conditions,omitempty"`
	AssertionStatus string                     `json:"assertion_status,omitempty"`
	ReviewDecision  string                     `json:"review_decision,omitempty"`
	Modification    map[string]interface{}     `json:"modification,omitempty"`
	Entities        []EntityResponse           `json:"entities"`
}

// EntityResponse is the API shape of one grounded entity.
type EntityResponse struct {
	ID                  string                 `json:"id"`
	Text                string                 `json:"text"`
	EntityType          string                 `json:"entity_type"`
	Context             string                 `json:"context,omitempty"`
	GroundingConfidence float64                `json:"grounding_confidence"`
	GroundingMethod     string                 `json:"grounding_method,omitempty"`
	GroundingError      string                 `json:"grounding_error,omitempty"`
	GroundingSystem     string                 `json:"grounding_system,omitempty"`
	NeedsReview         bool                   `json:"needs_review"`
	Codes               map[string]interface{} `json:"codes,omitempty"`
}

func toBatchResponse(b *ent.CriteriaBatch) BatchResponse {
	resp := BatchResponse{
		ID:              b.ID,
		ProtocolID:      b.ProtocolID,
		ExtractionModel: b.ExtractionModel,
		TotalCount:      b.TotalCount,
		ReviewedCount:   b.ReviewedCount,
		CreatedAt:       b.CreatedAt,
		Criteria:        make([]CriterionResponse, 0, len(b.Edges.Criteria)),
	}
	for _, c := range b.Edges.Criteria {
		resp.Criteria = append(resp.Criteria, toCriterionResponse(c))
	}
	return resp
}

func toCriterionResponse(c *ent.Criterion) CriterionResponse {
	resp := CriterionResponse{
		ID:              c.ID,
		Text:            c.Text,
		Kind:            string(c.Kind),
		Category:        c.Category,
		Confidence:      c.Confidence,
		Page:            c.Page,
		Thresholds:      c.Thresholds,
		Temporal:        c.Temporal,
		Conditions:      c.Conditions,
		AssertionStatus: string(c.AssertionStatus),
		Modification:    c.Modification,
		Entities:        make([]EntityResponse, 0, len(c.Edges.Entities)),
	}
	if c.ReviewDecision != nil {
		resp.ReviewDecision = string(*c.ReviewDecision)
	}
	for _, e := range c.Edges.Entities {
		resp.Entities = append(resp.Entities, toEntityResponse(e))
	}
	return resp
}

func toEntityResponse(e *ent.Entity) EntityResponse {
	resp := EntityResponse{
		ID:                  e.ID,
		Text:                e.Text,
		EntityType:          string(e.EntityType),
		Context:             e.Context,
		GroundingConfidence: e.GroundingConfidence,
		GroundingMethod:     e.GroundingMethod,
		NeedsReview:         e.NeedsReview,
	}
	if e.GroundingError != nil {
		resp.GroundingError = *e.GroundingError
	}
	if e.GroundingSystem != nil {
		resp.GroundingSystem = string(*e.GroundingSystem)
	}

	codes := map[string]interface{}{}
	putCode(codes, "rxnorm", e.RxnormCode)
	putCode(codes, "icd10", e.Icd10Code)
	putCode(codes, "snomed", e.SnomedCode)
	putCode(codes, "loinc", e.LoincCode)
	putCode(codes, "hpo", e.HpoCode)
	putCode(codes, "umls_cui", e.UmlsCui)
	putCode(codes, "preferred_term", e.PreferredTerm)
	if len(codes) > 0 {
		resp.Codes = codes
	}
	return resp
}

func putCode(codes map[string]interface{}, key string, value *string) {
	if value != nil && *value != "" {
		codes[key] = *value
	}
}
