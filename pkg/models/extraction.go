package models

// ExtractedEntity is one medical term the LLM identified inside a criterion.
// Type is filled by the parse node (derived from the criterion category) when
// the model leaves it empty.
type ExtractedEntity struct {
	Text       string     `json:"text"`
	Type       EntityType `json:"entity_type,omitempty"`
	Context    string     `json:"context,omitempty"`
	Confidence float64    `json:"confidence,omitempty"`
}

// ExtractedCriterion is one eligibility criterion as returned by the
// extraction model, before normalization by the parse node.
type ExtractedCriterion struct {
	Text            string               `json:"text"`
	Kind            CriterionKind        `json:"kind"`
	Category        string               `json:"category"`
	Confidence      float64              `json:"confidence"`
	Page            int                  `json:"page"`
	Thresholds      []NumericThreshold   `json:"thresholds,omitempty"`
	Temporal        *TemporalConstraint  `json:"temporal,omitempty"`
	Conditions      []string             `json:"conditions,omitempty"`
	AssertionStatus AssertionStatus      `json:"assertion_status,omitempty"`
	Entities        []ExtractedEntity    `json:"entities,omitempty"`
}

// CategoryEntityType maps a criterion category to the entity type used for
// grounding. Unknown categories fall back to Condition.
func CategoryEntityType(category string) EntityType {
	switch category {
	case "medication", "prior_therapy", "concomitant_medication":
		return EntityMedication
	case "procedure", "surgery":
		return EntityProcedure
	case "lab_value", "laboratory":
		return EntityLabValue
	case "demographic", "age", "sex":
		return EntityDemographic
	case "biomarker", "genetic":
		return EntityBiomarker
	case "condition", "disease", "comorbidity", "medical_history":
		return EntityCondition
	default:
		return EntityCondition
	}
}
