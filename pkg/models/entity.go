package models

// EntityType classifies a medical entity extracted from a criterion.
// The type selects which terminology systems the router consults.
type EntityType string

// Entity types.
const (
	EntityCondition   EntityType = "Condition"
	EntityMedication  EntityType = "Medication"
	EntityProcedure   EntityType = "Procedure"
	EntityLabValue    EntityType = "Lab_Value"
	EntityDemographic EntityType = "Demographic"
	EntityBiomarker   EntityType = "Biomarker"
)

// TerminologySystem identifies a controlled terminology a code belongs to.
type TerminologySystem string

// Terminology systems.
const (
	SystemRxNorm TerminologySystem = "rxnorm"
	SystemICD10  TerminologySystem = "icd10"
	SystemLOINC  TerminologySystem = "loinc"
	SystemHPO    TerminologySystem = "hpo"
	// SystemUMLS is the delegated UMLS/SNOMED pathway; a single search yields
	// both a UMLS CUI and, when available, a SNOMED code.
	SystemUMLS TerminologySystem = "umls/snomed"
)

// TerminologyCodes holds the nullable per-system codes for one entity.
// Pointers distinguish "no code" from an empty code string.
type TerminologyCodes struct {
	RxNorm        *string `json:"rxnorm,omitempty"`
	ICD10         *string `json:"icd10,omitempty"`
	SNOMED        *string `json:"snomed,omitempty"`
	LOINC         *string `json:"loinc,omitempty"`
	HPO           *string `json:"hpo,omitempty"`
	UMLSCUI       *string `json:"umls_cui,omitempty"`
	PreferredTerm *string `json:"preferred_term,omitempty"`
}

// Empty reports whether no code field is populated.
func (c TerminologyCodes) Empty() bool {
	return c.RxNorm == nil && c.ICD10 == nil && c.SNOMED == nil &&
		c.LOINC == nil && c.HPO == nil && c.UMLSCUI == nil
}

// HasSystem reports whether a code for the given system is populated.
func (c TerminologyCodes) HasSystem(system TerminologySystem) bool {
	switch system {
	case SystemRxNorm:
		return c.RxNorm != nil
	case SystemICD10:
		return c.ICD10 != nil
	case SystemLOINC:
		return c.LOINC != nil
	case SystemHPO:
		return c.HPO != nil
	case SystemUMLS:
		return c.UMLSCUI != nil || c.SNOMED != nil
	}
	return false
}

// GroundingResult is the router's outcome for one entity.
type GroundingResult struct {
	Codes      TerminologyCodes   `json:"codes"`
	System     *TerminologySystem `json:"grounding_system,omitempty"`
	Confidence float64            `json:"confidence"`
	Method     string             `json:"method,omitempty"`
	// Error is non-empty only when every routable system failed outright
	// (or the entity type is not routable at all).
	Error string `json:"grounding_error,omitempty"`
	// NeedsReview marks best-candidate confidence below the reviewer floor.
	NeedsReview bool `json:"needs_review,omitempty"`
}
