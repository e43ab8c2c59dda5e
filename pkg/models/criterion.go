// Package models contains domain value objects shared between the ent schema,
// the pipeline, and the services layer. Types here are JSON-serializable and
// must not depend on the generated ent package.
package models

// CriterionKind classifies a criterion as inclusion or exclusion.
type CriterionKind string

// Criterion kinds.
const (
	KindInclusion CriterionKind = "inclusion"
	KindExclusion CriterionKind = "exclusion"
)

// Comparator is the relational operator of a numeric threshold.
type Comparator string

// Comparators supported in numeric thresholds.
const (
	ComparatorEQ    Comparator = "="
	ComparatorLT    Comparator = "<"
	ComparatorLTE   Comparator = "<="
	ComparatorGT    Comparator = ">"
	ComparatorGTE   Comparator = ">="
	ComparatorRange Comparator = "range"
)

// Valid reports whether c is a known comparator.
func (c Comparator) Valid() bool {
	switch c {
	case ComparatorEQ, ComparatorLT, ComparatorLTE, ComparatorGT, ComparatorGTE, ComparatorRange:
		return true
	}
	return false
}

// NumericThreshold is a quantitative constraint extracted from a criterion,
// e.g. "hemoglobin >= 9 g/dL" or "age 18-65".
type NumericThreshold struct {
	Field      string     `json:"field"`
	Value      float64    `json:"value"`
	Comparator Comparator `json:"comparator"`
	// Upper is the inclusive upper bound when Comparator is "range".
	Upper *float64 `json:"upper,omitempty"`
	Unit  string   `json:"unit,omitempty"`
}

// TemporalRelation positions a duration relative to a reference point.
type TemporalRelation string

// Temporal relations.
const (
	TemporalWithin  TemporalRelation = "within"
	TemporalBefore  TemporalRelation = "before"
	TemporalAfter   TemporalRelation = "after"
	TemporalAtLeast TemporalRelation = "at_least"
)

// TemporalConstraint is a time-bound condition extracted from a criterion,
// e.g. "within 6 months prior to screening".
type TemporalConstraint struct {
	Duration  string           `json:"duration"`
	Relation  TemporalRelation `json:"relation"`
	Reference string           `json:"reference,omitempty"`
}

// AssertionStatus captures how a criterion asserts its subject condition.
type AssertionStatus string

// Assertion statuses.
const (
	AssertionPresent      AssertionStatus = "PRESENT"
	AssertionAbsent       AssertionStatus = "ABSENT"
	AssertionHypothetical AssertionStatus = "HYPOTHETICAL"
	AssertionHistorical   AssertionStatus = "HISTORICAL"
	AssertionConditional  AssertionStatus = "CONDITIONAL"
)

// ReviewDecision is a human reviewer's verdict on a criterion.
// The zero value (empty string) means "not yet reviewed".
type ReviewDecision string

// Review decisions.
const (
	DecisionApproved ReviewDecision = "approved"
	DecisionRejected ReviewDecision = "rejected"
	DecisionModified ReviewDecision = "modified"
)

// Valid reports whether d is one of the known non-null decisions.
func (d ReviewDecision) Valid() bool {
	switch d {
	case DecisionApproved, DecisionRejected, DecisionModified:
		return true
	}
	return false
}
