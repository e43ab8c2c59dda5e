// Code generated by ent, DO NOT EDIT.

package entity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entity type in the database.
	Label = "entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entity_id"
	// FieldCriterionID holds the string denoting the criterion_id field in the database.
	FieldCriterionID = "criterion_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldGroundingConfidence holds the string denoting the grounding_confidence field in the database.
	FieldGroundingConfidence = "grounding_confidence"
	// FieldGroundingMethod holds the string denoting the grounding_method field in the database.
	FieldGroundingMethod = "grounding_method"
	// FieldGroundingError holds the string denoting the grounding_error field in the database.
	FieldGroundingError = "grounding_error"
	// FieldGroundingSystem holds the string denoting the grounding_system field in the database.
	FieldGroundingSystem = "grounding_system"
	// FieldRxnormCode holds the string denoting the rxnorm_code field in the database.
	FieldRxnormCode = "rxnorm_code"
	// FieldIcd10Code holds the string denoting the icd10_code field in the database.
	FieldIcd10Code = "icd10_code"
	// FieldSnomedCode holds the string denoting the snomed_code field in the database.
	FieldSnomedCode = "snomed_code"
	// FieldLoincCode holds the string denoting the loinc_code field in the database.
	FieldLoincCode = "loinc_code"
	// FieldHpoCode holds the string denoting the hpo_code field in the database.
	FieldHpoCode = "hpo_code"
	// FieldUmlsCui holds the string denoting the umls_cui field in the database.
	FieldUmlsCui = "umls_cui"
	// FieldPreferredTerm holds the string denoting the preferred_term field in the database.
	FieldPreferredTerm = "preferred_term"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCriterion holds the string denoting the criterion edge name in mutations.
	EdgeCriterion = "criterion"
	// CriterionFieldID holds the string denoting the ID field of the Criterion.
	CriterionFieldID = "criterion_id"
	// Table holds the table name of the entity in the database.
	Table = "entities"
	// CriterionTable is the table that holds the criterion relation/edge.
	CriterionTable = "entities"
	// CriterionInverseTable is the table name for the Criterion entity.
	// It exists in this package in order to avoid circular dependency with the "criterion" package.
	CriterionInverseTable = "criteria"
	// CriterionColumn is the table column denoting the criterion relation/edge.
	CriterionColumn = "criterion_id"
)

// Columns holds all SQL columns for entity fields.
var Columns = []string{
	FieldID,
	FieldCriterionID,
	FieldText,
	FieldEntityType,
	FieldContext,
	FieldGroundingConfidence,
	FieldGroundingMethod,
	FieldGroundingError,
	FieldGroundingSystem,
	FieldRxnormCode,
	FieldIcd10Code,
	FieldSnomedCode,
	FieldLoincCode,
	FieldHpoCode,
	FieldUmlsCui,
	FieldPreferredTerm,
	FieldNeedsReview,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultGroundingConfidence holds the default value on creation for the "grounding_confidence" field.
	DefaultGroundingConfidence float64
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Entity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCriterionID orders the results by the criterion_id field.
func ByCriterionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriterionID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByGroundingConfidence orders the results by the grounding_confidence field.
func ByGroundingConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroundingConfidence, opts...).ToFunc()
}

// ByGroundingMethod orders the results by the grounding_method field.
func ByGroundingMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroundingMethod, opts...).ToFunc()
}

// ByGroundingError orders the results by the grounding_error field.
func ByGroundingError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroundingError, opts...).ToFunc()
}

// ByGroundingSystem orders the results by the grounding_system field.
func ByGroundingSystem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroundingSystem, opts...).ToFunc()
}

// ByRxnormCode orders the results by the rxnorm_code field.
func ByRxnormCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRxnormCode, opts...).ToFunc()
}

// ByIcd10Code orders the results by the icd10_code field.
func ByIcd10Code(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIcd10Code, opts...).ToFunc()
}

// BySnomedCode orders the results by the snomed_code field.
func BySnomedCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnomedCode, opts...).ToFunc()
}

// ByLoincCode orders the results by the loinc_code field.
func ByLoincCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoincCode, opts...).ToFunc()
}

// ByHpoCode orders the results by the hpo_code field.
func ByHpoCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHpoCode, opts...).ToFunc()
}

// ByUmlsCui orders the results by the umls_cui field.
func ByUmlsCui(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUmlsCui, opts...).ToFunc()
}

// ByPreferredTerm orders the results by the preferred_term field.
func ByPreferredTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredTerm, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCriterionField orders the results by criterion field.
func ByCriterionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCriterionStep(), sql.OrderByField(field, opts...))
	}
}
func newCriterionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CriterionInverseTable, CriterionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CriterionTable, CriterionColumn),
	)
}
