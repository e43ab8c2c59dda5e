// Code generated by ent, DO NOT EDIT.

package entity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/eligius-health/eligius/ent/predicate"
	"github.com/eligius-health/eligius/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldID, id))
}

// CriterionID applies equality check predicate on the "criterion_id" field. It's identical to CriterionIDEQ.
func CriterionID(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldCriterionID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldText, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldEQ(FieldEntityType, vc))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldContext, v))
}

// GroundingConfidence applies equality check predicate on the "grounding_confidence" field. It's identical to GroundingConfidenceEQ.
func GroundingConfidence(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldGroundingConfidence, v))
}

// GroundingMethod applies equality check predicate on the "grounding_method" field. It's identical to GroundingMethodEQ.
func GroundingMethod(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldGroundingMethod, v))
}

// GroundingError applies equality check predicate on the "grounding_error" field. It's identical to GroundingErrorEQ.
func GroundingError(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldGroundingError, v))
}

// GroundingSystem applies equality check predicate on the "grounding_system" field. It's identical to GroundingSystemEQ.
func GroundingSystem(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldEQ(FieldGroundingSystem, vc))
}

// RxnormCode applies equality check predicate on the "rxnorm_code" field. It's identical to RxnormCodeEQ.
func RxnormCode(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldRxnormCode, v))
}

// Icd10Code applies equality check predicate on the "icd10_code" field. It's identical to Icd10CodeEQ.
func Icd10Code(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldIcd10Code, v))
}

// SnomedCode applies equality check predicate on the "snomed_code" field. It's identical to SnomedCodeEQ.
func SnomedCode(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldSnomedCode, v))
}

// LoincCode applies equality check predicate on the "loinc_code" field. It's identical to LoincCodeEQ.
func LoincCode(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldLoincCode, v))
}

// HpoCode applies equality check predicate on the "hpo_code" field. It's identical to HpoCodeEQ.
func HpoCode(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldHpoCode, v))
}

// UmlsCui applies equality check predicate on the "umls_cui" field. It's identical to UmlsCuiEQ.
func UmlsCui(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldUmlsCui, v))
}

// PreferredTerm applies equality check predicate on the "preferred_term" field. It's identical to PreferredTermEQ.
func PreferredTerm(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldPreferredTerm, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldCreatedAt, v))
}

// CriterionIDEQ applies the EQ predicate on the "criterion_id" field.
func CriterionIDEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldCriterionID, v))
}

// CriterionIDNEQ applies the NEQ predicate on the "criterion_id" field.
func CriterionIDNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldCriterionID, v))
}

// CriterionIDIn applies the In predicate on the "criterion_id" field.
func CriterionIDIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldCriterionID, vs...))
}

// CriterionIDNotIn applies the NotIn predicate on the "criterion_id" field.
func CriterionIDNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldCriterionID, vs...))
}

// CriterionIDGT applies the GT predicate on the "criterion_id" field.
func CriterionIDGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldCriterionID, v))
}

// CriterionIDGTE applies the GTE predicate on the "criterion_id" field.
func CriterionIDGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldCriterionID, v))
}

// CriterionIDLT applies the LT predicate on the "criterion_id" field.
func CriterionIDLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldCriterionID, v))
}

// CriterionIDLTE applies the LTE predicate on the "criterion_id" field.
func CriterionIDLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldCriterionID, v))
}

// CriterionIDContains applies the Contains predicate on the "criterion_id" field.
func CriterionIDContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldCriterionID, v))
}

// CriterionIDHasPrefix applies the HasPrefix predicate on the "criterion_id" field.
func CriterionIDHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldCriterionID, v))
}

// CriterionIDHasSuffix applies the HasSuffix predicate on the "criterion_id" field.
func CriterionIDHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldCriterionID, v))
}

// CriterionIDEqualFold applies the EqualFold predicate on the "criterion_id" field.
func CriterionIDEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldCriterionID, v))
}

// CriterionIDContainsFold applies the ContainsFold predicate on the "criterion_id" field.
func CriterionIDContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldCriterionID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldText, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldEQ(FieldEntityType, vc))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldNEQ(FieldEntityType, vc))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...models.EntityType) predicate.Entity {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.Entity(sql.FieldIn(FieldEntityType, v...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...models.EntityType) predicate.Entity {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.Entity(sql.FieldNotIn(FieldEntityType, v...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldGT(FieldEntityType, vc))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldGTE(FieldEntityType, vc))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldLT(FieldEntityType, vc))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldLTE(FieldEntityType, vc))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldContains(FieldEntityType, vc))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldHasPrefix(FieldEntityType, vc))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldHasSuffix(FieldEntityType, vc))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldEqualFold(FieldEntityType, vc))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v models.EntityType) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldContainsFold(FieldEntityType, vc))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldContext, v))
}

// GroundingConfidenceEQ applies the EQ predicate on the "grounding_confidence" field.
func GroundingConfidenceEQ(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldGroundingConfidence, v))
}

// GroundingConfidenceNEQ applies the NEQ predicate on the "grounding_confidence" field.
func GroundingConfidenceNEQ(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldGroundingConfidence, v))
}

// GroundingConfidenceIn applies the In predicate on the "grounding_confidence" field.
func GroundingConfidenceIn(vs ...float64) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldGroundingConfidence, vs...))
}

// GroundingConfidenceNotIn applies the NotIn predicate on the "grounding_confidence" field.
func GroundingConfidenceNotIn(vs ...float64) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldGroundingConfidence, vs...))
}

// GroundingConfidenceGT applies the GT predicate on the "grounding_confidence" field.
func GroundingConfidenceGT(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldGroundingConfidence, v))
}

// GroundingConfidenceGTE applies the GTE predicate on the "grounding_confidence" field.
func GroundingConfidenceGTE(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldGroundingConfidence, v))
}

// GroundingConfidenceLT applies the LT predicate on the "grounding_confidence" field.
func GroundingConfidenceLT(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldGroundingConfidence, v))
}

// GroundingConfidenceLTE applies the LTE predicate on the "grounding_confidence" field.
func GroundingConfidenceLTE(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldGroundingConfidence, v))
}

// GroundingMethodEQ applies the EQ predicate on the "grounding_method" field.
func GroundingMethodEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldGroundingMethod, v))
}

// GroundingMethodNEQ applies the NEQ predicate on the "grounding_method" field.
func GroundingMethodNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldGroundingMethod, v))
}

// GroundingMethodIn applies the In predicate on the "grounding_method" field.
func GroundingMethodIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldGroundingMethod, vs...))
}

// GroundingMethodNotIn applies the NotIn predicate on the "grounding_method" field.
func GroundingMethodNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldGroundingMethod, vs...))
}

// GroundingMethodGT applies the GT predicate on the "grounding_method" field.
func GroundingMethodGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldGroundingMethod, v))
}

// GroundingMethodGTE applies the GTE predicate on the "grounding_method" field.
func GroundingMethodGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldGroundingMethod, v))
}

// GroundingMethodLT applies the LT predicate on the "grounding_method" field.
func GroundingMethodLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldGroundingMethod, v))
}

// GroundingMethodLTE applies the LTE predicate on the "grounding_method" field.
func GroundingMethodLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldGroundingMethod, v))
}

// GroundingMethodContains applies the Contains predicate on the "grounding_method" field.
func GroundingMethodContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldGroundingMethod, v))
}

// GroundingMethodHasPrefix applies the HasPrefix predicate on the "grounding_method" field.
func GroundingMethodHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldGroundingMethod, v))
}

// GroundingMethodHasSuffix applies the HasSuffix predicate on the "grounding_method" field.
func GroundingMethodHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldGroundingMethod, v))
}

// GroundingMethodIsNil applies the IsNil predicate on the "grounding_method" field.
func GroundingMethodIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldGroundingMethod))
}

// GroundingMethodNotNil applies the NotNil predicate on the "grounding_method" field.
func GroundingMethodNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldGroundingMethod))
}

// GroundingMethodEqualFold applies the EqualFold predicate on the "grounding_method" field.
func GroundingMethodEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldGroundingMethod, v))
}

// GroundingMethodContainsFold applies the ContainsFold predicate on the "grounding_method" field.
func GroundingMethodContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldGroundingMethod, v))
}

// GroundingErrorEQ applies the EQ predicate on the "grounding_error" field.
func GroundingErrorEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldGroundingError, v))
}

// GroundingErrorNEQ applies the NEQ predicate on the "grounding_error" field.
func GroundingErrorNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldGroundingError, v))
}

// GroundingErrorIn applies the In predicate on the "grounding_error" field.
func GroundingErrorIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldGroundingError, vs...))
}

// GroundingErrorNotIn applies the NotIn predicate on the "grounding_error" field.
func GroundingErrorNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldGroundingError, vs...))
}

// GroundingErrorGT applies the GT predicate on the "grounding_error" field.
func GroundingErrorGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldGroundingError, v))
}

// GroundingErrorGTE applies the GTE predicate on the "grounding_error" field.
func GroundingErrorGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldGroundingError, v))
}

// GroundingErrorLT applies the LT predicate on the "grounding_error" field.
func GroundingErrorLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldGroundingError, v))
}

// GroundingErrorLTE applies the LTE predicate on the "grounding_error" field.
func GroundingErrorLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldGroundingError, v))
}

// GroundingErrorContains applies the Contains predicate on the "grounding_error" field.
func GroundingErrorContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldGroundingError, v))
}

// GroundingErrorHasPrefix applies the HasPrefix predicate on the "grounding_error" field.
func GroundingErrorHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldGroundingError, v))
}

// GroundingErrorHasSuffix applies the HasSuffix predicate on the "grounding_error" field.
func GroundingErrorHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldGroundingError, v))
}

// GroundingErrorIsNil applies the IsNil predicate on the "grounding_error" field.
func GroundingErrorIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldGroundingError))
}

// GroundingErrorNotNil applies the NotNil predicate on the "grounding_error" field.
func GroundingErrorNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldGroundingError))
}

// GroundingErrorEqualFold applies the EqualFold predicate on the "grounding_error" field.
func GroundingErrorEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldGroundingError, v))
}

// GroundingErrorContainsFold applies the ContainsFold predicate on the "grounding_error" field.
func GroundingErrorContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldGroundingError, v))
}

// GroundingSystemEQ applies the EQ predicate on the "grounding_system" field.
func GroundingSystemEQ(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldEQ(FieldGroundingSystem, vc))
}

// GroundingSystemNEQ applies the NEQ predicate on the "grounding_system" field.
func GroundingSystemNEQ(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldNEQ(FieldGroundingSystem, vc))
}

// GroundingSystemIn applies the In predicate on the "grounding_system" field.
func GroundingSystemIn(vs ...models.TerminologySystem) predicate.Entity {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.Entity(sql.FieldIn(FieldGroundingSystem, v...))
}

// GroundingSystemNotIn applies the NotIn predicate on the "grounding_system" field.
func GroundingSystemNotIn(vs ...models.TerminologySystem) predicate.Entity {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.Entity(sql.FieldNotIn(FieldGroundingSystem, v...))
}

// GroundingSystemGT applies the GT predicate on the "grounding_system" field.
func GroundingSystemGT(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldGT(FieldGroundingSystem, vc))
}

// GroundingSystemGTE applies the GTE predicate on the "grounding_system" field.
func GroundingSystemGTE(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldGTE(FieldGroundingSystem, vc))
}

// GroundingSystemLT applies the LT predicate on the "grounding_system" field.
func GroundingSystemLT(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldLT(FieldGroundingSystem, vc))
}

// GroundingSystemLTE applies the LTE predicate on the "grounding_system" field.
func GroundingSystemLTE(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldLTE(FieldGroundingSystem, vc))
}

// GroundingSystemContains applies the Contains predicate on the "grounding_system" field.
func GroundingSystemContains(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldContains(FieldGroundingSystem, vc))
}

// GroundingSystemHasPrefix applies the HasPrefix predicate on the "grounding_system" field.
func GroundingSystemHasPrefix(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldHasPrefix(FieldGroundingSystem, vc))
}

// GroundingSystemHasSuffix applies the HasSuffix predicate on the "grounding_system" field.
func GroundingSystemHasSuffix(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldHasSuffix(FieldGroundingSystem, vc))
}

// GroundingSystemIsNil applies the IsNil predicate on the "grounding_system" field.
func GroundingSystemIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldGroundingSystem))
}

// GroundingSystemNotNil applies the NotNil predicate on the "grounding_system" field.
func GroundingSystemNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldGroundingSystem))
}

// GroundingSystemEqualFold applies the EqualFold predicate on the "grounding_system" field.
func GroundingSystemEqualFold(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldEqualFold(FieldGroundingSystem, vc))
}

// GroundingSystemContainsFold applies the ContainsFold predicate on the "grounding_system" field.
func GroundingSystemContainsFold(v models.TerminologySystem) predicate.Entity {
	vc := string(v)
	return predicate.Entity(sql.FieldContainsFold(FieldGroundingSystem, vc))
}

// RxnormCodeEQ applies the EQ predicate on the "rxnorm_code" field.
func RxnormCodeEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldRxnormCode, v))
}

// RxnormCodeNEQ applies the NEQ predicate on the "rxnorm_code" field.
func RxnormCodeNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldRxnormCode, v))
}

// RxnormCodeIn applies the In predicate on the "rxnorm_code" field.
func RxnormCodeIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldRxnormCode, vs...))
}

// RxnormCodeNotIn applies the NotIn predicate on the "rxnorm_code" field.
func RxnormCodeNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldRxnormCode, vs...))
}

// RxnormCodeGT applies the GT predicate on the "rxnorm_code" field.
func RxnormCodeGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldRxnormCode, v))
}

// RxnormCodeGTE applies the GTE predicate on the "rxnorm_code" field.
func RxnormCodeGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldRxnormCode, v))
}

// RxnormCodeLT applies the LT predicate on the "rxnorm_code" field.
func RxnormCodeLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldRxnormCode, v))
}

// RxnormCodeLTE applies the LTE predicate on the "rxnorm_code" field.
func RxnormCodeLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldRxnormCode, v))
}

// RxnormCodeContains applies the Contains predicate on the "rxnorm_code" field.
func RxnormCodeContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldRxnormCode, v))
}

// RxnormCodeHasPrefix applies the HasPrefix predicate on the "rxnorm_code" field.
func RxnormCodeHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldRxnormCode, v))
}

// RxnormCodeHasSuffix applies the HasSuffix predicate on the "rxnorm_code" field.
func RxnormCodeHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldRxnormCode, v))
}

// RxnormCodeIsNil applies the IsNil predicate on the "rxnorm_code" field.
func RxnormCodeIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldRxnormCode))
}

// RxnormCodeNotNil applies the NotNil predicate on the "rxnorm_code" field.
func RxnormCodeNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldRxnormCode))
}

// RxnormCodeEqualFold applies the EqualFold predicate on the "rxnorm_code" field.
func RxnormCodeEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldRxnormCode, v))
}

// RxnormCodeContainsFold applies the ContainsFold predicate on the "rxnorm_code" field.
func RxnormCodeContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldRxnormCode, v))
}

// Icd10CodeEQ applies the EQ predicate on the "icd10_code" field.
func Icd10CodeEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldIcd10Code, v))
}

// Icd10CodeNEQ applies the NEQ predicate on the "icd10_code" field.
func Icd10CodeNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldIcd10Code, v))
}

// Icd10CodeIn applies the In predicate on the "icd10_code" field.
func Icd10CodeIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldIcd10Code, vs...))
}

// Icd10CodeNotIn applies the NotIn predicate on the "icd10_code" field.
func Icd10CodeNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldIcd10Code, vs...))
}

// Icd10CodeGT applies the GT predicate on the "icd10_code" field.
func Icd10CodeGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldIcd10Code, v))
}

// Icd10CodeGTE applies the GTE predicate on the "icd10_code" field.
func Icd10CodeGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldIcd10Code, v))
}

// Icd10CodeLT applies the LT predicate on the "icd10_code" field.
func Icd10CodeLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldIcd10Code, v))
}

// Icd10CodeLTE applies the LTE predicate on the "icd10_code" field.
func Icd10CodeLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldIcd10Code, v))
}

// Icd10CodeContains applies the Contains predicate on the "icd10_code" field.
func Icd10CodeContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldIcd10Code, v))
}

// Icd10CodeHasPrefix applies the HasPrefix predicate on the "icd10_code" field.
func Icd10CodeHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldIcd10Code, v))
}

// Icd10CodeHasSuffix applies the HasSuffix predicate on the "icd10_code" field.
func Icd10CodeHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldIcd10Code, v))
}

// Icd10CodeIsNil applies the IsNil predicate on the "icd10_code" field.
func Icd10CodeIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldIcd10Code))
}

// Icd10CodeNotNil applies the NotNil predicate on the "icd10_code" field.
func Icd10CodeNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldIcd10Code))
}

// Icd10CodeEqualFold applies the EqualFold predicate on the "icd10_code" field.
func Icd10CodeEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldIcd10Code, v))
}

// Icd10CodeContainsFold applies the ContainsFold predicate on the "icd10_code" field.
func Icd10CodeContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldIcd10Code, v))
}

// SnomedCodeEQ applies the EQ predicate on the "snomed_code" field.
func SnomedCodeEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldSnomedCode, v))
}

// SnomedCodeNEQ applies the NEQ predicate on the "snomed_code" field.
func SnomedCodeNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldSnomedCode, v))
}

// SnomedCodeIn applies the In predicate on the "snomed_code" field.
func SnomedCodeIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldSnomedCode, vs...))
}

// SnomedCodeNotIn applies the NotIn predicate on the "snomed_code" field.
func SnomedCodeNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldSnomedCode, vs...))
}

// SnomedCodeGT applies the GT predicate on the "snomed_code" field.
func SnomedCodeGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldSnomedCode, v))
}

// SnomedCodeGTE applies the GTE predicate on the "snomed_code" field.
func SnomedCodeGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldSnomedCode, v))
}

// SnomedCodeLT applies the LT predicate on the "snomed_code" field.
func SnomedCodeLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldSnomedCode, v))
}

// SnomedCodeLTE applies the LTE predicate on the "snomed_code" field.
func SnomedCodeLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldSnomedCode, v))
}

// SnomedCodeContains applies the Contains predicate on the "snomed_code" field.
func SnomedCodeContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldSnomedCode, v))
}

// SnomedCodeHasPrefix applies the HasPrefix predicate on the "snomed_code" field.
func SnomedCodeHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldSnomedCode, v))
}

// SnomedCodeHasSuffix applies the HasSuffix predicate on the "snomed_code" field.
func SnomedCodeHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldSnomedCode, v))
}

// SnomedCodeIsNil applies the IsNil predicate on the "snomed_code" field.
func SnomedCodeIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldSnomedCode))
}

// SnomedCodeNotNil applies the NotNil predicate on the "snomed_code" field.
func SnomedCodeNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldSnomedCode))
}

// SnomedCodeEqualFold applies the EqualFold predicate on the "snomed_code" field.
func SnomedCodeEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldSnomedCode, v))
}

// SnomedCodeContainsFold applies the ContainsFold predicate on the "snomed_code" field.
func SnomedCodeContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldSnomedCode, v))
}

// LoincCodeEQ applies the EQ predicate on the "loinc_code" field.
func LoincCodeEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldLoincCode, v))
}

// LoincCodeNEQ applies the NEQ predicate on the "loinc_code" field.
func LoincCodeNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldLoincCode, v))
}

// LoincCodeIn applies the In predicate on the "loinc_code" field.
func LoincCodeIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldLoincCode, vs...))
}

// LoincCodeNotIn applies the NotIn predicate on the "loinc_code" field.
func LoincCodeNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldLoincCode, vs...))
}

// LoincCodeGT applies the GT predicate on the "loinc_code" field.
func LoincCodeGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldLoincCode, v))
}

// LoincCodeGTE applies the GTE predicate on the "loinc_code" field.
func LoincCodeGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldLoincCode, v))
}

// LoincCodeLT applies the LT predicate on the "loinc_code" field.
func LoincCodeLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldLoincCode, v))
}

// LoincCodeLTE applies the LTE predicate on the "loinc_code" field.
func LoincCodeLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldLoincCode, v))
}

// LoincCodeContains applies the Contains predicate on the "loinc_code" field.
func LoincCodeContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldLoincCode, v))
}

// LoincCodeHasPrefix applies the HasPrefix predicate on the "loinc_code" field.
func LoincCodeHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldLoincCode, v))
}

// LoincCodeHasSuffix applies the HasSuffix predicate on the "loinc_code" field.
func LoincCodeHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldLoincCode, v))
}

// LoincCodeIsNil applies the IsNil predicate on the "loinc_code" field.
func LoincCodeIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldLoincCode))
}

// LoincCodeNotNil applies the NotNil predicate on the "loinc_code" field.
func LoincCodeNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldLoincCode))
}

// LoincCodeEqualFold applies the EqualFold predicate on the "loinc_code" field.
func LoincCodeEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldLoincCode, v))
}

// LoincCodeContainsFold applies the ContainsFold predicate on the "loinc_code" field.
func LoincCodeContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldLoincCode, v))
}

// HpoCodeEQ applies the EQ predicate on the "hpo_code" field.
func HpoCodeEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldHpoCode, v))
}

// HpoCodeNEQ applies the NEQ predicate on the "hpo_code" field.
func HpoCodeNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldHpoCode, v))
}

// HpoCodeIn applies the In predicate on the "hpo_code" field.
func HpoCodeIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldHpoCode, vs...))
}

// HpoCodeNotIn applies the NotIn predicate on the "hpo_code" field.
func HpoCodeNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldHpoCode, vs...))
}

// HpoCodeGT applies the GT predicate on the "hpo_code" field.
func HpoCodeGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldHpoCode, v))
}

// HpoCodeGTE applies the GTE predicate on the "hpo_code" field.
func HpoCodeGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldHpoCode, v))
}

// HpoCodeLT applies the LT predicate on the "hpo_code" field.
func HpoCodeLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldHpoCode, v))
}

// HpoCodeLTE applies the LTE predicate on the "hpo_code" field.
func HpoCodeLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldHpoCode, v))
}

// HpoCodeContains applies the Contains predicate on the "hpo_code" field.
func HpoCodeContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldHpoCode, v))
}

// HpoCodeHasPrefix applies the HasPrefix predicate on the "hpo_code" field.
func HpoCodeHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldHpoCode, v))
}

// HpoCodeHasSuffix applies the HasSuffix predicate on the "hpo_code" field.
func HpoCodeHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldHpoCode, v))
}

// HpoCodeIsNil applies the IsNil predicate on the "hpo_code" field.
func HpoCodeIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldHpoCode))
}

// HpoCodeNotNil applies the NotNil predicate on the "hpo_code" field.
func HpoCodeNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldHpoCode))
}

// HpoCodeEqualFold applies the EqualFold predicate on the "hpo_code" field.
func HpoCodeEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldHpoCode, v))
}

// HpoCodeContainsFold applies the ContainsFold predicate on the "hpo_code" field.
func HpoCodeContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldHpoCode, v))
}

// UmlsCuiEQ applies the EQ predicate on the "umls_cui" field.
func UmlsCuiEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldUmlsCui, v))
}

// UmlsCuiNEQ applies the NEQ predicate on the "umls_cui" field.
func UmlsCuiNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldUmlsCui, v))
}

// UmlsCuiIn applies the In predicate on the "umls_cui" field.
func UmlsCuiIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldUmlsCui, vs...))
}

// UmlsCuiNotIn applies the NotIn predicate on the "umls_cui" field.
func UmlsCuiNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldUmlsCui, vs...))
}

// UmlsCuiGT applies the GT predicate on the "umls_cui" field.
func UmlsCuiGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldUmlsCui, v))
}

// UmlsCuiGTE applies the GTE predicate on the "umls_cui" field.
func UmlsCuiGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldUmlsCui, v))
}

// UmlsCuiLT applies the LT predicate on the "umls_cui" field.
func UmlsCuiLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldUmlsCui, v))
}

// UmlsCuiLTE applies the LTE predicate on the "umls_cui" field.
func UmlsCuiLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldUmlsCui, v))
}

// UmlsCuiContains applies the Contains predicate on the "umls_cui" field.
func UmlsCuiContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldUmlsCui, v))
}

// UmlsCuiHasPrefix applies the HasPrefix predicate on the "umls_cui" field.
func UmlsCuiHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldUmlsCui, v))
}

// UmlsCuiHasSuffix applies the HasSuffix predicate on the "umls_cui" field.
func UmlsCuiHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldUmlsCui, v))
}

// UmlsCuiIsNil applies the IsNil predicate on the "umls_cui" field.
func UmlsCuiIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldUmlsCui))
}

// UmlsCuiNotNil applies the NotNil predicate on the "umls_cui" field.
func UmlsCuiNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldUmlsCui))
}

// UmlsCuiEqualFold applies the EqualFold predicate on the "umls_cui" field.
func UmlsCuiEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldUmlsCui, v))
}

// UmlsCuiContainsFold applies the ContainsFold predicate on the "umls_cui" field.
func UmlsCuiContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldUmlsCui, v))
}

// PreferredTermEQ applies the EQ predicate on the "preferred_term" field.
func PreferredTermEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldPreferredTerm, v))
}

// PreferredTermNEQ applies the NEQ predicate on the "preferred_term" field.
func PreferredTermNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldPreferredTerm, v))
}

// PreferredTermIn applies the In predicate on the "preferred_term" field.
func PreferredTermIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldPreferredTerm, vs...))
}

// PreferredTermNotIn applies the NotIn predicate on the "preferred_term" field.
func PreferredTermNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldPreferredTerm, vs...))
}

// PreferredTermGT applies the GT predicate on the "preferred_term" field.
func PreferredTermGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldPreferredTerm, v))
}

// PreferredTermGTE applies the GTE predicate on the "preferred_term" field.
func PreferredTermGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldPreferredTerm, v))
}

// PreferredTermLT applies the LT predicate on the "preferred_term" field.
func PreferredTermLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldPreferredTerm, v))
}

// PreferredTermLTE applies the LTE predicate on the "preferred_term" field.
func PreferredTermLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldPreferredTerm, v))
}

// PreferredTermContains applies the Contains predicate on the "preferred_term" field.
func PreferredTermContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldPreferredTerm, v))
}

// PreferredTermHasPrefix applies the HasPrefix predicate on the "preferred_term" field.
func PreferredTermHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldPreferredTerm, v))
}

// PreferredTermHasSuffix applies the HasSuffix predicate on the "preferred_term" field.
func PreferredTermHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldPreferredTerm, v))
}

// PreferredTermIsNil applies the IsNil predicate on the "preferred_term" field.
func PreferredTermIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldPreferredTerm))
}

// PreferredTermNotNil applies the NotNil predicate on the "preferred_term" field.
func PreferredTermNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldPreferredTerm))
}

// PreferredTermEqualFold applies the EqualFold predicate on the "preferred_term" field.
func PreferredTermEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldPreferredTerm, v))
}

// PreferredTermContainsFold applies the ContainsFold predicate on the "preferred_term" field.
func PreferredTermContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldPreferredTerm, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldNeedsReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCriterion applies the HasEdge predicate on the "criterion" edge.
func HasCriterion() predicate.Entity {
	return predicate.Entity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CriterionTable, CriterionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCriterionWith applies the HasEdge predicate on the "criterion" edge with a given conditions (other predicates).
func HasCriterionWith(preds ...predicate.Criterion) predicate.Entity {
	return predicate.Entity(func(s *sql.Selector) {
		step := newCriterionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Entity) predicate.Entity {
	return predicate.Entity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Entity) predicate.Entity {
	return predicate.Entity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Entity) predicate.Entity {
	return predicate.Entity(sql.NotPredicates(p))
}
