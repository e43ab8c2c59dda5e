// Code generated by ent, DO NOT EDIT.

package criterion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/eligius-health/eligius/ent/predicate"
	"github.com/eligius-health/eligius/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Criterion {
	return predicate.Criterion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Criterion {
	return predicate.Criterion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Criterion {
	return predicate.Criterion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Criterion {
	return predicate.Criterion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Criterion {
	return predicate.Criterion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Criterion {
	return predicate.Criterion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Criterion {
	return predicate.Criterion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Criterion {
	return predicate.Criterion(sql.FieldContainsFold(FieldID, id))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldBatchID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldText, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldEQ(FieldKind, vc))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldCategory, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldConfidence, v))
}

// Page applies equality check predicate on the "page" field. It's identical to PageEQ.
func Page(v int) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldPage, v))
}

// AssertionStatus applies equality check predicate on the "assertion_status" field. It's identical to AssertionStatusEQ.
func AssertionStatus(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldEQ(FieldAssertionStatus, vc))
}

// ReviewDecision applies equality check predicate on the "review_decision" field. It's identical to ReviewDecisionEQ.
func ReviewDecision(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldEQ(FieldReviewDecision, vc))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldUpdatedAt, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.Criterion {
	return predicate.Criterion(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.Criterion {
	return predicate.Criterion(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldContainsFold(FieldBatchID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Criterion {
	return predicate.Criterion(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Criterion {
	return predicate.Criterion(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldContainsFold(FieldText, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldEQ(FieldKind, vc))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldNEQ(FieldKind, vc))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...models.CriterionKind) predicate.Criterion {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.Criterion(sql.FieldIn(FieldKind, v...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...models.CriterionKind) predicate.Criterion {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.Criterion(sql.FieldNotIn(FieldKind, v...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldGT(FieldKind, vc))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldGTE(FieldKind, vc))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldLT(FieldKind, vc))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldLTE(FieldKind, vc))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldContains(FieldKind, vc))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldHasPrefix(FieldKind, vc))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldHasSuffix(FieldKind, vc))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldEqualFold(FieldKind, vc))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v models.CriterionKind) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldContainsFold(FieldKind, vc))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Criterion {
	return predicate.Criterion(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Criterion {
	return predicate.Criterion(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Criterion {
	return predicate.Criterion(sql.FieldContainsFold(FieldCategory, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Criterion {
	return predicate.Criterion(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Criterion {
	return predicate.Criterion(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Criterion {
	return predicate.Criterion(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Criterion {
	return predicate.Criterion(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Criterion {
	return predicate.Criterion(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Criterion {
	return predicate.Criterion(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Criterion {
	return predicate.Criterion(sql.FieldLTE(FieldConfidence, v))
}

// PageEQ applies the EQ predicate on the "page" field.
func PageEQ(v int) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldPage, v))
}

// PageNEQ applies the NEQ predicate on the "page" field.
func PageNEQ(v int) predicate.Criterion {
	return predicate.Criterion(sql.FieldNEQ(FieldPage, v))
}

// PageIn applies the In predicate on the "page" field.
func PageIn(vs ...int) predicate.Criterion {
	return predicate.Criterion(sql.FieldIn(FieldPage, vs...))
}

// PageNotIn applies the NotIn predicate on the "page" field.
func PageNotIn(vs ...int) predicate.Criterion {
	return predicate.Criterion(sql.FieldNotIn(FieldPage, vs...))
}

// PageGT applies the GT predicate on the "page" field.
func PageGT(v int) predicate.Criterion {
	return predicate.Criterion(sql.FieldGT(FieldPage, v))
}

// PageGTE applies the GTE predicate on the "page" field.
func PageGTE(v int) predicate.Criterion {
	return predicate.Criterion(sql.FieldGTE(FieldPage, v))
}

// PageLT applies the LT predicate on the "page" field.
func PageLT(v int) predicate.Criterion {
	return predicate.Criterion(sql.FieldLT(FieldPage, v))
}

// PageLTE applies the LTE predicate on the "page" field.
func PageLTE(v int) predicate.Criterion {
	return predicate.Criterion(sql.FieldLTE(FieldPage, v))
}

// ThresholdsIsNil applies the IsNil predicate on the "thresholds" field.
func ThresholdsIsNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldIsNull(FieldThresholds))
}

// ThresholdsNotNil applies the NotNil predicate on the "thresholds" field.
func ThresholdsNotNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldNotNull(FieldThresholds))
}

// TemporalIsNil applies the IsNil predicate on the "temporal" field.
func TemporalIsNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldIsNull(FieldTemporal))
}

// TemporalNotNil applies the NotNil predicate on the "temporal" field.
func TemporalNotNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldNotNull(FieldTemporal))
}

// ConditionsIsNil applies the IsNil predicate on the "conditions" field.
func ConditionsIsNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldIsNull(FieldConditions))
}

// ConditionsNotNil applies the NotNil predicate on the "conditions" field.
func ConditionsNotNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldNotNull(FieldConditions))
}

// AssertionStatusEQ applies the EQ predicate on the "assertion_status" field.
func AssertionStatusEQ(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldEQ(FieldAssertionStatus, vc))
}

// AssertionStatusNEQ applies the NEQ predicate on the "assertion_status" field.
func AssertionStatusNEQ(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldNEQ(FieldAssertionStatus, vc))
}

// AssertionStatusIn applies the In predicate on the "assertion_status" field.
func AssertionStatusIn(vs ...models.AssertionStatus) predicate.Criterion {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.Criterion(sql.FieldIn(FieldAssertionStatus, v...))
}

// AssertionStatusNotIn applies the NotIn predicate on the "assertion_status" field.
func AssertionStatusNotIn(vs ...models.AssertionStatus) predicate.Criterion {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.Criterion(sql.FieldNotIn(FieldAssertionStatus, v...))
}

// AssertionStatusGT applies the GT predicate on the "assertion_status" field.
func AssertionStatusGT(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldGT(FieldAssertionStatus, vc))
}

// AssertionStatusGTE applies the GTE predicate on the "assertion_status" field.
func AssertionStatusGTE(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldGTE(FieldAssertionStatus, vc))
}

// AssertionStatusLT applies the LT predicate on the "assertion_status" field.
func AssertionStatusLT(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldLT(FieldAssertionStatus, vc))
}

// AssertionStatusLTE applies the LTE predicate on the "assertion_status" field.
func AssertionStatusLTE(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldLTE(FieldAssertionStatus, vc))
}

// AssertionStatusContains applies the Contains predicate on the "assertion_status" field.
func AssertionStatusContains(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldContains(FieldAssertionStatus, vc))
}

// AssertionStatusHasPrefix applies the HasPrefix predicate on the "assertion_status" field.
func AssertionStatusHasPrefix(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldHasPrefix(FieldAssertionStatus, vc))
}

// AssertionStatusHasSuffix applies the HasSuffix predicate on the "assertion_status" field.
func AssertionStatusHasSuffix(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldHasSuffix(FieldAssertionStatus, vc))
}

// AssertionStatusIsNil applies the IsNil predicate on the "assertion_status" field.
func AssertionStatusIsNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldIsNull(FieldAssertionStatus))
}

// AssertionStatusNotNil applies the NotNil predicate on the "assertion_status" field.
func AssertionStatusNotNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldNotNull(FieldAssertionStatus))
}

// AssertionStatusEqualFold applies the EqualFold predicate on the "assertion_status" field.
func AssertionStatusEqualFold(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldEqualFold(FieldAssertionStatus, vc))
}

// AssertionStatusContainsFold applies the ContainsFold predicate on the "assertion_status" field.
func AssertionStatusContainsFold(v models.AssertionStatus) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldContainsFold(FieldAssertionStatus, vc))
}

// ReviewDecisionEQ applies the EQ predicate on the "review_decision" field.
func ReviewDecisionEQ(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldEQ(FieldReviewDecision, vc))
}

// ReviewDecisionNEQ applies the NEQ predicate on the "review_decision" field.
func ReviewDecisionNEQ(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldNEQ(FieldReviewDecision, vc))
}

// ReviewDecisionIn applies the In predicate on the "review_decision" field.
func ReviewDecisionIn(vs ...models.ReviewDecision) predicate.Criterion {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.Criterion(sql.FieldIn(FieldReviewDecision, v...))
}

// ReviewDecisionNotIn applies the NotIn predicate on the "review_decision" field.
func ReviewDecisionNotIn(vs ...models.ReviewDecision) predicate.Criterion {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.Criterion(sql.FieldNotIn(FieldReviewDecision, v...))
}

// ReviewDecisionGT applies the GT predicate on the "review_decision" field.
func ReviewDecisionGT(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldGT(FieldReviewDecision, vc))
}

// ReviewDecisionGTE applies the GTE predicate on the "review_decision" field.
func ReviewDecisionGTE(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldGTE(FieldReviewDecision, vc))
}

// ReviewDecisionLT applies the LT predicate on the "review_decision" field.
func ReviewDecisionLT(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldLT(FieldReviewDecision, vc))
}

// ReviewDecisionLTE applies the LTE predicate on the "review_decision" field.
func ReviewDecisionLTE(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldLTE(FieldReviewDecision, vc))
}

// ReviewDecisionContains applies the Contains predicate on the "review_decision" field.
func ReviewDecisionContains(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldContains(FieldReviewDecision, vc))
}

// ReviewDecisionHasPrefix applies the HasPrefix predicate on the "review_decision" field.
func ReviewDecisionHasPrefix(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldHasPrefix(FieldReviewDecision, vc))
}

// ReviewDecisionHasSuffix applies the HasSuffix predicate on the "review_decision" field.
func ReviewDecisionHasSuffix(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldHasSuffix(FieldReviewDecision, vc))
}

// ReviewDecisionIsNil applies the IsNil predicate on the "review_decision" field.
func ReviewDecisionIsNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldIsNull(FieldReviewDecision))
}

// ReviewDecisionNotNil applies the NotNil predicate on the "review_decision" field.
func ReviewDecisionNotNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldNotNull(FieldReviewDecision))
}

// ReviewDecisionEqualFold applies the EqualFold predicate on the "review_decision" field.
func ReviewDecisionEqualFold(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldEqualFold(FieldReviewDecision, vc))
}

// ReviewDecisionContainsFold applies the ContainsFold predicate on the "review_decision" field.
func ReviewDecisionContainsFold(v models.ReviewDecision) predicate.Criterion {
	vc := string(v)
	return predicate.Criterion(sql.FieldContainsFold(FieldReviewDecision, vc))
}

// ModificationIsNil applies the IsNil predicate on the "modification" field.
func ModificationIsNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldIsNull(FieldModification))
}

// ModificationNotNil applies the NotNil predicate on the "modification" field.
func ModificationNotNil() predicate.Criterion {
	return predicate.Criterion(sql.FieldNotNull(FieldModification))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Criterion {
	return predicate.Criterion(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.Criterion {
	return predicate.Criterion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.CriteriaBatch) predicate.Criterion {
	return predicate.Criterion(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntities applies the HasEdge predicate on the "entities" edge.
func HasEntities() predicate.Criterion {
	return predicate.Criterion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntitiesTable, EntitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntitiesWith applies the HasEdge predicate on the "entities" edge with a given conditions (other predicates).
func HasEntitiesWith(preds ...predicate.Entity) predicate.Criterion {
	return predicate.Criterion(func(s *sql.Selector) {
		step := newEntitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Criterion) predicate.Criterion {
	return predicate.Criterion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Criterion) predicate.Criterion {
	return predicate.Criterion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Criterion) predicate.Criterion {
	return predicate.Criterion(sql.NotPredicates(p))
}
