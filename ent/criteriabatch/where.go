// Code generated by ent, DO NOT EDIT.

package criteriabatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/eligius-health/eligius/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldContainsFold(FieldID, id))
}

// ProtocolID applies equality check predicate on the "protocol_id" field. It's identical to ProtocolIDEQ.
func ProtocolID(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldProtocolID, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldIsArchived, v))
}

// ReviewedCount applies equality check predicate on the "reviewed_count" field. It's identical to ReviewedCountEQ.
func ReviewedCount(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldReviewedCount, v))
}

// TotalCount applies equality check predicate on the "total_count" field. It's identical to TotalCountEQ.
func TotalCount(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldTotalCount, v))
}

// ExtractionModel applies equality check predicate on the "extraction_model" field. It's identical to ExtractionModelEQ.
func ExtractionModel(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldExtractionModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProtocolIDEQ applies the EQ predicate on the "protocol_id" field.
func ProtocolIDEQ(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldProtocolID, v))
}

// ProtocolIDNEQ applies the NEQ predicate on the "protocol_id" field.
func ProtocolIDNEQ(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNEQ(FieldProtocolID, v))
}

// ProtocolIDIn applies the In predicate on the "protocol_id" field.
func ProtocolIDIn(vs ...string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldIn(FieldProtocolID, vs...))
}

// ProtocolIDNotIn applies the NotIn predicate on the "protocol_id" field.
func ProtocolIDNotIn(vs ...string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNotIn(FieldProtocolID, vs...))
}

// ProtocolIDGT applies the GT predicate on the "protocol_id" field.
func ProtocolIDGT(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGT(FieldProtocolID, v))
}

// ProtocolIDGTE applies the GTE predicate on the "protocol_id" field.
func ProtocolIDGTE(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGTE(FieldProtocolID, v))
}

// ProtocolIDLT applies the LT predicate on the "protocol_id" field.
func ProtocolIDLT(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLT(FieldProtocolID, v))
}

// ProtocolIDLTE applies the LTE predicate on the "protocol_id" field.
func ProtocolIDLTE(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLTE(FieldProtocolID, v))
}

// ProtocolIDContains applies the Contains predicate on the "protocol_id" field.
func ProtocolIDContains(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldContains(FieldProtocolID, v))
}

// ProtocolIDHasPrefix applies the HasPrefix predicate on the "protocol_id" field.
func ProtocolIDHasPrefix(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldHasPrefix(FieldProtocolID, v))
}

// ProtocolIDHasSuffix applies the HasSuffix predicate on the "protocol_id" field.
func ProtocolIDHasSuffix(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldHasSuffix(FieldProtocolID, v))
}

// ProtocolIDEqualFold applies the EqualFold predicate on the "protocol_id" field.
func ProtocolIDEqualFold(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEqualFold(FieldProtocolID, v))
}

// ProtocolIDContainsFold applies the ContainsFold predicate on the "protocol_id" field.
func ProtocolIDContainsFold(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldContainsFold(FieldProtocolID, v))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNEQ(FieldIsArchived, v))
}

// ReviewedCountEQ applies the EQ predicate on the "reviewed_count" field.
func ReviewedCountEQ(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldReviewedCount, v))
}

// ReviewedCountNEQ applies the NEQ predicate on the "reviewed_count" field.
func ReviewedCountNEQ(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNEQ(FieldReviewedCount, v))
}

// ReviewedCountIn applies the In predicate on the "reviewed_count" field.
func ReviewedCountIn(vs ...int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldIn(FieldReviewedCount, vs...))
}

// ReviewedCountNotIn applies the NotIn predicate on the "reviewed_count" field.
func ReviewedCountNotIn(vs ...int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNotIn(FieldReviewedCount, vs...))
}

// ReviewedCountGT applies the GT predicate on the "reviewed_count" field.
func ReviewedCountGT(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGT(FieldReviewedCount, v))
}

// ReviewedCountGTE applies the GTE predicate on the "reviewed_count" field.
func ReviewedCountGTE(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGTE(FieldReviewedCount, v))
}

// ReviewedCountLT applies the LT predicate on the "reviewed_count" field.
func ReviewedCountLT(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLT(FieldReviewedCount, v))
}

// ReviewedCountLTE applies the LTE predicate on the "reviewed_count" field.
func ReviewedCountLTE(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLTE(FieldReviewedCount, v))
}

// TotalCountEQ applies the EQ predicate on the "total_count" field.
func TotalCountEQ(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldTotalCount, v))
}

// TotalCountNEQ applies the NEQ predicate on the "total_count" field.
func TotalCountNEQ(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNEQ(FieldTotalCount, v))
}

// TotalCountIn applies the In predicate on the "total_count" field.
func TotalCountIn(vs ...int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldIn(FieldTotalCount, vs...))
}

// TotalCountNotIn applies the NotIn predicate on the "total_count" field.
func TotalCountNotIn(vs ...int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNotIn(FieldTotalCount, vs...))
}

// TotalCountGT applies the GT predicate on the "total_count" field.
func TotalCountGT(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGT(FieldTotalCount, v))
}

// TotalCountGTE applies the GTE predicate on the "total_count" field.
func TotalCountGTE(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGTE(FieldTotalCount, v))
}

// TotalCountLT applies the LT predicate on the "total_count" field.
func TotalCountLT(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLT(FieldTotalCount, v))
}

// TotalCountLTE applies the LTE predicate on the "total_count" field.
func TotalCountLTE(v int) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLTE(FieldTotalCount, v))
}

// ExtractionModelEQ applies the EQ predicate on the "extraction_model" field.
func ExtractionModelEQ(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldExtractionModel, v))
}

// ExtractionModelNEQ applies the NEQ predicate on the "extraction_model" field.
func ExtractionModelNEQ(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNEQ(FieldExtractionModel, v))
}

// ExtractionModelIn applies the In predicate on the "extraction_model" field.
func ExtractionModelIn(vs ...string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldIn(FieldExtractionModel, vs...))
}

// ExtractionModelNotIn applies the NotIn predicate on the "extraction_model" field.
func ExtractionModelNotIn(vs ...string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNotIn(FieldExtractionModel, vs...))
}

// ExtractionModelGT applies the GT predicate on the "extraction_model" field.
func ExtractionModelGT(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGT(FieldExtractionModel, v))
}

// ExtractionModelGTE applies the GTE predicate on the "extraction_model" field.
func ExtractionModelGTE(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGTE(FieldExtractionModel, v))
}

// ExtractionModelLT applies the LT predicate on the "extraction_model" field.
func ExtractionModelLT(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLT(FieldExtractionModel, v))
}

// ExtractionModelLTE applies the LTE predicate on the "extraction_model" field.
func ExtractionModelLTE(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLTE(FieldExtractionModel, v))
}

// ExtractionModelContains applies the Contains predicate on the "extraction_model" field.
func ExtractionModelContains(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldContains(FieldExtractionModel, v))
}

// ExtractionModelHasPrefix applies the HasPrefix predicate on the "extraction_model" field.
func ExtractionModelHasPrefix(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldHasPrefix(FieldExtractionModel, v))
}

// ExtractionModelHasSuffix applies the HasSuffix predicate on the "extraction_model" field.
func ExtractionModelHasSuffix(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldHasSuffix(FieldExtractionModel, v))
}

// ExtractionModelEqualFold applies the EqualFold predicate on the "extraction_model" field.
func ExtractionModelEqualFold(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEqualFold(FieldExtractionModel, v))
}

// ExtractionModelContainsFold applies the ContainsFold predicate on the "extraction_model" field.
func ExtractionModelContainsFold(v string) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldContainsFold(FieldExtractionModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProtocol applies the HasEdge predicate on the "protocol" edge.
func HasProtocol() predicate.CriteriaBatch {
	return predicate.CriteriaBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProtocolTable, ProtocolColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProtocolWith applies the HasEdge predicate on the "protocol" edge with a given conditions (other predicates).
func HasProtocolWith(preds ...predicate.Protocol) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(func(s *sql.Selector) {
		step := newProtocolStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCriteria applies the HasEdge predicate on the "criteria" edge.
func HasCriteria() predicate.CriteriaBatch {
	return predicate.CriteriaBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CriteriaTable, CriteriaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCriteriaWith applies the HasEdge predicate on the "criteria" edge with a given conditions (other predicates).
func HasCriteriaWith(preds ...predicate.Criterion) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(func(s *sql.Selector) {
		step := newCriteriaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CriteriaBatch) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CriteriaBatch) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CriteriaBatch) predicate.CriteriaBatch {
	return predicate.CriteriaBatch(sql.NotPredicates(p))
}
