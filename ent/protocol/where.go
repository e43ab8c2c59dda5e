// Code generated by ent, DO NOT EDIT.

package protocol

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/eligius-health/eligius/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Protocol {
	return predicate.Protocol(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Protocol {
	return predicate.Protocol(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Protocol {
	return predicate.Protocol(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Protocol {
	return predicate.Protocol(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Protocol {
	return predicate.Protocol(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Protocol {
	return predicate.Protocol(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Protocol {
	return predicate.Protocol(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Protocol {
	return predicate.Protocol(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldTitle, v))
}

// FilePointer applies equality check predicate on the "file_pointer" field. It's identical to FilePointerEQ.
func FilePointer(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldFilePointer, v))
}

// ErrorReason applies equality check predicate on the "error_reason" field. It's identical to ErrorReasonEQ.
func ErrorReason(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldErrorReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Protocol {
	return predicate.Protocol(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Protocol {
	return predicate.Protocol(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldContainsFold(FieldTitle, v))
}

// FilePointerEQ applies the EQ predicate on the "file_pointer" field.
func FilePointerEQ(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldFilePointer, v))
}

// FilePointerNEQ applies the NEQ predicate on the "file_pointer" field.
func FilePointerNEQ(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldNEQ(FieldFilePointer, v))
}

// FilePointerIn applies the In predicate on the "file_pointer" field.
func FilePointerIn(vs ...string) predicate.Protocol {
	return predicate.Protocol(sql.FieldIn(FieldFilePointer, vs...))
}

// FilePointerNotIn applies the NotIn predicate on the "file_pointer" field.
func FilePointerNotIn(vs ...string) predicate.Protocol {
	return predicate.Protocol(sql.FieldNotIn(FieldFilePointer, vs...))
}

// FilePointerGT applies the GT predicate on the "file_pointer" field.
func FilePointerGT(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldGT(FieldFilePointer, v))
}

// FilePointerGTE applies the GTE predicate on the "file_pointer" field.
func FilePointerGTE(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldGTE(FieldFilePointer, v))
}

// FilePointerLT applies the LT predicate on the "file_pointer" field.
func FilePointerLT(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldLT(FieldFilePointer, v))
}

// FilePointerLTE applies the LTE predicate on the "file_pointer" field.
func FilePointerLTE(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldLTE(FieldFilePointer, v))
}

// FilePointerContains applies the Contains predicate on the "file_pointer" field.
func FilePointerContains(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldContains(FieldFilePointer, v))
}

// FilePointerHasPrefix applies the HasPrefix predicate on the "file_pointer" field.
func FilePointerHasPrefix(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldHasPrefix(FieldFilePointer, v))
}

// FilePointerHasSuffix applies the HasSuffix predicate on the "file_pointer" field.
func FilePointerHasSuffix(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldHasSuffix(FieldFilePointer, v))
}

// FilePointerEqualFold applies the EqualFold predicate on the "file_pointer" field.
func FilePointerEqualFold(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEqualFold(FieldFilePointer, v))
}

// FilePointerContainsFold applies the ContainsFold predicate on the "file_pointer" field.
func FilePointerContainsFold(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldContainsFold(FieldFilePointer, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Protocol {
	return predicate.Protocol(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Protocol {
	return predicate.Protocol(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Protocol {
	return predicate.Protocol(sql.FieldNotIn(FieldStatus, vs...))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Protocol {
	return predicate.Protocol(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Protocol {
	return predicate.Protocol(sql.FieldNotNull(FieldMetadata))
}

// ErrorReasonEQ applies the EQ predicate on the "error_reason" field.
func ErrorReasonEQ(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldErrorReason, v))
}

// ErrorReasonNEQ applies the NEQ predicate on the "error_reason" field.
func ErrorReasonNEQ(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldNEQ(FieldErrorReason, v))
}

// ErrorReasonIn applies the In predicate on the "error_reason" field.
func ErrorReasonIn(vs ...string) predicate.Protocol {
	return predicate.Protocol(sql.FieldIn(FieldErrorReason, vs...))
}

// ErrorReasonNotIn applies the NotIn predicate on the "error_reason" field.
func ErrorReasonNotIn(vs ...string) predicate.Protocol {
	return predicate.Protocol(sql.FieldNotIn(FieldErrorReason, vs...))
}

// ErrorReasonGT applies the GT predicate on the "error_reason" field.
func ErrorReasonGT(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldGT(FieldErrorReason, v))
}

// ErrorReasonGTE applies the GTE predicate on the "error_reason" field.
func ErrorReasonGTE(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldGTE(FieldErrorReason, v))
}

// ErrorReasonLT applies the LT predicate on the "error_reason" field.
func ErrorReasonLT(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldLT(FieldErrorReason, v))
}

// ErrorReasonLTE applies the LTE predicate on the "error_reason" field.
func ErrorReasonLTE(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldLTE(FieldErrorReason, v))
}

// ErrorReasonContains applies the Contains predicate on the "error_reason" field.
func ErrorReasonContains(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldContains(FieldErrorReason, v))
}

// ErrorReasonHasPrefix applies the HasPrefix predicate on the "error_reason" field.
func ErrorReasonHasPrefix(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldHasPrefix(FieldErrorReason, v))
}

// ErrorReasonHasSuffix applies the HasSuffix predicate on the "error_reason" field.
func ErrorReasonHasSuffix(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldHasSuffix(FieldErrorReason, v))
}

// ErrorReasonIsNil applies the IsNil predicate on the "error_reason" field.
func ErrorReasonIsNil() predicate.Protocol {
	return predicate.Protocol(sql.FieldIsNull(FieldErrorReason))
}

// ErrorReasonNotNil applies the NotNil predicate on the "error_reason" field.
func ErrorReasonNotNil() predicate.Protocol {
	return predicate.Protocol(sql.FieldNotNull(FieldErrorReason))
}

// ErrorReasonEqualFold applies the EqualFold predicate on the "error_reason" field.
func ErrorReasonEqualFold(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldEqualFold(FieldErrorReason, v))
}

// ErrorReasonContainsFold applies the ContainsFold predicate on the "error_reason" field.
func ErrorReasonContainsFold(v string) predicate.Protocol {
	return predicate.Protocol(sql.FieldContainsFold(FieldErrorReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Protocol {
	return predicate.Protocol(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBatches applies the HasEdge predicate on the "batches" edge.
func HasBatches() predicate.Protocol {
	return predicate.Protocol(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BatchesTable, BatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchesWith applies the HasEdge predicate on the "batches" edge with a given conditions (other predicates).
func HasBatchesWith(preds ...predicate.CriteriaBatch) predicate.Protocol {
	return predicate.Protocol(func(s *sql.Selector) {
		step := newBatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Protocol) predicate.Protocol {
	return predicate.Protocol(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Protocol) predicate.Protocol {
	return predicate.Protocol(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Protocol) predicate.Protocol {
	return predicate.Protocol(sql.NotPredicates(p))
}
