// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/entity"
	"github.com/eligius-health/eligius/ent/predicate"
	"github.com/eligius-health/eligius/pkg/models"
)

// CriterionUpdate is the builder for updating Criterion entities.
type CriterionUpdate struct {
	config
	hooks    []Hook
	mutation *CriterionMutation
}

// Where appends a list predicates to the CriterionUpdate builder.
func (_u *CriterionUpdate) Where(ps ...predicate.Criterion) *CriterionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *CriterionUpdate) SetBatchID(v string) *CriterionUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *CriterionUpdate) SetNillableBatchID(v *string) *CriterionUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *CriterionUpdate) SetText(v string) *CriterionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *CriterionUpdate) SetNillableText(v *string) *CriterionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *CriterionUpdate) SetKind(v models.CriterionKind) *CriterionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CriterionUpdate) SetNillableKind(v *models.CriterionKind) *CriterionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CriterionUpdate) SetCategory(v string) *CriterionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CriterionUpdate) SetNillableCategory(v *string) *CriterionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CriterionUpdate) SetConfidence(v float64) *CriterionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CriterionUpdate) SetNillableConfidence(v *float64) *CriterionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CriterionUpdate) AddConfidence(v float64) *CriterionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPage sets the "page" field.
func (_u *CriterionUpdate) SetPage(v int) *CriterionUpdate {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *CriterionUpdate) SetNillablePage(v *int) *CriterionUpdate {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *CriterionUpdate) AddPage(v int) *CriterionUpdate {
	_u.mutation.AddPage(v)
	return _u
}

// SetThresholds sets the "thresholds" field.
func (_u *CriterionUpdate) SetThresholds(v []models.NumericThreshold) *CriterionUpdate {
	_u.mutation.SetThresholds(v)
	return _u
}

// AppendThresholds appends value to the "thresholds" field.
func (_u *CriterionUpdate) AppendThresholds(v []models.NumericThreshold) *CriterionUpdate {
	_u.mutation.AppendThresholds(v)
	return _u
}

// ClearThresholds clears the value of the "thresholds" field.
func (_u *CriterionUpdate) ClearThresholds() *CriterionUpdate {
	_u.mutation.ClearThresholds()
	return _u
}

// SetTemporal sets the "temporal" field.
func (_u *CriterionUpdate) SetTemporal(v *models.TemporalConstraint) *CriterionUpdate {
	_u.mutation.SetTemporal(v)
	return _u
}

// ClearTemporal clears the value of the "temporal" field.
func (_u *CriterionUpdate) ClearTemporal() *CriterionUpdate {
	_u.mutation.ClearTemporal()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *CriterionUpdate) SetConditions(v []string) *CriterionUpdate {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *CriterionUpdate) AppendConditions(v []string) *CriterionUpdate {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *CriterionUpdate) ClearConditions() *CriterionUpdate {
	_u.mutation.ClearConditions()
	return _u
}

// SetAssertionStatus sets the "assertion_status" field.
func (_u *CriterionUpdate) SetAssertionStatus(v models.AssertionStatus) *CriterionUpdate {
	_u.mutation.SetAssertionStatus(v)
	return _u
}

// SetNillableAssertionStatus sets the "assertion_status" field if the given value is not nil.
func (_u *CriterionUpdate) SetNillableAssertionStatus(v *models.AssertionStatus) *CriterionUpdate {
	if v != nil {
		_u.SetAssertionStatus(*v)
	}
	return _u
}

// ClearAssertionStatus clears the value of the "assertion_status" field.
func (_u *CriterionUpdate) ClearAssertionStatus() *CriterionUpdate {
	_u.mutation.ClearAssertionStatus()
	return _u
}

// SetReviewDecision sets the "review_decision" field.
func (_u *CriterionUpdate) SetReviewDecision(v models.ReviewDecision) *CriterionUpdate {
	_u.mutation.SetReviewDecision(v)
	return _u
}

// SetNillableReviewDecision sets the "review_decision" field if the given value is not nil.
func (_u *CriterionUpdate) SetNillableReviewDecision(v *models.ReviewDecision) *CriterionUpdate {
	if v != nil {
		_u.SetReviewDecision(*v)
	}
	return _u
}

// ClearReviewDecision clears the value of the "review_decision" field.
func (_u *CriterionUpdate) ClearReviewDecision() *CriterionUpdate {
	_u.mutation.ClearReviewDecision()
	return _u
}

// SetModification sets the "modification" field.
func (_u *CriterionUpdate) SetModification(v map[string]interface{}) *CriterionUpdate {
	_u.mutation.SetModification(v)
	return _u
}

// ClearModification clears the value of the "modification" field.
func (_u *CriterionUpdate) ClearModification() *CriterionUpdate {
	_u.mutation.ClearModification()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CriterionUpdate) SetUpdatedAt(v time.Time) *CriterionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBatch sets the "batch" edge to the CriteriaBatch entity.
func (_u *CriterionUpdate) SetBatch(v *CriteriaBatch) *CriterionUpdate {
	return _u.SetBatchID(v.ID)
}

// AddEntityIDs adds the "entities" edge to the Entity entity by IDs.
func (_u *CriterionUpdate) AddEntityIDs(ids ...string) *CriterionUpdate {
	_u.mutation.AddEntityIDs(ids...)
	return _u
}

// AddEntities adds the "entities" edges to the Entity entity.
func (_u *CriterionUpdate) AddEntities(v ...*Entity) *CriterionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityIDs(ids...)
}

// Mutation returns the CriterionMutation object of the builder.
func (_u *CriterionUpdate) Mutation() *CriterionMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the CriteriaBatch entity.
func (_u *CriterionUpdate) ClearBatch() *CriterionUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// ClearEntities clears all "entities" edges to the Entity entity.
func (_u *CriterionUpdate) ClearEntities() *CriterionUpdate {
	_u.mutation.ClearEntities()
	return _u
}

// RemoveEntityIDs removes the "entities" edge to Entity entities by IDs.
func (_u *CriterionUpdate) RemoveEntityIDs(ids ...string) *CriterionUpdate {
	_u.mutation.RemoveEntityIDs(ids...)
	return _u
}

// RemoveEntities removes "entities" edges to Entity entities.
func (_u *CriterionUpdate) RemoveEntities(v ...*Entity) *CriterionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CriterionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CriterionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CriterionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CriterionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CriterionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := criterion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CriterionUpdate) check() error {
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Criterion.batch"`)
	}
	return nil
}

func (_u *CriterionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(criterion.Table, criterion.Columns, sqlgraph.NewFieldSpec(criterion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(criterion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(criterion.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(criterion.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(criterion.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(criterion.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(criterion.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(criterion.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Thresholds(); ok {
		_spec.SetField(criterion.FieldThresholds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedThresholds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, criterion.FieldThresholds, value)
		})
	}
	if _u.mutation.ThresholdsCleared() {
		_spec.ClearField(criterion.FieldThresholds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Temporal(); ok {
		_spec.SetField(criterion.FieldTemporal, field.TypeJSON, value)
	}
	if _u.mutation.TemporalCleared() {
		_spec.ClearField(criterion.FieldTemporal, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(criterion.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, criterion.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(criterion.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssertionStatus(); ok {
		_spec.SetField(criterion.FieldAssertionStatus, field.TypeString, value)
	}
	if _u.mutation.AssertionStatusCleared() {
		_spec.ClearField(criterion.FieldAssertionStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewDecision(); ok {
		_spec.SetField(criterion.FieldReviewDecision, field.TypeString, value)
	}
	if _u.mutation.ReviewDecisionCleared() {
		_spec.ClearField(criterion.FieldReviewDecision, field.TypeString)
	}
	if value, ok := _u.mutation.Modification(); ok {
		_spec.SetField(criterion.FieldModification, field.TypeJSON, value)
	}
	if _u.mutation.ModificationCleared() {
		_spec.ClearField(criterion.FieldModification, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(criterion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   criterion.BatchTable,
			Columns: []string{criterion.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   criterion.BatchTable,
			Columns: []string{criterion.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criterion.EntitiesTable,
			Columns: []string{criterion.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntitiesIDs(); len(nodes) > 0 && !_u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criterion.EntitiesTable,
			Columns: []string{criterion.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criterion.EntitiesTable,
			Columns: []string{criterion.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{criterion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CriterionUpdateOne is the builder for updating a single Criterion entity.
type CriterionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CriterionMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *CriterionUpdateOne) SetBatchID(v string) *CriterionUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *CriterionUpdateOne) SetNillableBatchID(v *string) *CriterionUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *CriterionUpdateOne) SetText(v string) *CriterionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *CriterionUpdateOne) SetNillableText(v *string) *CriterionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *CriterionUpdateOne) SetKind(v models.CriterionKind) *CriterionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CriterionUpdateOne) SetNillableKind(v *models.CriterionKind) *CriterionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CriterionUpdateOne) SetCategory(v string) *CriterionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CriterionUpdateOne) SetNillableCategory(v *string) *CriterionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CriterionUpdateOne) SetConfidence(v float64) *CriterionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CriterionUpdateOne) SetNillableConfidence(v *float64) *CriterionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CriterionUpdateOne) AddConfidence(v float64) *CriterionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPage sets the "page" field.
func (_u *CriterionUpdateOne) SetPage(v int) *CriterionUpdateOne {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *CriterionUpdateOne) SetNillablePage(v *int) *CriterionUpdateOne {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *CriterionUpdateOne) AddPage(v int) *CriterionUpdateOne {
	_u.mutation.AddPage(v)
	return _u
}

// SetThresholds sets the "thresholds" field.
func (_u *CriterionUpdateOne) SetThresholds(v []models.NumericThreshold) *CriterionUpdateOne {
	_u.mutation.SetThresholds(v)
	return _u
}

// AppendThresholds appends value to the "thresholds" field.
func (_u *CriterionUpdateOne) AppendThresholds(v []models.NumericThreshold) *CriterionUpdateOne {
	_u.mutation.AppendThresholds(v)
	return _u
}

// ClearThresholds clears the value of the "thresholds" field.
func (_u *CriterionUpdateOne) ClearThresholds() *CriterionUpdateOne {
	_u.mutation.ClearThresholds()
	return _u
}

// SetTemporal sets the "temporal" field.
func (_u *CriterionUpdateOne) SetTemporal(v *models.TemporalConstraint) *CriterionUpdateOne {
	_u.mutation.SetTemporal(v)
	return _u
}

// ClearTemporal clears the value of the "temporal" field.
func (_u *CriterionUpdateOne) ClearTemporal() *CriterionUpdateOne {
	_u.mutation.ClearTemporal()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *CriterionUpdateOne) SetConditions(v []string) *CriterionUpdateOne {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *CriterionUpdateOne) AppendConditions(v []string) *CriterionUpdateOne {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *CriterionUpdateOne) ClearConditions() *CriterionUpdateOne {
	_u.mutation.ClearConditions()
	return _u
}

// SetAssertionStatus sets the "assertion_status" field.
func (_u *CriterionUpdateOne) SetAssertionStatus(v models.AssertionStatus) *CriterionUpdateOne {
	_u.mutation.SetAssertionStatus(v)
	return _u
}

// SetNillableAssertionStatus sets the "assertion_status" field if the given value is not nil.
func (_u *CriterionUpdateOne) SetNillableAssertionStatus(v *models.AssertionStatus) *CriterionUpdateOne {
	if v != nil {
		_u.SetAssertionStatus(*v)
	}
	return _u
}

// ClearAssertionStatus clears the value of the "assertion_status" field.
func (_u *CriterionUpdateOne) ClearAssertionStatus() *CriterionUpdateOne {
	_u.mutation.ClearAssertionStatus()
	return _u
}

// SetReviewDecision sets the "review_decision" field.
func (_u *CriterionUpdateOne) SetReviewDecision(v models.ReviewDecision) *CriterionUpdateOne {
	_u.mutation.SetReviewDecision(v)
	return _u
}

// SetNillableReviewDecision sets the "review_decision" field if the given value is not nil.
func (_u *CriterionUpdateOne) SetNillableReviewDecision(v *models.ReviewDecision) *CriterionUpdateOne {
	if v != nil {
		_u.SetReviewDecision(*v)
	}
	return _u
}

// ClearReviewDecision clears the value of the "review_decision" field.
func (_u *CriterionUpdateOne) ClearReviewDecision() *CriterionUpdateOne {
	_u.mutation.ClearReviewDecision()
	return _u
}

// SetModification sets the "modification" field.
func (_u *CriterionUpdateOne) SetModification(v map[string]interface{}) *CriterionUpdateOne {
	_u.mutation.SetModification(v)
	return _u
}

// ClearModification clears the value of the "modification" field.
func (_u *CriterionUpdateOne) ClearModification() *CriterionUpdateOne {
	_u.mutation.ClearModification()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CriterionUpdateOne) SetUpdatedAt(v time.Time) *CriterionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBatch sets the "batch" edge to the CriteriaBatch entity.
func (_u *CriterionUpdateOne) SetBatch(v *CriteriaBatch) *CriterionUpdateOne {
	return _u.SetBatchID(v.ID)
}

// AddEntityIDs adds the "entities" edge to the Entity entity by IDs.
func (_u *CriterionUpdateOne) AddEntityIDs(ids ...string) *CriterionUpdateOne {
	_u.mutation.AddEntityIDs(ids...)
	return _u
}

// AddEntities adds the "entities" edges to the Entity entity.
func (_u *CriterionUpdateOne) AddEntities(v ...*Entity) *CriterionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityIDs(ids...)
}

// Mutation returns the CriterionMutation object of the builder.
func (_u *CriterionUpdateOne) Mutation() *CriterionMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the CriteriaBatch entity.
func (_u *CriterionUpdateOne) ClearBatch() *CriterionUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// ClearEntities clears all "entities" edges to the Entity entity.
func (_u *CriterionUpdateOne) ClearEntities() *CriterionUpdateOne {
	_u.mutation.ClearEntities()
	return _u
}

// RemoveEntityIDs removes the "entities" edge to Entity entities by IDs.
func (_u *CriterionUpdateOne) RemoveEntityIDs(ids ...string) *CriterionUpdateOne {
	_u.mutation.RemoveEntityIDs(ids...)
	return _u
}

// RemoveEntities removes "entities" edges to Entity entities.
func (_u *CriterionUpdateOne) RemoveEntities(v ...*Entity) *CriterionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityIDs(ids...)
}

// Where appends a list predicates to the CriterionUpdate builder.
func (_u *CriterionUpdateOne) Where(ps ...predicate.Criterion) *CriterionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CriterionUpdateOne) Select(field string, fields ...string) *CriterionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Criterion entity.
func (_u *CriterionUpdateOne) Save(ctx context.Context) (*Criterion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CriterionUpdateOne) SaveX(ctx context.Context) *Criterion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CriterionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CriterionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CriterionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := criterion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CriterionUpdateOne) check() error {
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Criterion.batch"`)
	}
	return nil
}

func (_u *CriterionUpdateOne) sqlSave(ctx context.Context) (_node *Criterion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(criterion.Table, criterion.Columns, sqlgraph.NewFieldSpec(criterion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Criterion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, criterion.FieldID)
		for _, f := range fields {
			if !criterion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != criterion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(criterion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(criterion.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(criterion.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(criterion.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(criterion.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(criterion.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(criterion.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Thresholds(); ok {
		_spec.SetField(criterion.FieldThresholds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedThresholds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, criterion.FieldThresholds, value)
		})
	}
	if _u.mutation.ThresholdsCleared() {
		_spec.ClearField(criterion.FieldThresholds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Temporal(); ok {
		_spec.SetField(criterion.FieldTemporal, field.TypeJSON, value)
	}
	if _u.mutation.TemporalCleared() {
		_spec.ClearField(criterion.FieldTemporal, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(criterion.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, criterion.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(criterion.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssertionStatus(); ok {
		_spec.SetField(criterion.FieldAssertionStatus, field.TypeString, value)
	}
	if _u.mutation.AssertionStatusCleared() {
		_spec.ClearField(criterion.FieldAssertionStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewDecision(); ok {
		_spec.SetField(criterion.FieldReviewDecision, field.TypeString, value)
	}
	if _u.mutation.ReviewDecisionCleared() {
		_spec.ClearField(criterion.FieldReviewDecision, field.TypeString)
	}
	if value, ok := _u.mutation.Modification(); ok {
		_spec.SetField(criterion.FieldModification, field.TypeJSON, value)
	}
	if _u.mutation.ModificationCleared() {
		_spec.ClearField(criterion.FieldModification, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(criterion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   criterion.BatchTable,
			Columns: []string{criterion.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   criterion.BatchTable,
			Columns: []string{criterion.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criterion.EntitiesTable,
			Columns: []string{criterion.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntitiesIDs(); len(nodes) > 0 && !_u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criterion.EntitiesTable,
			Columns: []string{criterion.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criterion.EntitiesTable,
			Columns: []string{criterion.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Criterion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{criterion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
