// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/predicate"
	"github.com/eligius-health/eligius/ent/protocol"
)

// CriteriaBatchUpdate is the builder for updating CriteriaBatch entities.
type CriteriaBatchUpdate struct {
	config
	hooks    []Hook
	mutation *CriteriaBatchMutation
}

// Where appends a list predicates to the CriteriaBatchUpdate builder.
func (_u *CriteriaBatchUpdate) Where(ps ...predicate.CriteriaBatch) *CriteriaBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProtocolID sets the "protocol_id" field.
func (_u *CriteriaBatchUpdate) SetProtocolID(v string) *CriteriaBatchUpdate {
	_u.mutation.SetProtocolID(v)
	return _u
}

// SetNillableProtocolID sets the "protocol_id" field if the given value is not nil.
func (_u *CriteriaBatchUpdate) SetNillableProtocolID(v *string) *CriteriaBatchUpdate {
	if v != nil {
		_u.SetProtocolID(*v)
	}
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *CriteriaBatchUpdate) SetIsArchived(v bool) *CriteriaBatchUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *CriteriaBatchUpdate) SetNillableIsArchived(v *bool) *CriteriaBatchUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetReviewedCount sets the "reviewed_count" field.
func (_u *CriteriaBatchUpdate) SetReviewedCount(v int) *CriteriaBatchUpdate {
	_u.mutation.ResetReviewedCount()
	_u.mutation.SetReviewedCount(v)
	return _u
}

// SetNillableReviewedCount sets the "reviewed_count" field if the given value is not nil.
func (_u *CriteriaBatchUpdate) SetNillableReviewedCount(v *int) *CriteriaBatchUpdate {
	if v != nil {
		_u.SetReviewedCount(*v)
	}
	return _u
}

// AddReviewedCount adds value to the "reviewed_count" field.
func (_u *CriteriaBatchUpdate) AddReviewedCount(v int) *CriteriaBatchUpdate {
	_u.mutation.AddReviewedCount(v)
	return _u
}

// SetTotalCount sets the "total_count" field.
func (_u *CriteriaBatchUpdate) SetTotalCount(v int) *CriteriaBatchUpdate {
	_u.mutation.ResetTotalCount()
	_u.mutation.SetTotalCount(v)
	return _u
}

// SetNillableTotalCount sets the "total_count" field if the given value is not nil.
func (_u *CriteriaBatchUpdate) SetNillableTotalCount(v *int) *CriteriaBatchUpdate {
	if v != nil {
		_u.SetTotalCount(*v)
	}
	return _u
}

// AddTotalCount adds value to the "total_count" field.
func (_u *CriteriaBatchUpdate) AddTotalCount(v int) *CriteriaBatchUpdate {
	_u.mutation.AddTotalCount(v)
	return _u
}

// SetExtractionModel sets the "extraction_model" field.
func (_u *CriteriaBatchUpdate) SetExtractionModel(v string) *CriteriaBatchUpdate {
	_u.mutation.SetExtractionModel(v)
	return _u
}

// SetNillableExtractionModel sets the "extraction_model" field if the given value is not nil.
func (_u *CriteriaBatchUpdate) SetNillableExtractionModel(v *string) *CriteriaBatchUpdate {
	if v != nil {
		_u.SetExtractionModel(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CriteriaBatchUpdate) SetUpdatedAt(v time.Time) *CriteriaBatchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProtocol sets the "protocol" edge to the Protocol entity.
func (_u *CriteriaBatchUpdate) SetProtocol(v *Protocol) *CriteriaBatchUpdate {
	return _u.SetProtocolID(v.ID)
}

// AddCriteriumIDs adds the "criteria" edge to the Criterion entity by IDs.
func (_u *CriteriaBatchUpdate) AddCriteriumIDs(ids ...string) *CriteriaBatchUpdate {
	_u.mutation.AddCriteriumIDs(ids...)
	return _u
}

// AddCriteria adds the "criteria" edges to the Criterion entity.
func (_u *CriteriaBatchUpdate) AddCriteria(v ...*Criterion) *CriteriaBatchUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCriteriumIDs(ids...)
}

// Mutation returns the CriteriaBatchMutation object of the builder.
func (_u *CriteriaBatchUpdate) Mutation() *CriteriaBatchMutation {
	return _u.mutation
}

// ClearProtocol clears the "protocol" edge to the Protocol entity.
func (_u *CriteriaBatchUpdate) ClearProtocol() *CriteriaBatchUpdate {
	_u.mutation.ClearProtocol()
	return _u
}

// ClearCriteria clears all "criteria" edges to the Criterion entity.
func (_u *CriteriaBatchUpdate) ClearCriteria() *CriteriaBatchUpdate {
	_u.mutation.ClearCriteria()
	return _u
}

// RemoveCriteriumIDs removes the "criteria" edge to Criterion entities by IDs.
func (_u *CriteriaBatchUpdate) RemoveCriteriumIDs(ids ...string) *CriteriaBatchUpdate {
	_u.mutation.RemoveCriteriumIDs(ids...)
	return _u
}

// RemoveCriteria removes "criteria" edges to Criterion entities.
func (_u *CriteriaBatchUpdate) RemoveCriteria(v ...*Criterion) *CriteriaBatchUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCriteriumIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CriteriaBatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CriteriaBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CriteriaBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CriteriaBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CriteriaBatchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := criteriabatch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CriteriaBatchUpdate) check() error {
	if _u.mutation.ProtocolCleared() && len(_u.mutation.ProtocolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CriteriaBatch.protocol"`)
	}
	return nil
}

func (_u *CriteriaBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(criteriabatch.Table, criteriabatch.Columns, sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(criteriabatch.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewedCount(); ok {
		_spec.SetField(criteriabatch.FieldReviewedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewedCount(); ok {
		_spec.AddField(criteriabatch.FieldReviewedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCount(); ok {
		_spec.SetField(criteriabatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCount(); ok {
		_spec.AddField(criteriabatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractionModel(); ok {
		_spec.SetField(criteriabatch.FieldExtractionModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(criteriabatch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProtocolCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   criteriabatch.ProtocolTable,
			Columns: []string{criteriabatch.ProtocolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(protocol.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProtocolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   criteriabatch.ProtocolTable,
			Columns: []string{criteriabatch.ProtocolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(protocol.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CriteriaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criteriabatch.CriteriaTable,
			Columns: []string{criteriabatch.CriteriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criterion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCriteriaIDs(); len(nodes) > 0 && !_u.mutation.CriteriaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criteriabatch.CriteriaTable,
			Columns: []string{criteriabatch.CriteriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criterion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CriteriaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criteriabatch.CriteriaTable,
			Columns: []string{criteriabatch.CriteriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criterion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{criteriabatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CriteriaBatchUpdateOne is the builder for updating a single CriteriaBatch entity.
type CriteriaBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CriteriaBatchMutation
}

// SetProtocolID sets the "protocol_id" field.
func (_u *CriteriaBatchUpdateOne) SetProtocolID(v string) *CriteriaBatchUpdateOne {
	_u.mutation.SetProtocolID(v)
	return _u
}

// SetNillableProtocolID sets the "protocol_id" field if the given value is not nil.
func (_u *CriteriaBatchUpdateOne) SetNillableProtocolID(v *string) *CriteriaBatchUpdateOne {
	if v != nil {
		_u.SetProtocolID(*v)
	}
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *CriteriaBatchUpdateOne) SetIsArchived(v bool) *CriteriaBatchUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *CriteriaBatchUpdateOne) SetNillableIsArchived(v *bool) *CriteriaBatchUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetReviewedCount sets the "reviewed_count" field.
func (_u *CriteriaBatchUpdateOne) SetReviewedCount(v int) *CriteriaBatchUpdateOne {
	_u.mutation.ResetReviewedCount()
	_u.mutation.SetReviewedCount(v)
	return _u
}

// SetNillableReviewedCount sets the "reviewed_count" field if the given value is not nil.
func (_u *CriteriaBatchUpdateOne) SetNillableReviewedCount(v *int) *CriteriaBatchUpdateOne {
	if v != nil {
		_u.SetReviewedCount(*v)
	}
	return _u
}

// AddReviewedCount adds value to the "reviewed_count" field.
func (_u *CriteriaBatchUpdateOne) AddReviewedCount(v int) *CriteriaBatchUpdateOne {
	_u.mutation.AddReviewedCount(v)
	return _u
}

// SetTotalCount sets the "total_count" field.
func (_u *CriteriaBatchUpdateOne) SetTotalCount(v int) *CriteriaBatchUpdateOne {
	_u.mutation.ResetTotalCount()
	_u.mutation.SetTotalCount(v)
	return _u
}

// SetNillableTotalCount sets the "total_count" field if the given value is not nil.
func (_u *CriteriaBatchUpdateOne) SetNillableTotalCount(v *int) *CriteriaBatchUpdateOne {
	if v != nil {
		_u.SetTotalCount(*v)
	}
	return _u
}

// AddTotalCount adds value to the "total_count" field.
func (_u *CriteriaBatchUpdateOne) AddTotalCount(v int) *CriteriaBatchUpdateOne {
	_u.mutation.AddTotalCount(v)
	return _u
}

// SetExtractionModel sets the "extraction_model" field.
func (_u *CriteriaBatchUpdateOne) SetExtractionModel(v string) *CriteriaBatchUpdateOne {
	_u.mutation.SetExtractionModel(v)
	return _u
}

// SetNillableExtractionModel sets the "extraction_model" field if the given value is not nil.
func (_u *CriteriaBatchUpdateOne) SetNillableExtractionModel(v *string) *CriteriaBatchUpdateOne {
	if v != nil {
		_u.SetExtractionModel(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CriteriaBatchUpdateOne) SetUpdatedAt(v time.Time) *CriteriaBatchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProtocol sets the "protocol" edge to the Protocol entity.
func (_u *CriteriaBatchUpdateOne) SetProtocol(v *Protocol) *CriteriaBatchUpdateOne {
	return _u.SetProtocolID(v.ID)
}

// AddCriteriumIDs adds the "criteria" edge to the Criterion entity by IDs.
func (_u *CriteriaBatchUpdateOne) AddCriteriumIDs(ids ...string) *CriteriaBatchUpdateOne {
	_u.mutation.AddCriteriumIDs(ids...)
	return _u
}

// AddCriteria adds the "criteria" edges to the Criterion entity.
func (_u *CriteriaBatchUpdateOne) AddCriteria(v ...*Criterion) *CriteriaBatchUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCriteriumIDs(ids...)
}

// Mutation returns the CriteriaBatchMutation object of the builder.
func (_u *CriteriaBatchUpdateOne) Mutation() *CriteriaBatchMutation {
	return _u.mutation
}

// ClearProtocol clears the "protocol" edge to the Protocol entity.
func (_u *CriteriaBatchUpdateOne) ClearProtocol() *CriteriaBatchUpdateOne {
	_u.mutation.ClearProtocol()
	return _u
}

// ClearCriteria clears all "criteria" edges to the Criterion entity.
func (_u *CriteriaBatchUpdateOne) ClearCriteria() *CriteriaBatchUpdateOne {
	_u.mutation.ClearCriteria()
	return _u
}

// RemoveCriteriumIDs removes the "criteria" edge to Criterion entities by IDs.
func (_u *CriteriaBatchUpdateOne) RemoveCriteriumIDs(ids ...string) *CriteriaBatchUpdateOne {
	_u.mutation.RemoveCriteriumIDs(ids...)
	return _u
}

// RemoveCriteria removes "criteria" edges to Criterion entities.
func (_u *CriteriaBatchUpdateOne) RemoveCriteria(v ...*Criterion) *CriteriaBatchUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCriteriumIDs(ids...)
}

// Where appends a list predicates to the CriteriaBatchUpdate builder.
func (_u *CriteriaBatchUpdateOne) Where(ps ...predicate.CriteriaBatch) *CriteriaBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CriteriaBatchUpdateOne) Select(field string, fields ...string) *CriteriaBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CriteriaBatch entity.
func (_u *CriteriaBatchUpdateOne) Save(ctx context.Context) (*CriteriaBatch, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CriteriaBatchUpdateOne) SaveX(ctx context.Context) *CriteriaBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CriteriaBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CriteriaBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CriteriaBatchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := criteriabatch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CriteriaBatchUpdateOne) check() error {
	if _u.mutation.ProtocolCleared() && len(_u.mutation.ProtocolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CriteriaBatch.protocol"`)
	}
	return nil
}

func (_u *CriteriaBatchUpdateOne) sqlSave(ctx context.Context) (_node *CriteriaBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(criteriabatch.Table, criteriabatch.Columns, sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CriteriaBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, criteriabatch.FieldID)
		for _, f := range fields {
			if !criteriabatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != criteriabatch.FieldID {
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
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(criteriabatch.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewedCount(); ok {
		_spec.SetField(criteriabatch.FieldReviewedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewedCount(); ok {
		_spec.AddField(criteriabatch.FieldReviewedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCount(); ok {
		_spec.SetField(criteriabatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCount(); ok {
		_spec.AddField(criteriabatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractionModel(); ok {
		_spec.SetField(criteriabatch.FieldExtractionModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(criteriabatch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProtocolCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   criteriabatch.ProtocolTable,
			Columns: []string{criteriabatch.ProtocolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(protocol.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProtocolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   criteriabatch.ProtocolTable,
			Columns: []string{criteriabatch.ProtocolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(protocol.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CriteriaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criteriabatch.CriteriaTable,
			Columns: []string{criteriabatch.CriteriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criterion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCriteriaIDs(); len(nodes) > 0 && !_u.mutation.CriteriaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criteriabatch.CriteriaTable,
			Columns: []string{criteriabatch.CriteriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criterion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CriteriaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   criteriabatch.CriteriaTable,
			Columns: []string{criteriabatch.CriteriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criterion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CriteriaBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{criteriabatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
