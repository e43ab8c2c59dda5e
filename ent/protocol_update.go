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
	"github.com/eligius-health/eligius/ent/predicate"
	"github.com/eligius-health/eligius/ent/protocol"
)

// ProtocolUpdate is the builder for updating Protocol entities.
type ProtocolUpdate struct {
	config
	hooks    []Hook
	mutation *ProtocolMutation
}

// Where appends a list predicates to the ProtocolUpdate builder.
func (_u *ProtocolUpdate) Where(ps ...predicate.Protocol) *ProtocolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProtocolUpdate) SetTitle(v string) *ProtocolUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProtocolUpdate) SetNillableTitle(v *string) *ProtocolUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFilePointer sets the "file_pointer" field.
func (_u *ProtocolUpdate) SetFilePointer(v string) *ProtocolUpdate {
	_u.mutation.SetFilePointer(v)
	return _u
}

// SetNillableFilePointer sets the "file_pointer" field if the given value is not nil.
func (_u *ProtocolUpdate) SetNillableFilePointer(v *string) *ProtocolUpdate {
	if v != nil {
		_u.SetFilePointer(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProtocolUpdate) SetStatus(v protocol.Status) *ProtocolUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProtocolUpdate) SetNillableStatus(v *protocol.Status) *ProtocolUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ProtocolUpdate) SetMetadata(v map[string]interface{}) *ProtocolUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ProtocolUpdate) ClearMetadata() *ProtocolUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetErrorReason sets the "error_reason" field.
func (_u *ProtocolUpdate) SetErrorReason(v string) *ProtocolUpdate {
	_u.mutation.SetErrorReason(v)
	return _u
}

// SetNillableErrorReason sets the "error_reason" field if the given value is not nil.
func (_u *ProtocolUpdate) SetNillableErrorReason(v *string) *ProtocolUpdate {
	if v != nil {
		_u.SetErrorReason(*v)
	}
	return _u
}

// ClearErrorReason clears the value of the "error_reason" field.
func (_u *ProtocolUpdate) ClearErrorReason() *ProtocolUpdate {
	_u.mutation.ClearErrorReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProtocolUpdate) SetUpdatedAt(v time.Time) *ProtocolUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBatchIDs adds the "batches" edge to the CriteriaBatch entity by IDs.
func (_u *ProtocolUpdate) AddBatchIDs(ids ...string) *ProtocolUpdate {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the CriteriaBatch entity.
func (_u *ProtocolUpdate) AddBatches(v ...*CriteriaBatch) *ProtocolUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// Mutation returns the ProtocolMutation object of the builder.
func (_u *ProtocolUpdate) Mutation() *ProtocolMutation {
	return _u.mutation
}

// ClearBatches clears all "batches" edges to the CriteriaBatch entity.
func (_u *ProtocolUpdate) ClearBatches() *ProtocolUpdate {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to CriteriaBatch entities by IDs.
func (_u *ProtocolUpdate) RemoveBatchIDs(ids ...string) *ProtocolUpdate {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to CriteriaBatch entities.
func (_u *ProtocolUpdate) RemoveBatches(v ...*CriteriaBatch) *ProtocolUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProtocolUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProtocolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProtocolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProtocolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProtocolUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := protocol.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProtocolUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := protocol.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Protocol.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProtocolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(protocol.Table, protocol.Columns, sqlgraph.NewFieldSpec(protocol.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(protocol.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePointer(); ok {
		_spec.SetField(protocol.FieldFilePointer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(protocol.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(protocol.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(protocol.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorReason(); ok {
		_spec.SetField(protocol.FieldErrorReason, field.TypeString, value)
	}
	if _u.mutation.ErrorReasonCleared() {
		_spec.ClearField(protocol.FieldErrorReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(protocol.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   protocol.BatchesTable,
			Columns: []string{protocol.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   protocol.BatchesTable,
			Columns: []string{protocol.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   protocol.BatchesTable,
			Columns: []string{protocol.BatchesColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{protocol.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProtocolUpdateOne is the builder for updating a single Protocol entity.
type ProtocolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProtocolMutation
}

// SetTitle sets the "title" field.
func (_u *ProtocolUpdateOne) SetTitle(v string) *ProtocolUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProtocolUpdateOne) SetNillableTitle(v *string) *ProtocolUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFilePointer sets the "file_pointer" field.
func (_u *ProtocolUpdateOne) SetFilePointer(v string) *ProtocolUpdateOne {
	_u.mutation.SetFilePointer(v)
	return _u
}

// SetNillableFilePointer sets the "file_pointer" field if the given value is not nil.
func (_u *ProtocolUpdateOne) SetNillableFilePointer(v *string) *ProtocolUpdateOne {
	if v != nil {
		_u.SetFilePointer(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProtocolUpdateOne) SetStatus(v protocol.Status) *ProtocolUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProtocolUpdateOne) SetNillableStatus(v *protocol.Status) *ProtocolUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ProtocolUpdateOne) SetMetadata(v map[string]interface{}) *ProtocolUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ProtocolUpdateOne) ClearMetadata() *ProtocolUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetErrorReason sets the "error_reason" field.
func (_u *ProtocolUpdateOne) SetErrorReason(v string) *ProtocolUpdateOne {
	_u.mutation.SetErrorReason(v)
	return _u
}

// SetNillableErrorReason sets the "error_reason" field if the given value is not nil.
func (_u *ProtocolUpdateOne) SetNillableErrorReason(v *string) *ProtocolUpdateOne {
	if v != nil {
		_u.SetErrorReason(*v)
	}
	return _u
}

// ClearErrorReason clears the value of the "error_reason" field.
func (_u *ProtocolUpdateOne) ClearErrorReason() *ProtocolUpdateOne {
	_u.mutation.ClearErrorReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProtocolUpdateOne) SetUpdatedAt(v time.Time) *ProtocolUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBatchIDs adds the "batches" edge to the CriteriaBatch entity by IDs.
func (_u *ProtocolUpdateOne) AddBatchIDs(ids ...string) *ProtocolUpdateOne {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the CriteriaBatch entity.
func (_u *ProtocolUpdateOne) AddBatches(v ...*CriteriaBatch) *ProtocolUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// Mutation returns the ProtocolMutation object of the builder.
func (_u *ProtocolUpdateOne) Mutation() *ProtocolMutation {
	return _u.mutation
}

// ClearBatches clears all "batches" edges to the CriteriaBatch entity.
func (_u *ProtocolUpdateOne) ClearBatches() *ProtocolUpdateOne {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to CriteriaBatch entities by IDs.
func (_u *ProtocolUpdateOne) RemoveBatchIDs(ids ...string) *ProtocolUpdateOne {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to CriteriaBatch entities.
func (_u *ProtocolUpdateOne) RemoveBatches(v ...*CriteriaBatch) *ProtocolUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// Where appends a list predicates to the ProtocolUpdate builder.
func (_u *ProtocolUpdateOne) Where(ps ...predicate.Protocol) *ProtocolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProtocolUpdateOne) Select(field string, fields ...string) *ProtocolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Protocol entity.
func (_u *ProtocolUpdateOne) Save(ctx context.Context) (*Protocol, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProtocolUpdateOne) SaveX(ctx context.Context) *Protocol {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProtocolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProtocolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProtocolUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := protocol.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProtocolUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := protocol.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Protocol.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProtocolUpdateOne) sqlSave(ctx context.Context) (_node *Protocol, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(protocol.Table, protocol.Columns, sqlgraph.NewFieldSpec(protocol.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Protocol.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, protocol.FieldID)
		for _, f := range fields {
			if !protocol.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != protocol.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(protocol.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePointer(); ok {
		_spec.SetField(protocol.FieldFilePointer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(protocol.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(protocol.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(protocol.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorReason(); ok {
		_spec.SetField(protocol.FieldErrorReason, field.TypeString, value)
	}
	if _u.mutation.ErrorReasonCleared() {
		_spec.ClearField(protocol.FieldErrorReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(protocol.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   protocol.BatchesTable,
			Columns: []string{protocol.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   protocol.BatchesTable,
			Columns: []string{protocol.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   protocol.BatchesTable,
			Columns: []string{protocol.BatchesColumn},
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
	_node = &Protocol{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{protocol.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
