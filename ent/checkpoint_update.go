// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eligius-health/eligius/ent/checkpoint"
	"github.com/eligius-health/eligius/ent/predicate"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *CheckpointUpdate) SetThreadID(v string) *CheckpointUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableThreadID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *CheckpointUpdate) SetStep(v int) *CheckpointUpdate {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableStep(v *int) *CheckpointUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *CheckpointUpdate) AddStep(v int) *CheckpointUpdate {
	_u.mutation.AddStep(v)
	return _u
}

// SetNode sets the "node" field.
func (_u *CheckpointUpdate) SetNode(v string) *CheckpointUpdate {
	_u.mutation.SetNode(v)
	return _u
}

// SetNillableNode sets the "node" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableNode(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetNode(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CheckpointUpdate) SetState(v []byte) *CheckpointUpdate {
	_u.mutation.SetState(v)
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(checkpoint.FieldThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(checkpoint.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(checkpoint.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Node(); ok {
		_spec.SetField(checkpoint.FieldNode, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeBytes, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetThreadID sets the "thread_id" field.
func (_u *CheckpointUpdateOne) SetThreadID(v string) *CheckpointUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableThreadID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *CheckpointUpdateOne) SetStep(v int) *CheckpointUpdateOne {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableStep(v *int) *CheckpointUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *CheckpointUpdateOne) AddStep(v int) *CheckpointUpdateOne {
	_u.mutation.AddStep(v)
	return _u
}

// SetNode sets the "node" field.
func (_u *CheckpointUpdateOne) SetNode(v string) *CheckpointUpdateOne {
	_u.mutation.SetNode(v)
	return _u
}

// SetNillableNode sets the "node" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableNode(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetNode(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CheckpointUpdateOne) SetState(v []byte) *CheckpointUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
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
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(checkpoint.FieldThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(checkpoint.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(checkpoint.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Node(); ok {
		_spec.SetField(checkpoint.FieldNode, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeBytes, value)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
