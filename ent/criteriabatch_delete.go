// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/predicate"
)

// CriteriaBatchDelete is the builder for deleting a CriteriaBatch entity.
type CriteriaBatchDelete struct {
	config
	hooks    []Hook
	mutation *CriteriaBatchMutation
}

// Where appends a list predicates to the CriteriaBatchDelete builder.
func (_d *CriteriaBatchDelete) Where(ps ...predicate.CriteriaBatch) *CriteriaBatchDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CriteriaBatchDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CriteriaBatchDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CriteriaBatchDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(criteriabatch.Table, sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CriteriaBatchDeleteOne is the builder for deleting a single CriteriaBatch entity.
type CriteriaBatchDeleteOne struct {
	_d *CriteriaBatchDelete
}

// Where appends a list predicates to the CriteriaBatchDelete builder.
func (_d *CriteriaBatchDeleteOne) Where(ps ...predicate.CriteriaBatch) *CriteriaBatchDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CriteriaBatchDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{criteriabatch.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CriteriaBatchDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
