// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/protocol"
)

// CriteriaBatchCreate is the builder for creating a CriteriaBatch entity.
type CriteriaBatchCreate struct {
	config
	mutation *CriteriaBatchMutation
	hooks    []Hook
}

// SetProtocolID sets the "protocol_id" field.
func (_c *CriteriaBatchCreate) SetProtocolID(v string) *CriteriaBatchCreate {
	_c.mutation.SetProtocolID(v)
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *CriteriaBatchCreate) SetIsArchived(v bool) *CriteriaBatchCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *CriteriaBatchCreate) SetNillableIsArchived(v *bool) *CriteriaBatchCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetReviewedCount sets the "reviewed_count" field.
func (_c *CriteriaBatchCreate) SetReviewedCount(v int) *CriteriaBatchCreate {
	_c.mutation.SetReviewedCount(v)
	return _c
}

// SetNillableReviewedCount sets the "reviewed_count" field if the given value is not nil.
func (_c *CriteriaBatchCreate) SetNillableReviewedCount(v *int) *CriteriaBatchCreate {
	if v != nil {
		_c.SetReviewedCount(*v)
	}
	return _c
}

// SetTotalCount sets the "total_count" field.
func (_c *CriteriaBatchCreate) SetTotalCount(v int) *CriteriaBatchCreate {
	_c.mutation.SetTotalCount(v)
	return _c
}

// SetNillableTotalCount sets the "total_count" field if the given value is not nil.
func (_c *CriteriaBatchCreate) SetNillableTotalCount(v *int) *CriteriaBatchCreate {
	if v != nil {
		_c.SetTotalCount(*v)
	}
	return _c
}

// SetExtractionModel sets the "extraction_model" field.
func (_c *CriteriaBatchCreate) SetExtractionModel(v string) *CriteriaBatchCreate {
	_c.mutation.SetExtractionModel(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CriteriaBatchCreate) SetCreatedAt(v time.Time) *CriteriaBatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CriteriaBatchCreate) SetNillableCreatedAt(v *time.Time) *CriteriaBatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CriteriaBatchCreate) SetUpdatedAt(v time.Time) *CriteriaBatchCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CriteriaBatchCreate) SetNillableUpdatedAt(v *time.Time) *CriteriaBatchCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CriteriaBatchCreate) SetID(v string) *CriteriaBatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProtocol sets the "protocol" edge to the Protocol entity.
func (_c *CriteriaBatchCreate) SetProtocol(v *Protocol) *CriteriaBatchCreate {
	return _c.SetProtocolID(v.ID)
}

// AddCriteriumIDs adds the "criteria" edge to the Criterion entity by IDs.
func (_c *CriteriaBatchCreate) AddCriteriumIDs(ids ...string) *CriteriaBatchCreate {
	_c.mutation.AddCriteriumIDs(ids...)
	return _c
}

// AddCriteria adds the "criteria" edges to the Criterion entity.
func (_c *CriteriaBatchCreate) AddCriteria(v ...*Criterion) *CriteriaBatchCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCriteriumIDs(ids...)
}

// Mutation returns the CriteriaBatchMutation object of the builder.
func (_c *CriteriaBatchCreate) Mutation() *CriteriaBatchMutation {
	return _c.mutation
}

// Save creates the CriteriaBatch in the database.
func (_c *CriteriaBatchCreate) Save(ctx context.Context) (*CriteriaBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CriteriaBatchCreate) SaveX(ctx context.Context) *CriteriaBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CriteriaBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CriteriaBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CriteriaBatchCreate) defaults() {
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := criteriabatch.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.ReviewedCount(); !ok {
		v := criteriabatch.DefaultReviewedCount
		_c.mutation.SetReviewedCount(v)
	}
	if _, ok := _c.mutation.TotalCount(); !ok {
		v := criteriabatch.DefaultTotalCount
		_c.mutation.SetTotalCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := criteriabatch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := criteriabatch.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CriteriaBatchCreate) check() error {
	if _, ok := _c.mutation.ProtocolID(); !ok {
		return &ValidationError{Name: "protocol_id", err: errors.New(`ent: missing required field "CriteriaBatch.protocol_id"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`ent: missing required field "CriteriaBatch.is_archived"`)}
	}
	if _, ok := _c.mutation.ReviewedCount(); !ok {
		return &ValidationError{Name: "reviewed_count", err: errors.New(`ent: missing required field "CriteriaBatch.reviewed_count"`)}
	}
	if _, ok := _c.mutation.TotalCount(); !ok {
		return &ValidationError{Name: "total_count", err: errors.New(`ent: missing required field "CriteriaBatch.total_count"`)}
	}
	if _, ok := _c.mutation.ExtractionModel(); !ok {
		return &ValidationError{Name: "extraction_model", err: errors.New(`ent: missing required field "CriteriaBatch.extraction_model"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CriteriaBatch.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CriteriaBatch.updated_at"`)}
	}
	if len(_c.mutation.ProtocolIDs()) == 0 {
		return &ValidationError{Name: "protocol", err: errors.New(`ent: missing required edge "CriteriaBatch.protocol"`)}
	}
	return nil
}

func (_c *CriteriaBatchCreate) sqlSave(ctx context.Context) (*CriteriaBatch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CriteriaBatch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CriteriaBatchCreate) createSpec() (*CriteriaBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &CriteriaBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(criteriabatch.Table, sqlgraph.NewFieldSpec(criteriabatch.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(criteriabatch.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ReviewedCount(); ok {
		_spec.SetField(criteriabatch.FieldReviewedCount, field.TypeInt, value)
		_node.ReviewedCount = value
	}
	if value, ok := _c.mutation.TotalCount(); ok {
		_spec.SetField(criteriabatch.FieldTotalCount, field.TypeInt, value)
		_node.TotalCount = value
	}
	if value, ok := _c.mutation.ExtractionModel(); ok {
		_spec.SetField(criteriabatch.FieldExtractionModel, field.TypeString, value)
		_node.ExtractionModel = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(criteriabatch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(criteriabatch.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProtocolIDs(); len(nodes) > 0 {
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
		_node.ProtocolID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CriteriaIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CriteriaBatchCreateBulk is the builder for creating many CriteriaBatch entities in bulk.
type CriteriaBatchCreateBulk struct {
	config
	err      error
	builders []*CriteriaBatchCreate
}

// Save creates the CriteriaBatch entities in the database.
func (_c *CriteriaBatchCreateBulk) Save(ctx context.Context) ([]*CriteriaBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CriteriaBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CriteriaBatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CriteriaBatchCreateBulk) SaveX(ctx context.Context) []*CriteriaBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CriteriaBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CriteriaBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
