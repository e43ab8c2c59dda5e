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
	"github.com/eligius-health/eligius/ent/protocol"
)

// ProtocolCreate is the builder for creating a Protocol entity.
type ProtocolCreate struct {
	config
	mutation *ProtocolMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ProtocolCreate) SetTitle(v string) *ProtocolCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetFilePointer sets the "file_pointer" field.
func (_c *ProtocolCreate) SetFilePointer(v string) *ProtocolCreate {
	_c.mutation.SetFilePointer(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProtocolCreate) SetStatus(v protocol.Status) *ProtocolCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProtocolCreate) SetNillableStatus(v *protocol.Status) *ProtocolCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ProtocolCreate) SetMetadata(v map[string]interface{}) *ProtocolCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetErrorReason sets the "error_reason" field.
func (_c *ProtocolCreate) SetErrorReason(v string) *ProtocolCreate {
	_c.mutation.SetErrorReason(v)
	return _c
}

// SetNillableErrorReason sets the "error_reason" field if the given value is not nil.
func (_c *ProtocolCreate) SetNillableErrorReason(v *string) *ProtocolCreate {
	if v != nil {
		_c.SetErrorReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProtocolCreate) SetCreatedAt(v time.Time) *ProtocolCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProtocolCreate) SetNillableCreatedAt(v *time.Time) *ProtocolCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProtocolCreate) SetUpdatedAt(v time.Time) *ProtocolCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProtocolCreate) SetNillableUpdatedAt(v *time.Time) *ProtocolCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProtocolCreate) SetID(v string) *ProtocolCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddBatchIDs adds the "batches" edge to the CriteriaBatch entity by IDs.
func (_c *ProtocolCreate) AddBatchIDs(ids ...string) *ProtocolCreate {
	_c.mutation.AddBatchIDs(ids...)
	return _c
}

// AddBatches adds the "batches" edges to the CriteriaBatch entity.
func (_c *ProtocolCreate) AddBatches(v ...*CriteriaBatch) *ProtocolCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBatchIDs(ids...)
}

// Mutation returns the ProtocolMutation object of the builder.
func (_c *ProtocolCreate) Mutation() *ProtocolMutation {
	return _c.mutation
}

// Save creates the Protocol in the database.
func (_c *ProtocolCreate) Save(ctx context.Context) (*Protocol, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProtocolCreate) SaveX(ctx context.Context) *Protocol {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProtocolCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProtocolCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProtocolCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := protocol.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := protocol.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := protocol.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProtocolCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Protocol.title"`)}
	}
	if _, ok := _c.mutation.FilePointer(); !ok {
		return &ValidationError{Name: "file_pointer", err: errors.New(`ent: missing required field "Protocol.file_pointer"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Protocol.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := protocol.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Protocol.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Protocol.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Protocol.updated_at"`)}
	}
	return nil
}

func (_c *ProtocolCreate) sqlSave(ctx context.Context) (*Protocol, error) {
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
			return nil, fmt.Errorf("unexpected Protocol.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProtocolCreate) createSpec() (*Protocol, *sqlgraph.CreateSpec) {
	var (
		_node = &Protocol{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(protocol.Table, sqlgraph.NewFieldSpec(protocol.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(protocol.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.FilePointer(); ok {
		_spec.SetField(protocol.FieldFilePointer, field.TypeString, value)
		_node.FilePointer = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(protocol.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(protocol.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.ErrorReason(); ok {
		_spec.SetField(protocol.FieldErrorReason, field.TypeString, value)
		_node.ErrorReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(protocol.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(protocol.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProtocolCreateBulk is the builder for creating many Protocol entities in bulk.
type ProtocolCreateBulk struct {
	config
	err      error
	builders []*ProtocolCreate
}

// Save creates the Protocol entities in the database.
func (_c *ProtocolCreateBulk) Save(ctx context.Context) ([]*Protocol, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Protocol, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProtocolMutation)
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
func (_c *ProtocolCreateBulk) SaveX(ctx context.Context) []*Protocol {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProtocolCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProtocolCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
