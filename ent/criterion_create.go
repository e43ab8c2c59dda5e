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
	"github.com/eligius-health/eligius/ent/entity"
	"github.com/eligius-health/eligius/pkg/models"
)

// CriterionCreate is the builder for creating a Criterion entity.
type CriterionCreate struct {
	config
	mutation *CriterionMutation
	hooks    []Hook
}

// SetBatchID sets the "batch_id" field.
func (_c *CriterionCreate) SetBatchID(v string) *CriterionCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *CriterionCreate) SetText(v string) *CriterionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *CriterionCreate) SetKind(v models.CriterionKind) *CriterionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CriterionCreate) SetCategory(v string) *CriterionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CriterionCreate) SetConfidence(v float64) *CriterionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *CriterionCreate) SetNillableConfidence(v *float64) *CriterionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetPage sets the "page" field.
func (_c *CriterionCreate) SetPage(v int) *CriterionCreate {
	_c.mutation.SetPage(v)
	return _c
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_c *CriterionCreate) SetNillablePage(v *int) *CriterionCreate {
	if v != nil {
		_c.SetPage(*v)
	}
	return _c
}

// SetThresholds sets the "thresholds" field.
func (_c *CriterionCreate) SetThresholds(v []models.NumericThreshold) *CriterionCreate {
	_c.mutation.SetThresholds(v)
	return _c
}

// SetTemporal sets the "temporal" field.
func (_c *CriterionCreate) SetTemporal(v *models.TemporalConstraint) *CriterionCreate {
	_c.mutation.SetTemporal(v)
	return _c
}

// SetConditions sets the "conditions" field.
func (_c *CriterionCreate) SetConditions(v []string) *CriterionCreate {
	_c.mutation.SetConditions(v)
	return _c
}

// SetAssertionStatus sets the "assertion_status" field.
func (_c *CriterionCreate) SetAssertionStatus(v models.AssertionStatus) *CriterionCreate {
	_c.mutation.SetAssertionStatus(v)
	return _c
}

// SetNillableAssertionStatus sets the "assertion_status" field if the given value is not nil.
func (_c *CriterionCreate) SetNillableAssertionStatus(v *models.AssertionStatus) *CriterionCreate {
	if v != nil {
		_c.SetAssertionStatus(*v)
	}
	return _c
}

// SetReviewDecision sets the "review_decision" field.
func (_c *CriterionCreate) SetReviewDecision(v models.ReviewDecision) *CriterionCreate {
	_c.mutation.SetReviewDecision(v)
	return _c
}

// SetNillableReviewDecision sets the "review_decision" field if the given value is not nil.
func (_c *CriterionCreate) SetNillableReviewDecision(v *models.ReviewDecision) *CriterionCreate {
	if v != nil {
		_c.SetReviewDecision(*v)
	}
	return _c
}

// SetModification sets the "modification" field.
func (_c *CriterionCreate) SetModification(v map[string]interface{}) *CriterionCreate {
	_c.mutation.SetModification(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CriterionCreate) SetCreatedAt(v time.Time) *CriterionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CriterionCreate) SetNillableCreatedAt(v *time.Time) *CriterionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CriterionCreate) SetUpdatedAt(v time.Time) *CriterionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CriterionCreate) SetNillableUpdatedAt(v *time.Time) *CriterionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CriterionCreate) SetID(v string) *CriterionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBatch sets the "batch" edge to the CriteriaBatch entity.
func (_c *CriterionCreate) SetBatch(v *CriteriaBatch) *CriterionCreate {
	return _c.SetBatchID(v.ID)
}

// AddEntityIDs adds the "entities" edge to the Entity entity by IDs.
func (_c *CriterionCreate) AddEntityIDs(ids ...string) *CriterionCreate {
	_c.mutation.AddEntityIDs(ids...)
	return _c
}

// AddEntities adds the "entities" edges to the Entity entity.
func (_c *CriterionCreate) AddEntities(v ...*Entity) *CriterionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntityIDs(ids...)
}

// Mutation returns the CriterionMutation object of the builder.
func (_c *CriterionCreate) Mutation() *CriterionMutation {
	return _c.mutation
}

// Save creates the Criterion in the database.
func (_c *CriterionCreate) Save(ctx context.Context) (*Criterion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CriterionCreate) SaveX(ctx context.Context) *Criterion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CriterionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CriterionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CriterionCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := criterion.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Page(); !ok {
		v := criterion.DefaultPage
		_c.mutation.SetPage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := criterion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := criterion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CriterionCreate) check() error {
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "Criterion.batch_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Criterion.text"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Criterion.kind"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Criterion.category"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Criterion.confidence"`)}
	}
	if _, ok := _c.mutation.Page(); !ok {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required field "Criterion.page"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Criterion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Criterion.updated_at"`)}
	}
	if len(_c.mutation.BatchIDs()) == 0 {
		return &ValidationError{Name: "batch", err: errors.New(`ent: missing required edge "Criterion.batch"`)}
	}
	return nil
}

func (_c *CriterionCreate) sqlSave(ctx context.Context) (*Criterion, error) {
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
			return nil, fmt.Errorf("unexpected Criterion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CriterionCreate) createSpec() (*Criterion, *sqlgraph.CreateSpec) {
	var (
		_node = &Criterion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(criterion.Table, sqlgraph.NewFieldSpec(criterion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(criterion.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(criterion.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(criterion.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(criterion.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Page(); ok {
		_spec.SetField(criterion.FieldPage, field.TypeInt, value)
		_node.Page = value
	}
	if value, ok := _c.mutation.Thresholds(); ok {
		_spec.SetField(criterion.FieldThresholds, field.TypeJSON, value)
		_node.Thresholds = value
	}
	if value, ok := _c.mutation.Temporal(); ok {
		_spec.SetField(criterion.FieldTemporal, field.TypeJSON, value)
		_node.Temporal = value
	}
	if value, ok := _c.mutation.Conditions(); ok {
		_spec.SetField(criterion.FieldConditions, field.TypeJSON, value)
		_node.Conditions = value
	}
	if value, ok := _c.mutation.AssertionStatus(); ok {
		_spec.SetField(criterion.FieldAssertionStatus, field.TypeString, value)
		_node.AssertionStatus = value
	}
	if value, ok := _c.mutation.ReviewDecision(); ok {
		_spec.SetField(criterion.FieldReviewDecision, field.TypeString, value)
		_node.ReviewDecision = &value
	}
	if value, ok := _c.mutation.Modification(); ok {
		_spec.SetField(criterion.FieldModification, field.TypeJSON, value)
		_node.Modification = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(criterion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(criterion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BatchIDs(); len(nodes) > 0 {
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
		_node.BatchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CriterionCreateBulk is the builder for creating many Criterion entities in bulk.
type CriterionCreateBulk struct {
	config
	err      error
	builders []*CriterionCreate
}

// Save creates the Criterion entities in the database.
func (_c *CriterionCreateBulk) Save(ctx context.Context) ([]*Criterion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Criterion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CriterionMutation)
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
func (_c *CriterionCreateBulk) SaveX(ctx context.Context) []*Criterion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CriterionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CriterionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
