// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/entity"
	"github.com/eligius-health/eligius/pkg/models"
)

// EntityCreate is the builder for creating a Entity entity.
type EntityCreate struct {
	config
	mutation *EntityMutation
	hooks    []Hook
}

// SetCriterionID sets the "criterion_id" field.
func (_c *EntityCreate) SetCriterionID(v string) *EntityCreate {
	_c.mutation.SetCriterionID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *EntityCreate) SetText(v string) *EntityCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntityCreate) SetEntityType(v models.EntityType) *EntityCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *EntityCreate) SetContext(v string) *EntityCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *EntityCreate) SetNillableContext(v *string) *EntityCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetGroundingConfidence sets the "grounding_confidence" field.
func (_c *EntityCreate) SetGroundingConfidence(v float64) *EntityCreate {
	_c.mutation.SetGroundingConfidence(v)
	return _c
}

// SetNillableGroundingConfidence sets the "grounding_confidence" field if the given value is not nil.
func (_c *EntityCreate) SetNillableGroundingConfidence(v *float64) *EntityCreate {
	if v != nil {
		_c.SetGroundingConfidence(*v)
	}
	return _c
}

// SetGroundingMethod sets the "grounding_method" field.
func (_c *EntityCreate) SetGroundingMethod(v string) *EntityCreate {
	_c.mutation.SetGroundingMethod(v)
	return _c
}

// SetNillableGroundingMethod sets the "grounding_method" field if the given value is not nil.
func (_c *EntityCreate) SetNillableGroundingMethod(v *string) *EntityCreate {
	if v != nil {
		_c.SetGroundingMethod(*v)
	}
	return _c
}

// SetGroundingError sets the "grounding_error" field.
func (_c *EntityCreate) SetGroundingError(v string) *EntityCreate {
	_c.mutation.SetGroundingError(v)
	return _c
}

// SetNillableGroundingError sets the "grounding_error" field if the given value is not nil.
func (_c *EntityCreate) SetNillableGroundingError(v *string) *EntityCreate {
	if v != nil {
		_c.SetGroundingError(*v)
	}
	return _c
}

// SetGroundingSystem sets the "grounding_system" field.
func (_c *EntityCreate) SetGroundingSystem(v models.TerminologySystem) *EntityCreate {
	_c.mutation.SetGroundingSystem(v)
	return _c
}

// SetNillableGroundingSystem sets the "grounding_system" field if the given value is not nil.
func (_c *EntityCreate) SetNillableGroundingSystem(v *models.TerminologySystem) *EntityCreate {
	if v != nil {
		_c.SetGroundingSystem(*v)
	}
	return _c
}

// SetRxnormCode sets the "rxnorm_code" field.
func (_c *EntityCreate) SetRxnormCode(v string) *EntityCreate {
	_c.mutation.SetRxnormCode(v)
	return _c
}

// SetNillableRxnormCode sets the "rxnorm_code" field if the given value is not nil.
func (_c *EntityCreate) SetNillableRxnormCode(v *string) *EntityCreate {
	if v != nil {
		_c.SetRxnormCode(*v)
	}
	return _c
}

// SetIcd10Code sets the "icd10_code" field.
func (_c *EntityCreate) SetIcd10Code(v string) *EntityCreate {
	_c.mutation.SetIcd10Code(v)
	return _c
}

// SetNillableIcd10Code sets the "icd10_code" field if the given value is not nil.
func (_c *EntityCreate) SetNillableIcd10Code(v *string) *EntityCreate {
	if v != nil {
		_c.SetIcd10Code(*v)
	}
	return _c
}

// SetSnomedCode sets the "snomed_code" field.
func (_c *EntityCreate) SetSnomedCode(v string) *EntityCreate {
	_c.mutation.SetSnomedCode(v)
	return _c
}

// SetNillableSnomedCode sets the "snomed_code" field if the given value is not nil.
func (_c *EntityCreate) SetNillableSnomedCode(v *string) *EntityCreate {
	if v != nil {
		_c.SetSnomedCode(*v)
	}
	return _c
}

// SetLoincCode sets the "loinc_code" field.
func (_c *EntityCreate) SetLoincCode(v string) *EntityCreate {
	_c.mutation.SetLoincCode(v)
	return _c
}

// SetNillableLoincCode sets the "loinc_code" field if the given value is not nil.
func (_c *EntityCreate) SetNillableLoincCode(v *string) *EntityCreate {
	if v != nil {
		_c.SetLoincCode(*v)
	}
	return _c
}

// SetHpoCode sets the "hpo_code" field.
func (_c *EntityCreate) SetHpoCode(v string) *EntityCreate {
	_c.mutation.SetHpoCode(v)
	return _c
}

// SetNillableHpoCode sets the "hpo_code" field if the given value is not nil.
func (_c *EntityCreate) SetNillableHpoCode(v *string) *EntityCreate {
	if v != nil {
		_c.SetHpoCode(*v)
	}
	return _c
}

// SetUmlsCui sets the "umls_cui" field.
func (_c *EntityCreate) SetUmlsCui(v string) *EntityCreate {
	_c.mutation.SetUmlsCui(v)
	return _c
}

// SetNillableUmlsCui sets the "umls_cui" field if the given value is not nil.
func (_c *EntityCreate) SetNillableUmlsCui(v *string) *EntityCreate {
	if v != nil {
		_c.SetUmlsCui(*v)
	}
	return _c
}

// SetPreferredTerm sets the "preferred_term" field.
func (_c *EntityCreate) SetPreferredTerm(v string) *EntityCreate {
	_c.mutation.SetPreferredTerm(v)
	return _c
}

// SetNillablePreferredTerm sets the "preferred_term" field if the given value is not nil.
func (_c *EntityCreate) SetNillablePreferredTerm(v *string) *EntityCreate {
	if v != nil {
		_c.SetPreferredTerm(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *EntityCreate) SetNeedsReview(v bool) *EntityCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *EntityCreate) SetNillableNeedsReview(v *bool) *EntityCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityCreate) SetCreatedAt(v time.Time) *EntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityCreate) SetNillableCreatedAt(v *time.Time) *EntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityCreate) SetID(v string) *EntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCriterion sets the "criterion" edge to the Criterion entity.
func (_c *EntityCreate) SetCriterion(v *Criterion) *EntityCreate {
	return _c.SetCriterionID(v.ID)
}

// Mutation returns the EntityMutation object of the builder.
func (_c *EntityCreate) Mutation() *EntityMutation {
	return _c.mutation
}

// Save creates the Entity in the database.
func (_c *EntityCreate) Save(ctx context.Context) (*Entity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityCreate) SaveX(ctx context.Context) *Entity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityCreate) defaults() {
	if _, ok := _c.mutation.GroundingConfidence(); !ok {
		v := entity.DefaultGroundingConfidence
		_c.mutation.SetGroundingConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := entity.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityCreate) check() error {
	if _, ok := _c.mutation.CriterionID(); !ok {
		return &ValidationError{Name: "criterion_id", err: errors.New(`ent: missing required field "Entity.criterion_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Entity.text"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "Entity.entity_type"`)}
	}
	if _, ok := _c.mutation.GroundingConfidence(); !ok {
		return &ValidationError{Name: "grounding_confidence", err: errors.New(`ent: missing required field "Entity.grounding_confidence"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Entity.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Entity.created_at"`)}
	}
	if len(_c.mutation.CriterionIDs()) == 0 {
		return &ValidationError{Name: "criterion", err: errors.New(`ent: missing required edge "Entity.criterion"`)}
	}
	return nil
}

func (_c *EntityCreate) sqlSave(ctx context.Context) (*Entity, error) {
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
			return nil, fmt.Errorf("unexpected Entity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityCreate) createSpec() (*Entity, *sqlgraph.CreateSpec) {
	var (
		_node = &Entity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entity.Table, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(entity.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entity.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(entity.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.GroundingConfidence(); ok {
		_spec.SetField(entity.FieldGroundingConfidence, field.TypeFloat64, value)
		_node.GroundingConfidence = value
	}
	if value, ok := _c.mutation.GroundingMethod(); ok {
		_spec.SetField(entity.FieldGroundingMethod, field.TypeString, value)
		_node.GroundingMethod = value
	}
	if value, ok := _c.mutation.GroundingError(); ok {
		_spec.SetField(entity.FieldGroundingError, field.TypeString, value)
		_node.GroundingError = &value
	}
	if value, ok := _c.mutation.GroundingSystem(); ok {
		_spec.SetField(entity.FieldGroundingSystem, field.TypeString, value)
		_node.GroundingSystem = &value
	}
	if value, ok := _c.mutation.RxnormCode(); ok {
		_spec.SetField(entity.FieldRxnormCode, field.TypeString, value)
		_node.RxnormCode = &value
	}
	if value, ok := _c.mutation.Icd10Code(); ok {
		_spec.SetField(entity.FieldIcd10Code, field.TypeString, value)
		_node.Icd10Code = &value
	}
	if value, ok := _c.mutation.SnomedCode(); ok {
		_spec.SetField(entity.FieldSnomedCode, field.TypeString, value)
		_node.SnomedCode = &value
	}
	if value, ok := _c.mutation.LoincCode(); ok {
		_spec.SetField(entity.FieldLoincCode, field.TypeString, value)
		_node.LoincCode = &value
	}
	if value, ok := _c.mutation.HpoCode(); ok {
		_spec.SetField(entity.FieldHpoCode, field.TypeString, value)
		_node.HpoCode = &value
	}
	if value, ok := _c.mutation.UmlsCui(); ok {
		_spec.SetField(entity.FieldUmlsCui, field.TypeString, value)
		_node.UmlsCui = &value
	}
	if value, ok := _c.mutation.PreferredTerm(); ok {
		_spec.SetField(entity.FieldPreferredTerm, field.TypeString, value)
		_node.PreferredTerm = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(entity.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CriterionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.CriterionTable,
			Columns: []string{entity.CriterionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criterion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CriterionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EntityCreateBulk is the builder for creating many Entity entities in bulk.
type EntityCreateBulk struct {
	config
	err      error
	builders []*EntityCreate
}

// Save creates the Entity entities in the database.
func (_c *EntityCreateBulk) Save(ctx context.Context) ([]*Entity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Entity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityMutation)
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
func (_c *EntityCreateBulk) SaveX(ctx context.Context) []*Entity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
