// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/entity"
	"github.com/eligius-health/eligius/ent/predicate"
	"github.com/eligius-health/eligius/pkg/models"
)

// EntityUpdate is the builder for updating Entity entities.
type EntityUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMutation
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdate) Where(ps ...predicate.Entity) *EntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCriterionID sets the "criterion_id" field.
func (_u *EntityUpdate) SetCriterionID(v string) *EntityUpdate {
	_u.mutation.SetCriterionID(v)
	return _u
}

// SetNillableCriterionID sets the "criterion_id" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableCriterionID(v *string) *EntityUpdate {
	if v != nil {
		_u.SetCriterionID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *EntityUpdate) SetText(v string) *EntityUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableText(v *string) *EntityUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntityUpdate) SetEntityType(v models.EntityType) *EntityUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableEntityType(v *models.EntityType) *EntityUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *EntityUpdate) SetContext(v string) *EntityUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableContext(v *string) *EntityUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *EntityUpdate) ClearContext() *EntityUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetGroundingConfidence sets the "grounding_confidence" field.
func (_u *EntityUpdate) SetGroundingConfidence(v float64) *EntityUpdate {
	_u.mutation.ResetGroundingConfidence()
	_u.mutation.SetGroundingConfidence(v)
	return _u
}

// SetNillableGroundingConfidence sets the "grounding_confidence" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableGroundingConfidence(v *float64) *EntityUpdate {
	if v != nil {
		_u.SetGroundingConfidence(*v)
	}
	return _u
}

// AddGroundingConfidence adds value to the "grounding_confidence" field.
func (_u *EntityUpdate) AddGroundingConfidence(v float64) *EntityUpdate {
	_u.mutation.AddGroundingConfidence(v)
	return _u
}

// SetGroundingMethod sets the "grounding_method" field.
func (_u *EntityUpdate) SetGroundingMethod(v string) *EntityUpdate {
	_u.mutation.SetGroundingMethod(v)
	return _u
}

// SetNillableGroundingMethod sets the "grounding_method" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableGroundingMethod(v *string) *EntityUpdate {
	if v != nil {
		_u.SetGroundingMethod(*v)
	}
	return _u
}

// ClearGroundingMethod clears the value of the "grounding_method" field.
func (_u *EntityUpdate) ClearGroundingMethod() *EntityUpdate {
	_u.mutation.ClearGroundingMethod()
	return _u
}

// SetGroundingError sets the "grounding_error" field.
func (_u *EntityUpdate) SetGroundingError(v string) *EntityUpdate {
	_u.mutation.SetGroundingError(v)
	return _u
}

// SetNillableGroundingError sets the "grounding_error" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableGroundingError(v *string) *EntityUpdate {
	if v != nil {
		_u.SetGroundingError(*v)
	}
	return _u
}

// ClearGroundingError clears the value of the "grounding_error" field.
func (_u *EntityUpdate) ClearGroundingError() *EntityUpdate {
	_u.mutation.ClearGroundingError()
	return _u
}

// SetGroundingSystem sets the "grounding_system" field.
func (_u *EntityUpdate) SetGroundingSystem(v models.TerminologySystem) *EntityUpdate {
	_u.mutation.SetGroundingSystem(v)
	return _u
}

// SetNillableGroundingSystem sets the "grounding_system" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableGroundingSystem(v *models.TerminologySystem) *EntityUpdate {
	if v != nil {
		_u.SetGroundingSystem(*v)
	}
	return _u
}

// ClearGroundingSystem clears the value of the "grounding_system" field.
func (_u *EntityUpdate) ClearGroundingSystem() *EntityUpdate {
	_u.mutation.ClearGroundingSystem()
	return _u
}

// SetRxnormCode sets the "rxnorm_code" field.
func (_u *EntityUpdate) SetRxnormCode(v string) *EntityUpdate {
	_u.mutation.SetRxnormCode(v)
	return _u
}

// SetNillableRxnormCode sets the "rxnorm_code" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableRxnormCode(v *string) *EntityUpdate {
	if v != nil {
		_u.SetRxnormCode(*v)
	}
	return _u
}

// ClearRxnormCode clears the value of the "rxnorm_code" field.
func (_u *EntityUpdate) ClearRxnormCode() *EntityUpdate {
	_u.mutation.ClearRxnormCode()
	return _u
}

// SetIcd10Code sets the "icd10_code" field.
func (_u *EntityUpdate) SetIcd10Code(v string) *EntityUpdate {
	_u.mutation.SetIcd10Code(v)
	return _u
}

// SetNillableIcd10Code sets the "icd10_code" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableIcd10Code(v *string) *EntityUpdate {
	if v != nil {
		_u.SetIcd10Code(*v)
	}
	return _u
}

// ClearIcd10Code clears the value of the "icd10_code" field.
func (_u *EntityUpdate) ClearIcd10Code() *EntityUpdate {
	_u.mutation.ClearIcd10Code()
	return _u
}

// SetSnomedCode sets the "snomed_code" field.
func (_u *EntityUpdate) SetSnomedCode(v string) *EntityUpdate {
	_u.mutation.SetSnomedCode(v)
	return _u
}

// SetNillableSnomedCode sets the "snomed_code" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableSnomedCode(v *string) *EntityUpdate {
	if v != nil {
		_u.SetSnomedCode(*v)
	}
	return _u
}

// ClearSnomedCode clears the value of the "snomed_code" field.
func (_u *EntityUpdate) ClearSnomedCode() *EntityUpdate {
	_u.mutation.ClearSnomedCode()
	return _u
}

// SetLoincCode sets the "loinc_code" field.
func (_u *EntityUpdate) SetLoincCode(v string) *EntityUpdate {
	_u.mutation.SetLoincCode(v)
	return _u
}

// SetNillableLoincCode sets the "loinc_code" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableLoincCode(v *string) *EntityUpdate {
	if v != nil {
		_u.SetLoincCode(*v)
	}
	return _u
}

// ClearLoincCode clears the value of the "loinc_code" field.
func (_u *EntityUpdate) ClearLoincCode() *EntityUpdate {
	_u.mutation.ClearLoincCode()
	return _u
}

// SetHpoCode sets the "hpo_code" field.
func (_u *EntityUpdate) SetHpoCode(v string) *EntityUpdate {
	_u.mutation.SetHpoCode(v)
	return _u
}

// SetNillableHpoCode sets the "hpo_code" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableHpoCode(v *string) *EntityUpdate {
	if v != nil {
		_u.SetHpoCode(*v)
	}
	return _u
}

// ClearHpoCode clears the value of the "hpo_code" field.
func (_u *EntityUpdate) ClearHpoCode() *EntityUpdate {
	_u.mutation.ClearHpoCode()
	return _u
}

// SetUmlsCui sets the "umls_cui" field.
func (_u *EntityUpdate) SetUmlsCui(v string) *EntityUpdate {
	_u.mutation.SetUmlsCui(v)
	return _u
}

// SetNillableUmlsCui sets the "umls_cui" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableUmlsCui(v *string) *EntityUpdate {
	if v != nil {
		_u.SetUmlsCui(*v)
	}
	return _u
}

// ClearUmlsCui clears the value of the "umls_cui" field.
func (_u *EntityUpdate) ClearUmlsCui() *EntityUpdate {
	_u.mutation.ClearUmlsCui()
	return _u
}

// SetPreferredTerm sets the "preferred_term" field.
func (_u *EntityUpdate) SetPreferredTerm(v string) *EntityUpdate {
	_u.mutation.SetPreferredTerm(v)
	return _u
}

// SetNillablePreferredTerm sets the "preferred_term" field if the given value is not nil.
func (_u *EntityUpdate) SetNillablePreferredTerm(v *string) *EntityUpdate {
	if v != nil {
		_u.SetPreferredTerm(*v)
	}
	return _u
}

// ClearPreferredTerm clears the value of the "preferred_term" field.
func (_u *EntityUpdate) ClearPreferredTerm() *EntityUpdate {
	_u.mutation.ClearPreferredTerm()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *EntityUpdate) SetNeedsReview(v bool) *EntityUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableNeedsReview(v *bool) *EntityUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCriterion sets the "criterion" edge to the Criterion entity.
func (_u *EntityUpdate) SetCriterion(v *Criterion) *EntityUpdate {
	return _u.SetCriterionID(v.ID)
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdate) Mutation() *EntityMutation {
	return _u.mutation
}

// ClearCriterion clears the "criterion" edge to the Criterion entity.
func (_u *EntityUpdate) ClearCriterion() *EntityUpdate {
	_u.mutation.ClearCriterion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdate) check() error {
	if _u.mutation.CriterionCleared() && len(_u.mutation.CriterionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Entity.criterion"`)
	}
	return nil
}

func (_u *EntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(entity.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entity.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(entity.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(entity.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.GroundingConfidence(); ok {
		_spec.SetField(entity.FieldGroundingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGroundingConfidence(); ok {
		_spec.AddField(entity.FieldGroundingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GroundingMethod(); ok {
		_spec.SetField(entity.FieldGroundingMethod, field.TypeString, value)
	}
	if _u.mutation.GroundingMethodCleared() {
		_spec.ClearField(entity.FieldGroundingMethod, field.TypeString)
	}
	if value, ok := _u.mutation.GroundingError(); ok {
		_spec.SetField(entity.FieldGroundingError, field.TypeString, value)
	}
	if _u.mutation.GroundingErrorCleared() {
		_spec.ClearField(entity.FieldGroundingError, field.TypeString)
	}
	if value, ok := _u.mutation.GroundingSystem(); ok {
		_spec.SetField(entity.FieldGroundingSystem, field.TypeString, value)
	}
	if _u.mutation.GroundingSystemCleared() {
		_spec.ClearField(entity.FieldGroundingSystem, field.TypeString)
	}
	if value, ok := _u.mutation.RxnormCode(); ok {
		_spec.SetField(entity.FieldRxnormCode, field.TypeString, value)
	}
	if _u.mutation.RxnormCodeCleared() {
		_spec.ClearField(entity.FieldRxnormCode, field.TypeString)
	}
	if value, ok := _u.mutation.Icd10Code(); ok {
		_spec.SetField(entity.FieldIcd10Code, field.TypeString, value)
	}
	if _u.mutation.Icd10CodeCleared() {
		_spec.ClearField(entity.FieldIcd10Code, field.TypeString)
	}
	if value, ok := _u.mutation.SnomedCode(); ok {
		_spec.SetField(entity.FieldSnomedCode, field.TypeString, value)
	}
	if _u.mutation.SnomedCodeCleared() {
		_spec.ClearField(entity.FieldSnomedCode, field.TypeString)
	}
	if value, ok := _u.mutation.LoincCode(); ok {
		_spec.SetField(entity.FieldLoincCode, field.TypeString, value)
	}
	if _u.mutation.LoincCodeCleared() {
		_spec.ClearField(entity.FieldLoincCode, field.TypeString)
	}
	if value, ok := _u.mutation.HpoCode(); ok {
		_spec.SetField(entity.FieldHpoCode, field.TypeString, value)
	}
	if _u.mutation.HpoCodeCleared() {
		_spec.ClearField(entity.FieldHpoCode, field.TypeString)
	}
	if value, ok := _u.mutation.UmlsCui(); ok {
		_spec.SetField(entity.FieldUmlsCui, field.TypeString, value)
	}
	if _u.mutation.UmlsCuiCleared() {
		_spec.ClearField(entity.FieldUmlsCui, field.TypeString)
	}
	if value, ok := _u.mutation.PreferredTerm(); ok {
		_spec.SetField(entity.FieldPreferredTerm, field.TypeString, value)
	}
	if _u.mutation.PreferredTermCleared() {
		_spec.ClearField(entity.FieldPreferredTerm, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(entity.FieldNeedsReview, field.TypeBool, value)
	}
	if _u.mutation.CriterionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CriterionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityUpdateOne is the builder for updating a single Entity entity.
type EntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMutation
}

// SetCriterionID sets the "criterion_id" field.
func (_u *EntityUpdateOne) SetCriterionID(v string) *EntityUpdateOne {
	_u.mutation.SetCriterionID(v)
	return _u
}

// SetNillableCriterionID sets the "criterion_id" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableCriterionID(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetCriterionID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *EntityUpdateOne) SetText(v string) *EntityUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableText(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntityUpdateOne) SetEntityType(v models.EntityType) *EntityUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableEntityType(v *models.EntityType) *EntityUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *EntityUpdateOne) SetContext(v string) *EntityUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableContext(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *EntityUpdateOne) ClearContext() *EntityUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetGroundingConfidence sets the "grounding_confidence" field.
func (_u *EntityUpdateOne) SetGroundingConfidence(v float64) *EntityUpdateOne {
	_u.mutation.ResetGroundingConfidence()
	_u.mutation.SetGroundingConfidence(v)
	return _u
}

// SetNillableGroundingConfidence sets the "grounding_confidence" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableGroundingConfidence(v *float64) *EntityUpdateOne {
	if v != nil {
		_u.SetGroundingConfidence(*v)
	}
	return _u
}

// AddGroundingConfidence adds value to the "grounding_confidence" field.
func (_u *EntityUpdateOne) AddGroundingConfidence(v float64) *EntityUpdateOne {
	_u.mutation.AddGroundingConfidence(v)
	return _u
}

// SetGroundingMethod sets the "grounding_method" field.
func (_u *EntityUpdateOne) SetGroundingMethod(v string) *EntityUpdateOne {
	_u.mutation.SetGroundingMethod(v)
	return _u
}

// SetNillableGroundingMethod sets the "grounding_method" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableGroundingMethod(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetGroundingMethod(*v)
	}
	return _u
}

// ClearGroundingMethod clears the value of the "grounding_method" field.
func (_u *EntityUpdateOne) ClearGroundingMethod() *EntityUpdateOne {
	_u.mutation.ClearGroundingMethod()
	return _u
}

// SetGroundingError sets the "grounding_error" field.
func (_u *EntityUpdateOne) SetGroundingError(v string) *EntityUpdateOne {
	_u.mutation.SetGroundingError(v)
	return _u
}

// SetNillableGroundingError sets the "grounding_error" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableGroundingError(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetGroundingError(*v)
	}
	return _u
}

// ClearGroundingError clears the value of the "grounding_error" field.
func (_u *EntityUpdateOne) ClearGroundingError() *EntityUpdateOne {
	_u.mutation.ClearGroundingError()
	return _u
}

// SetGroundingSystem sets the "grounding_system" field.
func (_u *EntityUpdateOne) SetGroundingSystem(v models.TerminologySystem) *EntityUpdateOne {
	_u.mutation.SetGroundingSystem(v)
	return _u
}

// SetNillableGroundingSystem sets the "grounding_system" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableGroundingSystem(v *models.TerminologySystem) *EntityUpdateOne {
	if v != nil {
		_u.SetGroundingSystem(*v)
	}
	return _u
}

// ClearGroundingSystem clears the value of the "grounding_system" field.
func (_u *EntityUpdateOne) ClearGroundingSystem() *EntityUpdateOne {
	_u.mutation.ClearGroundingSystem()
	return _u
}

// SetRxnormCode sets the "rxnorm_code" field.
func (_u *EntityUpdateOne) SetRxnormCode(v string) *EntityUpdateOne {
	_u.mutation.SetRxnormCode(v)
	return _u
}

// SetNillableRxnormCode sets the "rxnorm_code" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableRxnormCode(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetRxnormCode(*v)
	}
	return _u
}

// ClearRxnormCode clears the value of the "rxnorm_code" field.
func (_u *EntityUpdateOne) ClearRxnormCode() *EntityUpdateOne {
	_u.mutation.ClearRxnormCode()
	return _u
}

// SetIcd10Code sets the "icd10_code" field.
func (_u *EntityUpdateOne) SetIcd10Code(v string) *EntityUpdateOne {
	_u.mutation.SetIcd10Code(v)
	return _u
}

// SetNillableIcd10Code sets the "icd10_code" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableIcd10Code(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetIcd10Code(*v)
	}
	return _u
}

// ClearIcd10Code clears the value of the "icd10_code" field.
func (_u *EntityUpdateOne) ClearIcd10Code() *EntityUpdateOne {
	_u.mutation.ClearIcd10Code()
	return _u
}

// SetSnomedCode sets the "snomed_code" field.
func (_u *EntityUpdateOne) SetSnomedCode(v string) *EntityUpdateOne {
	_u.mutation.SetSnomedCode(v)
	return _u
}

// SetNillableSnomedCode sets the "snomed_code" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableSnomedCode(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetSnomedCode(*v)
	}
	return _u
}

// ClearSnomedCode clears the value of the "snomed_code" field.
func (_u *EntityUpdateOne) ClearSnomedCode() *EntityUpdateOne {
	_u.mutation.ClearSnomedCode()
	return _u
}

// SetLoincCode sets the "loinc_code" field.
func (_u *EntityUpdateOne) SetLoincCode(v string) *EntityUpdateOne {
	_u.mutation.SetLoincCode(v)
	return _u
}

// SetNillableLoincCode sets the "loinc_code" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableLoincCode(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetLoincCode(*v)
	}
	return _u
}

// ClearLoincCode clears the value of the "loinc_code" field.
func (_u *EntityUpdateOne) ClearLoincCode() *EntityUpdateOne {
	_u.mutation.ClearLoincCode()
	return _u
}

// SetHpoCode sets the "hpo_code" field.
func (_u *EntityUpdateOne) SetHpoCode(v string) *EntityUpdateOne {
	_u.mutation.SetHpoCode(v)
	return _u
}

// SetNillableHpoCode sets the "hpo_code" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableHpoCode(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetHpoCode(*v)
	}
	return _u
}

// ClearHpoCode clears the value of the "hpo_code" field.
func (_u *EntityUpdateOne) ClearHpoCode() *EntityUpdateOne {
	_u.mutation.ClearHpoCode()
	return _u
}

// SetUmlsCui sets the "umls_cui" field.
func (_u *EntityUpdateOne) SetUmlsCui(v string) *EntityUpdateOne {
	_u.mutation.SetUmlsCui(v)
	return _u
}

// SetNillableUmlsCui sets the "umls_cui" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableUmlsCui(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetUmlsCui(*v)
	}
	return _u
}

// ClearUmlsCui clears the value of the "umls_cui" field.
func (_u *EntityUpdateOne) ClearUmlsCui() *EntityUpdateOne {
	_u.mutation.ClearUmlsCui()
	return _u
}

// SetPreferredTerm sets the "preferred_term" field.
func (_u *EntityUpdateOne) SetPreferredTerm(v string) *EntityUpdateOne {
	_u.mutation.SetPreferredTerm(v)
	return _u
}

// SetNillablePreferredTerm sets the "preferred_term" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillablePreferredTerm(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetPreferredTerm(*v)
	}
	return _u
}

// ClearPreferredTerm clears the value of the "preferred_term" field.
func (_u *EntityUpdateOne) ClearPreferredTerm() *EntityUpdateOne {
	_u.mutation.ClearPreferredTerm()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *EntityUpdateOne) SetNeedsReview(v bool) *EntityUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableNeedsReview(v *bool) *EntityUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCriterion sets the "criterion" edge to the Criterion entity.
func (_u *EntityUpdateOne) SetCriterion(v *Criterion) *EntityUpdateOne {
	return _u.SetCriterionID(v.ID)
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdateOne) Mutation() *EntityMutation {
	return _u.mutation
}

// ClearCriterion clears the "criterion" edge to the Criterion entity.
func (_u *EntityUpdateOne) ClearCriterion() *EntityUpdateOne {
	_u.mutation.ClearCriterion()
	return _u
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdateOne) Where(ps ...predicate.Entity) *EntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityUpdateOne) Select(field string, fields ...string) *EntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entity entity.
func (_u *EntityUpdateOne) Save(ctx context.Context) (*Entity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdateOne) SaveX(ctx context.Context) *Entity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdateOne) check() error {
	if _u.mutation.CriterionCleared() && len(_u.mutation.CriterionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Entity.criterion"`)
	}
	return nil
}

func (_u *EntityUpdateOne) sqlSave(ctx context.Context) (_node *Entity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entity.FieldID)
		for _, f := range fields {
			if !entity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entity.FieldID {
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
		_spec.SetField(entity.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entity.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(entity.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(entity.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.GroundingConfidence(); ok {
		_spec.SetField(entity.FieldGroundingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGroundingConfidence(); ok {
		_spec.AddField(entity.FieldGroundingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GroundingMethod(); ok {
		_spec.SetField(entity.FieldGroundingMethod, field.TypeString, value)
	}
	if _u.mutation.GroundingMethodCleared() {
		_spec.ClearField(entity.FieldGroundingMethod, field.TypeString)
	}
	if value, ok := _u.mutation.GroundingError(); ok {
		_spec.SetField(entity.FieldGroundingError, field.TypeString, value)
	}
	if _u.mutation.GroundingErrorCleared() {
		_spec.ClearField(entity.FieldGroundingError, field.TypeString)
	}
	if value, ok := _u.mutation.GroundingSystem(); ok {
		_spec.SetField(entity.FieldGroundingSystem, field.TypeString, value)
	}
	if _u.mutation.GroundingSystemCleared() {
		_spec.ClearField(entity.FieldGroundingSystem, field.TypeString)
	}
	if value, ok := _u.mutation.RxnormCode(); ok {
		_spec.SetField(entity.FieldRxnormCode, field.TypeString, value)
	}
	if _u.mutation.RxnormCodeCleared() {
		_spec.ClearField(entity.FieldRxnormCode, field.TypeString)
	}
	if value, ok := _u.mutation.Icd10Code(); ok {
		_spec.SetField(entity.FieldIcd10Code, field.TypeString, value)
	}
	if _u.mutation.Icd10CodeCleared() {
		_spec.ClearField(entity.FieldIcd10Code, field.TypeString)
	}
	if value, ok := _u.mutation.SnomedCode(); ok {
		_spec.SetField(entity.FieldSnomedCode, field.TypeString, value)
	}
	if _u.mutation.SnomedCodeCleared() {
		_spec.ClearField(entity.FieldSnomedCode, field.TypeString)
	}
	if value, ok := _u.mutation.LoincCode(); ok {
		_spec.SetField(entity.FieldLoincCode, field.TypeString, value)
	}
	if _u.mutation.LoincCodeCleared() {
		_spec.ClearField(entity.FieldLoincCode, field.TypeString)
	}
	if value, ok := _u.mutation.HpoCode(); ok {
		_spec.SetField(entity.FieldHpoCode, field.TypeString, value)
	}
	if _u.mutation.HpoCodeCleared() {
		_spec.ClearField(entity.FieldHpoCode, field.TypeString)
	}
	if value, ok := _u.mutation.UmlsCui(); ok {
		_spec.SetField(entity.FieldUmlsCui, field.TypeString, value)
	}
	if _u.mutation.UmlsCuiCleared() {
		_spec.ClearField(entity.FieldUmlsCui, field.TypeString)
	}
	if value, ok := _u.mutation.PreferredTerm(); ok {
		_spec.SetField(entity.FieldPreferredTerm, field.TypeString, value)
	}
	if _u.mutation.PreferredTermCleared() {
		_spec.ClearField(entity.FieldPreferredTerm, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(entity.FieldNeedsReview, field.TypeBool, value)
	}
	if _u.mutation.CriterionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CriterionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Entity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
