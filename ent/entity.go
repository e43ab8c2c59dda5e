// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/entity"
	"github.com/eligius-health/eligius/pkg/models"
)

// Entity is the model entity for the Entity schema.
type Entity struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CriterionID holds the value of the "criterion_id" field.
	CriterionID string `json:"criterion_id,omitempty"`
	// Literal span text from the criterion
	Text string `json:"text,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType models.EntityType `json:"entity_type,omitempty"`
	// Context window around the span
	Context string `json:"context,omitempty"`
	// GroundingConfidence holds the value of the "grounding_confidence" field.
	GroundingConfidence float64 `json:"grounding_confidence,omitempty"`
	// GroundingMethod holds the value of the "grounding_method" field.
	GroundingMethod string `json:"grounding_method,omitempty"`
	// Set only on total grounding failure
	GroundingError *string `json:"grounding_error,omitempty"`
	// GroundingSystem holds the value of the "grounding_system" field.
	GroundingSystem *models.TerminologySystem `json:"grounding_system,omitempty"`
	// RxnormCode holds the value of the "rxnorm_code" field.
	RxnormCode *string `json:"rxnorm_code,omitempty"`
	// Icd10Code holds the value of the "icd10_code" field.
	Icd10Code *string `json:"icd10_code,omitempty"`
	// SnomedCode holds the value of the "snomed_code" field.
	SnomedCode *string `json:"snomed_code,omitempty"`
	// LoincCode holds the value of the "loinc_code" field.
	LoincCode *string `json:"loinc_code,omitempty"`
	// HpoCode holds the value of the "hpo_code" field.
	HpoCode *string `json:"hpo_code,omitempty"`
	// UmlsCui holds the value of the "umls_cui" field.
	UmlsCui *string `json:"umls_cui,omitempty"`
	// PreferredTerm holds the value of the "preferred_term" field.
	PreferredTerm *string `json:"preferred_term,omitempty"`
	// Best-candidate confidence below the reviewer floor
	NeedsReview bool `json:"needs_review,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityQuery when eager-loading is set.
	Edges        EntityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityEdges holds the relations/edges for other nodes in the graph.
type EntityEdges struct {
	// Criterion holds the value of the criterion edge.
	Criterion *Criterion `json:"criterion,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CriterionOrErr returns the Criterion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityEdges) CriterionOrErr() (*Criterion, error) {
	if e.Criterion != nil {
		return e.Criterion, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: criterion.Label}
	}
	return nil, &NotLoadedError{edge: "criterion"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Entity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entity.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case entity.FieldGroundingConfidence:
			values[i] = new(sql.NullFloat64)
		case entity.FieldID, entity.FieldCriterionID, entity.FieldText, entity.FieldEntityType, entity.FieldContext, entity.FieldGroundingMethod, entity.FieldGroundingError, entity.FieldGroundingSystem, entity.FieldRxnormCode, entity.FieldIcd10Code, entity.FieldSnomedCode, entity.FieldLoincCode, entity.FieldHpoCode, entity.FieldUmlsCui, entity.FieldPreferredTerm:
			values[i] = new(sql.NullString)
		case entity.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Entity fields.
func (_m *Entity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entity.FieldCriterionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field criterion_id", values[i])
			} else if value.Valid {
				_m.CriterionID = value.String
			}
		case entity.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case entity.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = models.EntityType(value.String)
			}
		case entity.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case entity.FieldGroundingConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field grounding_confidence", values[i])
			} else if value.Valid {
				_m.GroundingConfidence = value.Float64
			}
		case entity.FieldGroundingMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grounding_method", values[i])
			} else if value.Valid {
				_m.GroundingMethod = value.String
			}
		case entity.FieldGroundingError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grounding_error", values[i])
			} else if value.Valid {
				_m.GroundingError = new(string)
				*_m.GroundingError = value.String
			}
		case entity.FieldGroundingSystem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grounding_system", values[i])
			} else if value.Valid {
				_m.GroundingSystem = new(models.TerminologySystem)
				*_m.GroundingSystem = models.TerminologySystem(value.String)
			}
		case entity.FieldRxnormCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rxnorm_code", values[i])
			} else if value.Valid {
				_m.RxnormCode = new(string)
				*_m.RxnormCode = value.String
			}
		case entity.FieldIcd10Code:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field icd10_code", values[i])
			} else if value.Valid {
				_m.Icd10Code = new(string)
				*_m.Icd10Code = value.String
			}
		case entity.FieldSnomedCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snomed_code", values[i])
			} else if value.Valid {
				_m.SnomedCode = new(string)
				*_m.SnomedCode = value.String
			}
		case entity.FieldLoincCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loinc_code", values[i])
			} else if value.Valid {
				_m.LoincCode = new(string)
				*_m.LoincCode = value.String
			}
		case entity.FieldHpoCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hpo_code", values[i])
			} else if value.Valid {
				_m.HpoCode = new(string)
				*_m.HpoCode = value.String
			}
		case entity.FieldUmlsCui:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field umls_cui", values[i])
			} else if value.Valid {
				_m.UmlsCui = new(string)
				*_m.UmlsCui = value.String
			}
		case entity.FieldPreferredTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_term", values[i])
			} else if value.Valid {
				_m.PreferredTerm = new(string)
				*_m.PreferredTerm = value.String
			}
		case entity.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case entity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Entity.
// This includes values selected through modifiers, order, etc.
func (_m *Entity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCriterion queries the "criterion" edge of the Entity entity.
func (_m *Entity) QueryCriterion() *CriterionQuery {
	return NewEntityClient(_m.config).QueryCriterion(_m)
}

// Update returns a builder for updating this Entity.
// Note that you need to call Entity.Unwrap() before calling this method if this Entity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Entity) Update() *EntityUpdateOne {
	return NewEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Entity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Entity) Unwrap() *Entity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Entity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Entity) String() string {
	var builder strings.Builder
	builder.WriteString("Entity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("criterion_id=")
	builder.WriteString(_m.CriterionID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityType))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("grounding_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroundingConfidence))
	builder.WriteString(", ")
	builder.WriteString("grounding_method=")
	builder.WriteString(_m.GroundingMethod)
	builder.WriteString(", ")
	if v := _m.GroundingError; v != nil {
		builder.WriteString("grounding_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GroundingSystem; v != nil {
		builder.WriteString("grounding_system=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RxnormCode; v != nil {
		builder.WriteString("rxnorm_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Icd10Code; v != nil {
		builder.WriteString("icd10_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SnomedCode; v != nil {
		builder.WriteString("snomed_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LoincCode; v != nil {
		builder.WriteString("loinc_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HpoCode; v != nil {
		builder.WriteString("hpo_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UmlsCui; v != nil {
		builder.WriteString("umls_cui=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PreferredTerm; v != nil {
		builder.WriteString("preferred_term=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Entities is a parsable slice of Entity.
type Entities []*Entity
