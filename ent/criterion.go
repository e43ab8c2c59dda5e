// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/pkg/models"
)

// Criterion is the model entity for the Criterion schema.
type Criterion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID string `json:"batch_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// inclusion or exclusion
	Kind models.CriterionKind `json:"kind,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Page holds the value of the "page" field.
	Page int `json:"page,omitempty"`
	// Thresholds holds the value of the "thresholds" field.
	Thresholds []models.NumericThreshold `json:"thresholds,omitempty"`
	// Temporal holds the value of the "temporal" field.
	Temporal *models.TemporalConstraint `json:"temporal,omitempty"`
	// Conditions holds the value of the "conditions" field.
	Conditions []string `json:"conditions,omitempty"`
	// AssertionStatus holds the value of the "assertion_status" field.
	AssertionStatus models.AssertionStatus `json:"assertion_status,omitempty"`
	// Null until a reviewer (or inheritance) decides
	ReviewDecision *models.ReviewDecision `json:"review_decision,omitempty"`
	// Reviewer's modification payload when decision is 'modified'
	Modification map[string]interface{} `json:"modification,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CriterionQuery when eager-loading is set.
	Edges        CriterionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CriterionEdges holds the relations/edges for other nodes in the graph.
type CriterionEdges struct {
	// Batch holds the value of the batch edge.
	Batch *CriteriaBatch `json:"batch,omitempty"`
	// Entities holds the value of the entities edge.
	Entities []*Entity `json:"entities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BatchOrErr returns the Batch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CriterionEdges) BatchOrErr() (*CriteriaBatch, error) {
	if e.Batch != nil {
		return e.Batch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: criteriabatch.Label}
	}
	return nil, &NotLoadedError{edge: "batch"}
}

// EntitiesOrErr returns the Entities value or an error if the edge
// was not loaded in eager-loading.
func (e CriterionEdges) EntitiesOrErr() ([]*Entity, error) {
	if e.loadedTypes[1] {
		return e.Entities, nil
	}
	return nil, &NotLoadedError{edge: "entities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Criterion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case criterion.FieldThresholds, criterion.FieldTemporal, criterion.FieldConditions, criterion.FieldModification:
			values[i] = new([]byte)
		case criterion.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case criterion.FieldPage:
			values[i] = new(sql.NullInt64)
		case criterion.FieldID, criterion.FieldBatchID, criterion.FieldText, criterion.FieldKind, criterion.FieldCategory, criterion.FieldAssertionStatus, criterion.FieldReviewDecision:
			values[i] = new(sql.NullString)
		case criterion.FieldCreatedAt, criterion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Criterion fields.
func (_m *Criterion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case criterion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case criterion.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case criterion.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case criterion.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = models.CriterionKind(value.String)
			}
		case criterion.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case criterion.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case criterion.FieldPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page", values[i])
			} else if value.Valid {
				_m.Page = int(value.Int64)
			}
		case criterion.FieldThresholds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field thresholds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Thresholds); err != nil {
					return fmt.Errorf("unmarshal field thresholds: %w", err)
				}
			}
		case criterion.FieldTemporal:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field temporal", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Temporal); err != nil {
					return fmt.Errorf("unmarshal field temporal: %w", err)
				}
			}
		case criterion.FieldConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conditions); err != nil {
					return fmt.Errorf("unmarshal field conditions: %w", err)
				}
			}
		case criterion.FieldAssertionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assertion_status", values[i])
			} else if value.Valid {
				_m.AssertionStatus = models.AssertionStatus(value.String)
			}
		case criterion.FieldReviewDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_decision", values[i])
			} else if value.Valid {
				_m.ReviewDecision = new(models.ReviewDecision)
				*_m.ReviewDecision = models.ReviewDecision(value.String)
			}
		case criterion.FieldModification:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field modification", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Modification); err != nil {
					return fmt.Errorf("unmarshal field modification: %w", err)
				}
			}
		case criterion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case criterion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Criterion.
// This includes values selected through modifiers, order, etc.
func (_m *Criterion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBatch queries the "batch" edge of the Criterion entity.
func (_m *Criterion) QueryBatch() *CriteriaBatchQuery {
	return NewCriterionClient(_m.config).QueryBatch(_m)
}

// QueryEntities queries the "entities" edge of the Criterion entity.
func (_m *Criterion) QueryEntities() *EntityQuery {
	return NewCriterionClient(_m.config).QueryEntities(_m)
}

// Update returns a builder for updating this Criterion.
// Note that you need to call Criterion.Unwrap() before calling this method if this Criterion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Criterion) Update() *CriterionUpdateOne {
	return NewCriterionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Criterion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Criterion) Unwrap() *Criterion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Criterion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Criterion) String() string {
	var builder strings.Builder
	builder.WriteString("Criterion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("page=")
	builder.WriteString(fmt.Sprintf("%v", _m.Page))
	builder.WriteString(", ")
	builder.WriteString("thresholds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Thresholds))
	builder.WriteString(", ")
	builder.WriteString("temporal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Temporal))
	builder.WriteString(", ")
	builder.WriteString("conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conditions))
	builder.WriteString(", ")
	builder.WriteString("assertion_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssertionStatus))
	builder.WriteString(", ")
	if v := _m.ReviewDecision; v != nil {
		builder.WriteString("review_decision=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("modification=")
	builder.WriteString(fmt.Sprintf("%v", _m.Modification))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Criterions is a parsable slice of Criterion.
type Criterions []*Criterion
