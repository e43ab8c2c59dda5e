// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/protocol"
)

// CriteriaBatch is the model entity for the CriteriaBatch schema.
type CriteriaBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProtocolID holds the value of the "protocol_id" field.
	ProtocolID string `json:"protocol_id,omitempty"`
	// IsArchived holds the value of the "is_archived" field.
	IsArchived bool `json:"is_archived,omitempty"`
	// ReviewedCount holds the value of the "reviewed_count" field.
	ReviewedCount int `json:"reviewed_count,omitempty"`
	// TotalCount holds the value of the "total_count" field.
	TotalCount int `json:"total_count,omitempty"`
	// Model identifier the batch was extracted with
	ExtractionModel string `json:"extraction_model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CriteriaBatchQuery when eager-loading is set.
	Edges        CriteriaBatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CriteriaBatchEdges holds the relations/edges for other nodes in the graph.
type CriteriaBatchEdges struct {
	// Protocol holds the value of the protocol edge.
	Protocol *Protocol `json:"protocol,omitempty"`
	// Criteria holds the value of the criteria edge.
	Criteria []*Criterion `json:"criteria,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProtocolOrErr returns the Protocol value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CriteriaBatchEdges) ProtocolOrErr() (*Protocol, error) {
	if e.Protocol != nil {
		return e.Protocol, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: protocol.Label}
	}
	return nil, &NotLoadedError{edge: "protocol"}
}

// CriteriaOrErr returns the Criteria value or an error if the edge
// was not loaded in eager-loading.
func (e CriteriaBatchEdges) CriteriaOrErr() ([]*Criterion, error) {
	if e.loadedTypes[1] {
		return e.Criteria, nil
	}
	return nil, &NotLoadedError{edge: "criteria"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CriteriaBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case criteriabatch.FieldIsArchived:
			values[i] = new(sql.NullBool)
		case criteriabatch.FieldReviewedCount, criteriabatch.FieldTotalCount:
			values[i] = new(sql.NullInt64)
		case criteriabatch.FieldID, criteriabatch.FieldProtocolID, criteriabatch.FieldExtractionModel:
			values[i] = new(sql.NullString)
		case criteriabatch.FieldCreatedAt, criteriabatch.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CriteriaBatch fields.
func (_m *CriteriaBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case criteriabatch.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case criteriabatch.FieldProtocolID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field protocol_id", values[i])
			} else if value.Valid {
				_m.ProtocolID = value.String
			}
		case criteriabatch.FieldIsArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_archived", values[i])
			} else if value.Valid {
				_m.IsArchived = value.Bool
			}
		case criteriabatch.FieldReviewedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_count", values[i])
			} else if value.Valid {
				_m.ReviewedCount = int(value.Int64)
			}
		case criteriabatch.FieldTotalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_count", values[i])
			} else if value.Valid {
				_m.TotalCount = int(value.Int64)
			}
		case criteriabatch.FieldExtractionModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_model", values[i])
			} else if value.Valid {
				_m.ExtractionModel = value.String
			}
		case criteriabatch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case criteriabatch.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CriteriaBatch.
// This includes values selected through modifiers, order, etc.
func (_m *CriteriaBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProtocol queries the "protocol" edge of the CriteriaBatch entity.
func (_m *CriteriaBatch) QueryProtocol() *ProtocolQuery {
	return NewCriteriaBatchClient(_m.config).QueryProtocol(_m)
}

// QueryCriteria queries the "criteria" edge of the CriteriaBatch entity.
func (_m *CriteriaBatch) QueryCriteria() *CriterionQuery {
	return NewCriteriaBatchClient(_m.config).QueryCriteria(_m)
}

// Update returns a builder for updating this CriteriaBatch.
// Note that you need to call CriteriaBatch.Unwrap() before calling this method if this CriteriaBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CriteriaBatch) Update() *CriteriaBatchUpdateOne {
	return NewCriteriaBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CriteriaBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CriteriaBatch) Unwrap() *CriteriaBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CriteriaBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CriteriaBatch) String() string {
	var builder strings.Builder
	builder.WriteString("CriteriaBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("protocol_id=")
	builder.WriteString(_m.ProtocolID)
	builder.WriteString(", ")
	builder.WriteString("is_archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsArchived))
	builder.WriteString(", ")
	builder.WriteString("reviewed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewedCount))
	builder.WriteString(", ")
	builder.WriteString("total_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCount))
	builder.WriteString(", ")
	builder.WriteString("extraction_model=")
	builder.WriteString(_m.ExtractionModel)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CriteriaBatches is a parsable slice of CriteriaBatch.
type CriteriaBatches []*CriteriaBatch
