// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eligius-health/eligius/ent/protocol"
)

// Protocol is the model entity for the Protocol schema.
type Protocol struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Object-store URI of the uploaded PDF
	FilePointer string `json:"file_pointer,omitempty"`
	// Status holds the value of the "status" field.
	Status protocol.Status `json:"status,omitempty"`
	// Structured error context and the most recent pipeline thread id
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Human-readable failure summary
	ErrorReason *string `json:"error_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProtocolQuery when eager-loading is set.
	Edges        ProtocolEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProtocolEdges holds the relations/edges for other nodes in the graph.
type ProtocolEdges struct {
	// Batches holds the value of the batches edge.
	Batches []*CriteriaBatch `json:"batches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BatchesOrErr returns the Batches value or an error if the edge
// was not loaded in eager-loading.
func (e ProtocolEdges) BatchesOrErr() ([]*CriteriaBatch, error) {
	if e.loadedTypes[0] {
		return e.Batches, nil
	}
	return nil, &NotLoadedError{edge: "batches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Protocol) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case protocol.FieldMetadata:
			values[i] = new([]byte)
		case protocol.FieldID, protocol.FieldTitle, protocol.FieldFilePointer, protocol.FieldStatus, protocol.FieldErrorReason:
			values[i] = new(sql.NullString)
		case protocol.FieldCreatedAt, protocol.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Protocol fields.
func (_m *Protocol) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case protocol.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case protocol.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case protocol.FieldFilePointer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_pointer", values[i])
			} else if value.Valid {
				_m.FilePointer = value.String
			}
		case protocol.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = protocol.Status(value.String)
			}
		case protocol.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case protocol.FieldErrorReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_reason", values[i])
			} else if value.Valid {
				_m.ErrorReason = new(string)
				*_m.ErrorReason = value.String
			}
		case protocol.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case protocol.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Protocol.
// This includes values selected through modifiers, order, etc.
func (_m *Protocol) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBatches queries the "batches" edge of the Protocol entity.
func (_m *Protocol) QueryBatches() *CriteriaBatchQuery {
	return NewProtocolClient(_m.config).QueryBatches(_m)
}

// Update returns a builder for updating this Protocol.
// Note that you need to call Protocol.Unwrap() before calling this method if this Protocol
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Protocol) Update() *ProtocolUpdateOne {
	return NewProtocolClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Protocol entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Protocol) Unwrap() *Protocol {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Protocol is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Protocol) String() string {
	var builder strings.Builder
	builder.WriteString("Protocol(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("file_pointer=")
	builder.WriteString(_m.FilePointer)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.ErrorReason; v != nil {
		builder.WriteString("error_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Protocols is a parsable slice of Protocol.
type Protocols []*Protocol
