// Code generated by ent, DO NOT EDIT.

package protocol

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the protocol type in the database.
	Label = "protocol"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "protocol_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldFilePointer holds the string denoting the file_pointer field in the database.
	FieldFilePointer = "file_pointer"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldErrorReason holds the string denoting the error_reason field in the database.
	FieldErrorReason = "error_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBatches holds the string denoting the batches edge name in mutations.
	EdgeBatches = "batches"
	// CriteriaBatchFieldID holds the string denoting the ID field of the CriteriaBatch.
	CriteriaBatchFieldID = "batch_id"
	// Table holds the table name of the protocol in the database.
	Table = "protocols"
	// BatchesTable is the table that holds the batches relation/edge.
	BatchesTable = "criteria_batches"
	// BatchesInverseTable is the table name for the CriteriaBatch entity.
	// It exists in this package in order to avoid circular dependency with the "criteriabatch" package.
	BatchesInverseTable = "criteria_batches"
	// BatchesColumn is the table column denoting the batches relation/edge.
	BatchesColumn = "protocol_id"
)

// Columns holds all SQL columns for protocol fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldFilePointer,
	FieldStatus,
	FieldMetadata,
	FieldErrorReason,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusUploaded is the default value of the Status enum.
const DefaultStatus = StatusUploaded

// Status values.
const (
	StatusUploaded         Status = "uploaded"
	StatusExtracting       Status = "extracting"
	StatusExtractionFailed Status = "extraction_failed"
	StatusGrounding        Status = "grounding"
	StatusGroundingFailed  Status = "grounding_failed"
	StatusPendingReview    Status = "pending_review"
	StatusComplete         Status = "complete"
	StatusDeadLetter       Status = "dead_letter"
	StatusArchived         Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusUploaded, StatusExtracting, StatusExtractionFailed, StatusGrounding, StatusGroundingFailed, StatusPendingReview, StatusComplete, StatusDeadLetter, StatusArchived:
		return nil
	default:
		return fmt.Errorf("protocol: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Protocol queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByFilePointer orders the results by the file_pointer field.
func ByFilePointer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePointer, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorReason orders the results by the error_reason field.
func ByErrorReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBatchesCount orders the results by batches count.
func ByBatchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBatchesStep(), opts...)
	}
}

// ByBatches orders the results by batches terms.
func ByBatches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBatchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BatchesInverseTable, CriteriaBatchFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BatchesTable, BatchesColumn),
	)
}
