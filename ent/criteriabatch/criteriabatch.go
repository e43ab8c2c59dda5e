// Code generated by ent, DO NOT EDIT.

package criteriabatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the criteriabatch type in the database.
	Label = "criteria_batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "batch_id"
	// FieldProtocolID holds the string denoting the protocol_id field in the database.
	FieldProtocolID = "protocol_id"
	// FieldIsArchived holds the string denoting the is_archived field in the database.
	FieldIsArchived = "is_archived"
	// FieldReviewedCount holds the string denoting the reviewed_count field in the database.
	FieldReviewedCount = "reviewed_count"
	// FieldTotalCount holds the string denoting the total_count field in the database.
	FieldTotalCount = "total_count"
	// FieldExtractionModel holds the string denoting the extraction_model field in the database.
	FieldExtractionModel = "extraction_model"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProtocol holds the string denoting the protocol edge name in mutations.
	EdgeProtocol = "protocol"
	// EdgeCriteria holds the string denoting the criteria edge name in mutations.
	EdgeCriteria = "criteria"
	// ProtocolFieldID holds the string denoting the ID field of the Protocol.
	ProtocolFieldID = "protocol_id"
	// CriterionFieldID holds the string denoting the ID field of the Criterion.
	CriterionFieldID = "criterion_id"
	// Table holds the table name of the criteriabatch in the database.
	Table = "criteria_batches"
	// ProtocolTable is the table that holds the protocol relation/edge.
	ProtocolTable = "criteria_batches"
	// ProtocolInverseTable is the table name for the Protocol entity.
	// It exists in this package in order to avoid circular dependency with the "protocol" package.
	ProtocolInverseTable = "protocols"
	// ProtocolColumn is the table column denoting the protocol relation/edge.
	ProtocolColumn = "protocol_id"
	// CriteriaTable is the table that holds the criteria relation/edge.
	CriteriaTable = "criteria"
	// CriteriaInverseTable is the table name for the Criterion entity.
	// It exists in this package in order to avoid circular dependency with the "criterion" package.
	CriteriaInverseTable = "criteria"
	// CriteriaColumn is the table column denoting the criteria relation/edge.
	CriteriaColumn = "batch_id"
)

// Columns holds all SQL columns for criteriabatch fields.
var Columns = []string{
	FieldID,
	FieldProtocolID,
	FieldIsArchived,
	FieldReviewedCount,
	FieldTotalCount,
	FieldExtractionModel,
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
	// DefaultIsArchived holds the default value on creation for the "is_archived" field.
	DefaultIsArchived bool
	// DefaultReviewedCount holds the default value on creation for the "reviewed_count" field.
	DefaultReviewedCount int
	// DefaultTotalCount holds the default value on creation for the "total_count" field.
	DefaultTotalCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CriteriaBatch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProtocolID orders the results by the protocol_id field.
func ByProtocolID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtocolID, opts...).ToFunc()
}

// ByIsArchived orders the results by the is_archived field.
func ByIsArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsArchived, opts...).ToFunc()
}

// ByReviewedCount orders the results by the reviewed_count field.
func ByReviewedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedCount, opts...).ToFunc()
}

// ByTotalCount orders the results by the total_count field.
func ByTotalCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCount, opts...).ToFunc()
}

// ByExtractionModel orders the results by the extraction_model field.
func ByExtractionModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionModel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProtocolField orders the results by protocol field.
func ByProtocolField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProtocolStep(), sql.OrderByField(field, opts...))
	}
}

// ByCriteriaCount orders the results by criteria count.
func ByCriteriaCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCriteriaStep(), opts...)
	}
}

// ByCriteria orders the results by criteria terms.
func ByCriteria(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCriteriaStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProtocolStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProtocolInverseTable, ProtocolFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProtocolTable, ProtocolColumn),
	)
}
func newCriteriaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CriteriaInverseTable, CriterionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CriteriaTable, CriteriaColumn),
	)
}
