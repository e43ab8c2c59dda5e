// Code generated by ent, DO NOT EDIT.

package criterion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the criterion type in the database.
	Label = "criterion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "criterion_id"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldPage holds the string denoting the page field in the database.
	FieldPage = "page"
	// FieldThresholds holds the string denoting the thresholds field in the database.
	FieldThresholds = "thresholds"
	// FieldTemporal holds the string denoting the temporal field in the database.
	FieldTemporal = "temporal"
	// FieldConditions holds the string denoting the conditions field in the database.
	FieldConditions = "conditions"
	// FieldAssertionStatus holds the string denoting the assertion_status field in the database.
	FieldAssertionStatus = "assertion_status"
	// FieldReviewDecision holds the string denoting the review_decision field in the database.
	FieldReviewDecision = "review_decision"
	// FieldModification holds the string denoting the modification field in the database.
	FieldModification = "modification"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBatch holds the string denoting the batch edge name in mutations.
	EdgeBatch = "batch"
	// EdgeEntities holds the string denoting the entities edge name in mutations.
	EdgeEntities = "entities"
	// CriteriaBatchFieldID holds the string denoting the ID field of the CriteriaBatch.
	CriteriaBatchFieldID = "batch_id"
	// EntityFieldID holds the string denoting the ID field of the Entity.
	EntityFieldID = "entity_id"
	// Table holds the table name of the criterion in the database.
	Table = "criteria"
	// BatchTable is the table that holds the batch relation/edge.
	BatchTable = "criteria"
	// BatchInverseTable is the table name for the CriteriaBatch entity.
	// It exists in this package in order to avoid circular dependency with the "criteriabatch" package.
	BatchInverseTable = "criteria_batches"
	// BatchColumn is the table column denoting the batch relation/edge.
	BatchColumn = "batch_id"
	// EntitiesTable is the table that holds the entities relation/edge.
	EntitiesTable = "entities"
	// EntitiesInverseTable is the table name for the Entity entity.
	// It exists in this package in order to avoid circular dependency with the "entity" package.
	EntitiesInverseTable = "entities"
	// EntitiesColumn is the table column denoting the entities relation/edge.
	EntitiesColumn = "criterion_id"
)

// Columns holds all SQL columns for criterion fields.
var Columns = []string{
	FieldID,
	FieldBatchID,
	FieldText,
	FieldKind,
	FieldCategory,
	FieldConfidence,
	FieldPage,
	FieldThresholds,
	FieldTemporal,
	FieldConditions,
	FieldAssertionStatus,
	FieldReviewDecision,
	FieldModification,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultPage holds the default value on creation for the "page" field.
	DefaultPage int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Criterion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByPage orders the results by the page field.
func ByPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPage, opts...).ToFunc()
}

// ByAssertionStatus orders the results by the assertion_status field.
func ByAssertionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssertionStatus, opts...).ToFunc()
}

// ByReviewDecision orders the results by the review_decision field.
func ByReviewDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewDecision, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBatchField orders the results by batch field.
func ByBatchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBatchStep(), sql.OrderByField(field, opts...))
	}
}

// ByEntitiesCount orders the results by entities count.
func ByEntitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntitiesStep(), opts...)
	}
}

// ByEntities orders the results by entities terms.
func ByEntities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBatchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BatchInverseTable, CriteriaBatchFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
	)
}
func newEntitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntitiesInverseTable, EntityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntitiesTable, EntitiesColumn),
	)
}
