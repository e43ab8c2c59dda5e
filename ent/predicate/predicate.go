// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// CriteriaBatch is the predicate function for criteriabatch builders.
type CriteriaBatch func(*sql.Selector)

// Criterion is the predicate function for criterion builders.
type Criterion func(*sql.Selector)

// Entity is the predicate function for entity builders.
type Entity func(*sql.Selector)

// OutboxEvent is the predicate function for outboxevent builders.
type OutboxEvent func(*sql.Selector)

// Protocol is the predicate function for protocol builders.
type Protocol func(*sql.Selector)
