package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/eligius-health/eligius/pkg/models"
)

// OutboxEvent holds the schema definition for the OutboxEvent entity.
// Rows are written inside the same transaction as the business change they
// announce; the processor claims them with FOR UPDATE SKIP LOCKED and drives
// each one to exactly one of done or dead_letter.
type OutboxEvent struct {
	ent.Schema
}

// Fields of the OutboxEvent.
func (OutboxEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("aggregate_id").
			Comment("Protocol id the event belongs to"),
		field.String("kind").
			GoType(models.EventKind("")),
		field.JSON("payload", map[string]interface{}{}),
		field.Enum("status").
			Values("pending", "in_flight", "failed", "dead_letter", "done").
			Default("pending"),
		field.Int("retry_count").
			Default(0),
		field.Time("next_attempt_at").
			Default(time.Now),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the OutboxEvent.
func (OutboxEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Poll predicate: status IN (pending, failed) AND next_attempt_at <= now.
		index.Fields("status", "next_attempt_at"),
		index.Fields("aggregate_id"),
	}
}
