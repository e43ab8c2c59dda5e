package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Append-only and immutable: rows are never updated or deleted.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("actor").
			Immutable().
			Comment("User identity or 'pipeline'"),
		field.String("event_kind").
			Immutable(),
		field.String("target_kind").
			Immutable(),
		field.String("target_id").
			Immutable(),
		field.JSON("before", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("after", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_kind", "target_id"),
		index.Fields("event_kind"),
	}
}
