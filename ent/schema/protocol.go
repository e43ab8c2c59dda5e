package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Protocol holds the schema definition for the Protocol entity.
// A protocol's status is the single source of truth for external observers;
// only the pipeline and the retry operation mutate it.
type Protocol struct {
	ent.Schema
}

// Fields of the Protocol.
func (Protocol) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("protocol_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.String("file_pointer").
			Comment("Object-store URI of the uploaded PDF"),
		field.Enum("status").
			Values(
				"uploaded",
				"extracting",
				"extraction_failed",
				"grounding",
				"grounding_failed",
				"pending_review",
				"complete",
				"dead_letter",
				"archived",
			).
			Default("uploaded"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Structured error context and the most recent pipeline thread id"),
		field.String("error_reason").
			Optional().
			Nillable().
			Comment("Human-readable failure summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Protocol.
func (Protocol) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("batches", CriteriaBatch.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Protocol.
func (Protocol) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		// Archival sweep scans dead_letter protocols by staleness.
		index.Fields("status", "updated_at"),
	}
}
