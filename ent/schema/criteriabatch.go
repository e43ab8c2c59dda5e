package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CriteriaBatch holds the schema definition for the CriteriaBatch entity.
// One batch groups the criteria produced by one extraction run. At most one
// batch per protocol is non-archived at any time; persist archives the old
// batch when a re-extraction supersedes it.
type CriteriaBatch struct {
	ent.Schema
}

// Fields of the CriteriaBatch.
func (CriteriaBatch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("batch_id").
			Unique().
			Immutable(),
		field.String("protocol_id"),
		field.Bool("is_archived").
			Default(false),
		field.Int("reviewed_count").
			Default(0),
		field.Int("total_count").
			Default(0),
		field.String("extraction_model").
			Comment("Model identifier the batch was extracted with"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CriteriaBatch.
func (CriteriaBatch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("protocol", Protocol.Type).
			Ref("batches").
			Field("protocol_id").
			Unique().
			Required(),
		edge.To("criteria", Criterion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CriteriaBatch.
func (CriteriaBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("protocol_id", "is_archived"),
	}
}
