package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity: one
// durable pipeline state snapshot per (thread_id, step). A thread owns an
// append-only, monotone sequence of checkpoints.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("thread_id"),
		field.Int("step"),
		field.String("node").
			Comment("Pipeline node that produced this snapshot"),
		field.Bytes("state").
			Comment("Opaque serialized pipeline state"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "step").
			Unique(),
		index.Fields("thread_id"),
	}
}
