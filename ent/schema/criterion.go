package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/eligius-health/eligius/pkg/models"
)

// Criterion holds the schema definition for the Criterion entity.
type Criterion struct {
	ent.Schema
}

// Annotations of the Criterion. The table name must match the "criteria"
// table created by the SQL migrations; Ent's default pluralization would
// produce "criterions".
func (Criterion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "criteria"},
	}
}

// Fields of the Criterion.
func (Criterion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("criterion_id").
			Unique().
			Immutable(),
		field.String("batch_id"),
		field.Text("text"),
		field.String("kind").
			GoType(models.CriterionKind("")).
			Comment("inclusion or exclusion"),
		field.String("category"),
		field.Float("confidence").
			Default(0),
		field.Int("page").
			Default(0),
		field.JSON("thresholds", []models.NumericThreshold{}).
			Optional(),
		field.JSON("temporal", &models.TemporalConstraint{}).
			Optional(),
		field.JSON("conditions", []string{}).
			Optional(),
		field.String("assertion_status").
			GoType(models.AssertionStatus("")).
			Optional(),
		field.String("review_decision").
			GoType(models.ReviewDecision("")).
			Optional().
			Nillable().
			Comment("Null until a reviewer (or inheritance) decides"),
		field.JSON("modification", map[string]interface{}{}).
			Optional().
			Comment("Reviewer's modification payload when decision is 'modified'"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Criterion.
func (Criterion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", CriteriaBatch.Type).
			Ref("criteria").
			Field("batch_id").
			Unique().
			Required(),
		edge.To("entities", Entity.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Criterion.
func (Criterion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id"),
	}
}
