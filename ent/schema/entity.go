package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/eligius-health/eligius/pkg/models"
)

// Entity holds the schema definition for the Entity entity: one medical term
// extracted from a criterion, mapped into terminology codes by the router.
// Invariant: a non-null grounding_system names a system whose code field is
// also non-null.
type Entity struct {
	ent.Schema
}

// Fields of the Entity.
func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_id").
			Unique().
			Immutable(),
		field.String("criterion_id"),
		field.Text("text").
			Comment("Literal span text from the criterion"),
		field.String("entity_type").
			GoType(models.EntityType("")),
		field.Text("context").
			Optional().
			Comment("Context window around the span"),
		field.Float("grounding_confidence").
			Default(0),
		field.String("grounding_method").
			Optional(),
		field.String("grounding_error").
			Optional().
			Nillable().
			Comment("Set only on total grounding failure"),
		field.String("grounding_system").
			GoType(models.TerminologySystem("")).
			Optional().
			Nillable(),
		field.String("rxnorm_code").Optional().Nillable(),
		field.String("icd10_code").Optional().Nillable(),
		field.String("snomed_code").Optional().Nillable(),
		field.String("loinc_code").Optional().Nillable(),
		field.String("hpo_code").Optional().Nillable(),
		field.String("umls_cui").Optional().Nillable(),
		field.String("preferred_term").Optional().Nillable(),
		field.Bool("needs_review").
			Default(false).
			Comment("Best-candidate confidence below the reviewer floor"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Entity.
func (Entity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("criterion", Criterion.Type).
			Ref("entities").
			Field("criterion_id").
			Unique().
			Required(),
	}
}

// Indexes of the Entity.
func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("criterion_id"),
		index.Fields("entity_type"),
	}
}
