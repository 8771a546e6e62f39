package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathwaySkill is one step in a pathway's ordered skill sequence.
type PathwaySkill struct {
	ent.Schema
}

func (PathwaySkill) Fields() []ent.Field {
	return []ent.Field{
		field.String("pathway_skill_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("pathway_id").
			NotEmpty(),
		field.String("skill_name").
			NotEmpty(),
		field.Int("sequence_order").
			Positive(),
		field.String("status").
			Default("not_started").
			Comment("not_started, in_progress, or completed"),
		field.Int("estimated_hours").
			Default(20),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (PathwaySkill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pathway_id"),
		index.Fields("pathway_id", "sequence_order").
			Unique(),
	}
}
