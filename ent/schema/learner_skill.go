package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnerSkill is one skill a learner reports or validates.
type LearnerSkill struct {
	ent.Schema
}

func (LearnerSkill) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("learner_id").
			NotEmpty(),
		field.String("skill_name").
			NotEmpty(),
		field.String("proficiency_level").
			NotEmpty().
			Comment("none, beginner, intermediate, advanced, or expert"),
		field.String("evidence_source").
			Default("self_reported").
			Comment("self_reported, validated, or credential"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LearnerSkill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "skill_name").
			Unique(),
	}
}
