package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Pathway is an ordered learning plan toward a committed goal.
type Pathway struct {
	ent.Schema
}

func (Pathway) Fields() []ent.Field {
	return []ent.Field{
		field.String("pathway_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("learner_id").
			NotEmpty(),
		field.String("goal_id").
			NotEmpty(),
		field.String("status").
			Default("active").
			Comment("active, completed, or abandoned"),
		field.Int("total_skills").
			Default(0),
		field.Int("completed_skills").
			Default(0),
		field.Int("estimated_hours").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Pathway) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "status"),
	}
}
