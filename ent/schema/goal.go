package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal is a career target the learner is exploring or has committed to.
// Goals are append-only; the most recent row is the current goal.
type Goal struct {
	ent.Schema
}

func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.String("goal_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("learner_id").
			NotEmpty(),
		field.String("target_job_title").
			NotEmpty(),
		field.String("status").
			Default("exploring").
			Comment("exploring, committed, achieved, or changed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("status"),
	}
}
