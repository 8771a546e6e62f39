package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Learner is the person being guided. Profile fields live here rather
// than in a separate table; the profile is one-to-one with the learner
// and is filled in incrementally during intake.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID identifying the learner across tables"),
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("name").
			Default(""),
		field.String("status").
			Default("new").
			Comment("new or active"),
		field.String("current_job_title").
			Default(""),
		field.String("current_industry").
			Default(""),
		field.Int("years_experience").
			Default(0),
		field.String("education_level").
			Default(""),
		field.Int("weekly_study_hours").
			Default(0),
		field.String("preferred_study_times").
			Default(""),
		field.Bool("has_family_obligations").
			Default(false),
		field.String("employment_status").
			Default(""),
		field.String("preferred_format").
			Default(""),
		field.String("disposition").
			Default("").
			Comment("unclear, discontent, promotion_seeking, or called"),
		field.String("riasec_code").
			Default("").
			Comment("Inferred 3-letter code, empty until classified"),
		field.Bool("profile_complete").
			Default(false),
		field.String("current_mode").
			Default("").
			Comment("Last resolved operating mode, empty for a new learner"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Learner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
