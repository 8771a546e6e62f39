package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobRecord is one imported posting from the unified jobs corpus.
type JobRecord struct {
	ent.Schema
}

func (JobRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("link").
			Unique().
			NotEmpty().
			Comment("Stable identifier carried over from the source corpus"),
		field.String("title").
			NotEmpty(),
		field.String("company").
			Default(""),
		field.String("location").
			Default(""),
		field.String("level").
			Default("").
			Comment("Entry, Associate, Mid-Senior, Director"),
		field.Text("skills").
			Default("").
			Comment("Comma-separated requirement list as imported"),
		field.String("riasec_code").
			Default(""),
		field.Float("riasec_confidence").
			Default(0),
		field.String("primary_type").
			Default("").
			Comment("First letter of the riasec code"),
	}
}

func (JobRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("riasec_code"),
		index.Fields("primary_type"),
		index.Fields("level"),
	}
}
