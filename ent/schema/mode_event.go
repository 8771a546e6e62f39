package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModeEvent records a mode transition decision for audit and debugging.
// Written only when the resolved mode differs from the persisted one.
type ModeEvent struct {
	ent.Schema
}

func (ModeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ModeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("from_mode").
			Default("").
			Comment("Empty for a brand-new learner's first transition"),
		field.String("to_mode").NotEmpty(),
		field.String("reason").NotEmpty(),
	}
}

func (ModeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
