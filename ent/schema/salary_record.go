package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SalaryRecord is one row of the salary and labor-market reference data.
type SalaryRecord struct {
	ent.Schema
}

func (SalaryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_title").
			NotEmpty(),
		field.Int("median_salary").
			Default(0).
			Comment("Median annual advertised salary in USD"),
		field.String("market_demand").
			Default("").
			Comment("Labor market tag, e.g. Labor Shortage"),
		field.Float("supply_demand_ratio").
			Default(0),
		field.String("riasec_code").
			Default(""),
		field.Int("recent_postings").
			Default(0).
			Comment("Unique postings in the latest 30 days"),
	}
}

func (SalaryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_title"),
		index.Fields("market_demand"),
	}
}
