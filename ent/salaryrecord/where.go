// Code generated by ent, DO NOT EDIT.

package salaryrecord

import (
	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLTE(FieldID, id))
}

// JobTitle applies equality check predicate on the "job_title" field. It's identical to JobTitleEQ.
func JobTitle(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldJobTitle, v))
}

// MedianSalary applies equality check predicate on the "median_salary" field. It's identical to MedianSalaryEQ.
func MedianSalary(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldMedianSalary, v))
}

// MarketDemand applies equality check predicate on the "market_demand" field. It's identical to MarketDemandEQ.
func MarketDemand(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldMarketDemand, v))
}

// SupplyDemandRatio applies equality check predicate on the "supply_demand_ratio" field. It's identical to SupplyDemandRatioEQ.
func SupplyDemandRatio(v float64) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldSupplyDemandRatio, v))
}

// RiasecCode applies equality check predicate on the "riasec_code" field. It's identical to RiasecCodeEQ.
func RiasecCode(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldRiasecCode, v))
}

// RecentPostings applies equality check predicate on the "recent_postings" field. It's identical to RecentPostingsEQ.
func RecentPostings(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldRecentPostings, v))
}

// JobTitleEQ applies the EQ predicate on the "job_title" field.
func JobTitleEQ(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldJobTitle, v))
}

// JobTitleNEQ applies the NEQ predicate on the "job_title" field.
func JobTitleNEQ(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNEQ(FieldJobTitle, v))
}

// JobTitleIn applies the In predicate on the "job_title" field.
func JobTitleIn(vs ...string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldIn(FieldJobTitle, vs...))
}

// JobTitleNotIn applies the NotIn predicate on the "job_title" field.
func JobTitleNotIn(vs ...string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNotIn(FieldJobTitle, vs...))
}

// JobTitleGT applies the GT predicate on the "job_title" field.
func JobTitleGT(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGT(FieldJobTitle, v))
}

// JobTitleGTE applies the GTE predicate on the "job_title" field.
func JobTitleGTE(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGTE(FieldJobTitle, v))
}

// JobTitleLT applies the LT predicate on the "job_title" field.
func JobTitleLT(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLT(FieldJobTitle, v))
}

// JobTitleLTE applies the LTE predicate on the "job_title" field.
func JobTitleLTE(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLTE(FieldJobTitle, v))
}

// JobTitleContains applies the Contains predicate on the "job_title" field.
func JobTitleContains(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldContains(FieldJobTitle, v))
}

// JobTitleHasPrefix applies the HasPrefix predicate on the "job_title" field.
func JobTitleHasPrefix(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldHasPrefix(FieldJobTitle, v))
}

// JobTitleHasSuffix applies the HasSuffix predicate on the "job_title" field.
func JobTitleHasSuffix(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldHasSuffix(FieldJobTitle, v))
}

// JobTitleEqualFold applies the EqualFold predicate on the "job_title" field.
func JobTitleEqualFold(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEqualFold(FieldJobTitle, v))
}

// JobTitleContainsFold applies the ContainsFold predicate on the "job_title" field.
func JobTitleContainsFold(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldContainsFold(FieldJobTitle, v))
}

// MedianSalaryEQ applies the EQ predicate on the "median_salary" field.
func MedianSalaryEQ(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldMedianSalary, v))
}

// MedianSalaryNEQ applies the NEQ predicate on the "median_salary" field.
func MedianSalaryNEQ(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNEQ(FieldMedianSalary, v))
}

// MedianSalaryIn applies the In predicate on the "median_salary" field.
func MedianSalaryIn(vs ...int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldIn(FieldMedianSalary, vs...))
}

// MedianSalaryNotIn applies the NotIn predicate on the "median_salary" field.
func MedianSalaryNotIn(vs ...int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNotIn(FieldMedianSalary, vs...))
}

// MedianSalaryGT applies the GT predicate on the "median_salary" field.
func MedianSalaryGT(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGT(FieldMedianSalary, v))
}

// MedianSalaryGTE applies the GTE predicate on the "median_salary" field.
func MedianSalaryGTE(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGTE(FieldMedianSalary, v))
}

// MedianSalaryLT applies the LT predicate on the "median_salary" field.
func MedianSalaryLT(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLT(FieldMedianSalary, v))
}

// MedianSalaryLTE applies the LTE predicate on the "median_salary" field.
func MedianSalaryLTE(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLTE(FieldMedianSalary, v))
}

// MarketDemandEQ applies the EQ predicate on the "market_demand" field.
func MarketDemandEQ(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldMarketDemand, v))
}

// MarketDemandNEQ applies the NEQ predicate on the "market_demand" field.
func MarketDemandNEQ(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNEQ(FieldMarketDemand, v))
}

// MarketDemandIn applies the In predicate on the "market_demand" field.
func MarketDemandIn(vs ...string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldIn(FieldMarketDemand, vs...))
}

// MarketDemandNotIn applies the NotIn predicate on the "market_demand" field.
func MarketDemandNotIn(vs ...string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNotIn(FieldMarketDemand, vs...))
}

// MarketDemandGT applies the GT predicate on the "market_demand" field.
func MarketDemandGT(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGT(FieldMarketDemand, v))
}

// MarketDemandGTE applies the GTE predicate on the "market_demand" field.
func MarketDemandGTE(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGTE(FieldMarketDemand, v))
}

// MarketDemandLT applies the LT predicate on the "market_demand" field.
func MarketDemandLT(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLT(FieldMarketDemand, v))
}

// MarketDemandLTE applies the LTE predicate on the "market_demand" field.
func MarketDemandLTE(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLTE(FieldMarketDemand, v))
}

// MarketDemandContains applies the Contains predicate on the "market_demand" field.
func MarketDemandContains(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldContains(FieldMarketDemand, v))
}

// MarketDemandHasPrefix applies the HasPrefix predicate on the "market_demand" field.
func MarketDemandHasPrefix(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldHasPrefix(FieldMarketDemand, v))
}

// MarketDemandHasSuffix applies the HasSuffix predicate on the "market_demand" field.
func MarketDemandHasSuffix(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldHasSuffix(FieldMarketDemand, v))
}

// MarketDemandEqualFold applies the EqualFold predicate on the "market_demand" field.
func MarketDemandEqualFold(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEqualFold(FieldMarketDemand, v))
}

// MarketDemandContainsFold applies the ContainsFold predicate on the "market_demand" field.
func MarketDemandContainsFold(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldContainsFold(FieldMarketDemand, v))
}

// SupplyDemandRatioEQ applies the EQ predicate on the "supply_demand_ratio" field.
func SupplyDemandRatioEQ(v float64) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldSupplyDemandRatio, v))
}

// SupplyDemandRatioNEQ applies the NEQ predicate on the "supply_demand_ratio" field.
func SupplyDemandRatioNEQ(v float64) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNEQ(FieldSupplyDemandRatio, v))
}

// SupplyDemandRatioIn applies the In predicate on the "supply_demand_ratio" field.
func SupplyDemandRatioIn(vs ...float64) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldIn(FieldSupplyDemandRatio, vs...))
}

// SupplyDemandRatioNotIn applies the NotIn predicate on the "supply_demand_ratio" field.
func SupplyDemandRatioNotIn(vs ...float64) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNotIn(FieldSupplyDemandRatio, vs...))
}

// SupplyDemandRatioGT applies the GT predicate on the "supply_demand_ratio" field.
func SupplyDemandRatioGT(v float64) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGT(FieldSupplyDemandRatio, v))
}

// SupplyDemandRatioGTE applies the GTE predicate on the "supply_demand_ratio" field.
func SupplyDemandRatioGTE(v float64) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGTE(FieldSupplyDemandRatio, v))
}

// SupplyDemandRatioLT applies the LT predicate on the "supply_demand_ratio" field.
func SupplyDemandRatioLT(v float64) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLT(FieldSupplyDemandRatio, v))
}

// SupplyDemandRatioLTE applies the LTE predicate on the "supply_demand_ratio" field.
func SupplyDemandRatioLTE(v float64) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLTE(FieldSupplyDemandRatio, v))
}

// RiasecCodeEQ applies the EQ predicate on the "riasec_code" field.
func RiasecCodeEQ(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldRiasecCode, v))
}

// RiasecCodeNEQ applies the NEQ predicate on the "riasec_code" field.
func RiasecCodeNEQ(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNEQ(FieldRiasecCode, v))
}

// RiasecCodeIn applies the In predicate on the "riasec_code" field.
func RiasecCodeIn(vs ...string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldIn(FieldRiasecCode, vs...))
}

// RiasecCodeNotIn applies the NotIn predicate on the "riasec_code" field.
func RiasecCodeNotIn(vs ...string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNotIn(FieldRiasecCode, vs...))
}

// RiasecCodeGT applies the GT predicate on the "riasec_code" field.
func RiasecCodeGT(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGT(FieldRiasecCode, v))
}

// RiasecCodeGTE applies the GTE predicate on the "riasec_code" field.
func RiasecCodeGTE(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGTE(FieldRiasecCode, v))
}

// RiasecCodeLT applies the LT predicate on the "riasec_code" field.
func RiasecCodeLT(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLT(FieldRiasecCode, v))
}

// RiasecCodeLTE applies the LTE predicate on the "riasec_code" field.
func RiasecCodeLTE(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLTE(FieldRiasecCode, v))
}

// RiasecCodeContains applies the Contains predicate on the "riasec_code" field.
func RiasecCodeContains(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldContains(FieldRiasecCode, v))
}

// RiasecCodeHasPrefix applies the HasPrefix predicate on the "riasec_code" field.
func RiasecCodeHasPrefix(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldHasPrefix(FieldRiasecCode, v))
}

// RiasecCodeHasSuffix applies the HasSuffix predicate on the "riasec_code" field.
func RiasecCodeHasSuffix(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldHasSuffix(FieldRiasecCode, v))
}

// RiasecCodeEqualFold applies the EqualFold predicate on the "riasec_code" field.
func RiasecCodeEqualFold(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEqualFold(FieldRiasecCode, v))
}

// RiasecCodeContainsFold applies the ContainsFold predicate on the "riasec_code" field.
func RiasecCodeContainsFold(v string) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldContainsFold(FieldRiasecCode, v))
}

// RecentPostingsEQ applies the EQ predicate on the "recent_postings" field.
func RecentPostingsEQ(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldEQ(FieldRecentPostings, v))
}

// RecentPostingsNEQ applies the NEQ predicate on the "recent_postings" field.
func RecentPostingsNEQ(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNEQ(FieldRecentPostings, v))
}

// RecentPostingsIn applies the In predicate on the "recent_postings" field.
func RecentPostingsIn(vs ...int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldIn(FieldRecentPostings, vs...))
}

// RecentPostingsNotIn applies the NotIn predicate on the "recent_postings" field.
func RecentPostingsNotIn(vs ...int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldNotIn(FieldRecentPostings, vs...))
}

// RecentPostingsGT applies the GT predicate on the "recent_postings" field.
func RecentPostingsGT(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGT(FieldRecentPostings, v))
}

// RecentPostingsGTE applies the GTE predicate on the "recent_postings" field.
func RecentPostingsGTE(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldGTE(FieldRecentPostings, v))
}

// RecentPostingsLT applies the LT predicate on the "recent_postings" field.
func RecentPostingsLT(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLT(FieldRecentPostings, v))
}

// RecentPostingsLTE applies the LTE predicate on the "recent_postings" field.
func RecentPostingsLTE(v int) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.FieldLTE(FieldRecentPostings, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SalaryRecord) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SalaryRecord) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SalaryRecord) predicate.SalaryRecord {
	return predicate.SalaryRecord(sql.NotPredicates(p))
}
