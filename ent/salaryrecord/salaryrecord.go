// Code generated by ent, DO NOT EDIT.

package salaryrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the salaryrecord type in the database.
	Label = "salary_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobTitle holds the string denoting the job_title field in the database.
	FieldJobTitle = "job_title"
	// FieldMedianSalary holds the string denoting the median_salary field in the database.
	FieldMedianSalary = "median_salary"
	// FieldMarketDemand holds the string denoting the market_demand field in the database.
	FieldMarketDemand = "market_demand"
	// FieldSupplyDemandRatio holds the string denoting the supply_demand_ratio field in the database.
	FieldSupplyDemandRatio = "supply_demand_ratio"
	// FieldRiasecCode holds the string denoting the riasec_code field in the database.
	FieldRiasecCode = "riasec_code"
	// FieldRecentPostings holds the string denoting the recent_postings field in the database.
	FieldRecentPostings = "recent_postings"
	// Table holds the table name of the salaryrecord in the database.
	Table = "salary_records"
)

// Columns holds all SQL columns for salaryrecord fields.
var Columns = []string{
	FieldID,
	FieldJobTitle,
	FieldMedianSalary,
	FieldMarketDemand,
	FieldSupplyDemandRatio,
	FieldRiasecCode,
	FieldRecentPostings,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// JobTitleValidator is a validator for the "job_title" field. It is called by the builders before save.
	JobTitleValidator func(string) error
	// DefaultMedianSalary holds the default value on creation for the "median_salary" field.
	DefaultMedianSalary int
	// DefaultMarketDemand holds the default value on creation for the "market_demand" field.
	DefaultMarketDemand string
	// DefaultSupplyDemandRatio holds the default value on creation for the "supply_demand_ratio" field.
	DefaultSupplyDemandRatio float64
	// DefaultRiasecCode holds the default value on creation for the "riasec_code" field.
	DefaultRiasecCode string
	// DefaultRecentPostings holds the default value on creation for the "recent_postings" field.
	DefaultRecentPostings int
)

// OrderOption defines the ordering options for the SalaryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobTitle orders the results by the job_title field.
func ByJobTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobTitle, opts...).ToFunc()
}

// ByMedianSalary orders the results by the median_salary field.
func ByMedianSalary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedianSalary, opts...).ToFunc()
}

// ByMarketDemand orders the results by the market_demand field.
func ByMarketDemand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketDemand, opts...).ToFunc()
}

// BySupplyDemandRatio orders the results by the supply_demand_ratio field.
func BySupplyDemandRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplyDemandRatio, opts...).ToFunc()
}

// ByRiasecCode orders the results by the riasec_code field.
func ByRiasecCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiasecCode, opts...).ToFunc()
}

// ByRecentPostings orders the results by the recent_postings field.
func ByRecentPostings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecentPostings, opts...).ToFunc()
}
