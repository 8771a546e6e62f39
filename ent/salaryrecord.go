// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/salaryrecord"
)

// SalaryRecord is the model entity for the SalaryRecord schema.
type SalaryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JobTitle holds the value of the "job_title" field.
	JobTitle string `json:"job_title,omitempty"`
	// Median annual advertised salary in USD
	MedianSalary int `json:"median_salary,omitempty"`
	// Labor market tag, e.g. Labor Shortage
	MarketDemand string `json:"market_demand,omitempty"`
	// SupplyDemandRatio holds the value of the "supply_demand_ratio" field.
	SupplyDemandRatio float64 `json:"supply_demand_ratio,omitempty"`
	// RiasecCode holds the value of the "riasec_code" field.
	RiasecCode string `json:"riasec_code,omitempty"`
	// Unique postings in the latest 30 days
	RecentPostings int `json:"recent_postings,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SalaryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case salaryrecord.FieldSupplyDemandRatio:
			values[i] = new(sql.NullFloat64)
		case salaryrecord.FieldID, salaryrecord.FieldMedianSalary, salaryrecord.FieldRecentPostings:
			values[i] = new(sql.NullInt64)
		case salaryrecord.FieldJobTitle, salaryrecord.FieldMarketDemand, salaryrecord.FieldRiasecCode:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SalaryRecord fields.
func (_m *SalaryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case salaryrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case salaryrecord.FieldJobTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_title", values[i])
			} else if value.Valid {
				_m.JobTitle = value.String
			}
		case salaryrecord.FieldMedianSalary:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field median_salary", values[i])
			} else if value.Valid {
				_m.MedianSalary = int(value.Int64)
			}
		case salaryrecord.FieldMarketDemand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field market_demand", values[i])
			} else if value.Valid {
				_m.MarketDemand = value.String
			}
		case salaryrecord.FieldSupplyDemandRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field supply_demand_ratio", values[i])
			} else if value.Valid {
				_m.SupplyDemandRatio = value.Float64
			}
		case salaryrecord.FieldRiasecCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field riasec_code", values[i])
			} else if value.Valid {
				_m.RiasecCode = value.String
			}
		case salaryrecord.FieldRecentPostings:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recent_postings", values[i])
			} else if value.Valid {
				_m.RecentPostings = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SalaryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *SalaryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SalaryRecord.
// Note that you need to call SalaryRecord.Unwrap() before calling this method if this SalaryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SalaryRecord) Update() *SalaryRecordUpdateOne {
	return NewSalaryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SalaryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SalaryRecord) Unwrap() *SalaryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SalaryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SalaryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SalaryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_title=")
	builder.WriteString(_m.JobTitle)
	builder.WriteString(", ")
	builder.WriteString("median_salary=")
	builder.WriteString(fmt.Sprintf("%v", _m.MedianSalary))
	builder.WriteString(", ")
	builder.WriteString("market_demand=")
	builder.WriteString(_m.MarketDemand)
	builder.WriteString(", ")
	builder.WriteString("supply_demand_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplyDemandRatio))
	builder.WriteString(", ")
	builder.WriteString("riasec_code=")
	builder.WriteString(_m.RiasecCode)
	builder.WriteString(", ")
	builder.WriteString("recent_postings=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecentPostings))
	builder.WriteByte(')')
	return builder.String()
}

// SalaryRecords is a parsable slice of SalaryRecord.
type SalaryRecords []*SalaryRecord
