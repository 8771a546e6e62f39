// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/jobrecord"
)

// JobRecord is the model entity for the JobRecord schema.
type JobRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable identifier carried over from the source corpus
	Link string `json:"link,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Company holds the value of the "company" field.
	Company string `json:"company,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// Entry, Associate, Mid-Senior, Director
	Level string `json:"level,omitempty"`
	// Comma-separated requirement list as imported
	Skills string `json:"skills,omitempty"`
	// RiasecCode holds the value of the "riasec_code" field.
	RiasecCode string `json:"riasec_code,omitempty"`
	// RiasecConfidence holds the value of the "riasec_confidence" field.
	RiasecConfidence float64 `json:"riasec_confidence,omitempty"`
	// First letter of the riasec code
	PrimaryType  string `json:"primary_type,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobrecord.FieldRiasecConfidence:
			values[i] = new(sql.NullFloat64)
		case jobrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case jobrecord.FieldLink, jobrecord.FieldTitle, jobrecord.FieldCompany, jobrecord.FieldLocation, jobrecord.FieldLevel, jobrecord.FieldSkills, jobrecord.FieldRiasecCode, jobrecord.FieldPrimaryType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobRecord fields.
func (_m *JobRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case jobrecord.FieldLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field link", values[i])
			} else if value.Valid {
				_m.Link = value.String
			}
		case jobrecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case jobrecord.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case jobrecord.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case jobrecord.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case jobrecord.FieldSkills:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skills", values[i])
			} else if value.Valid {
				_m.Skills = value.String
			}
		case jobrecord.FieldRiasecCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field riasec_code", values[i])
			} else if value.Valid {
				_m.RiasecCode = value.String
			}
		case jobrecord.FieldRiasecConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field riasec_confidence", values[i])
			} else if value.Valid {
				_m.RiasecConfidence = value.Float64
			}
		case jobrecord.FieldPrimaryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_type", values[i])
			} else if value.Valid {
				_m.PrimaryType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobRecord.
// This includes values selected through modifiers, order, etc.
func (_m *JobRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this JobRecord.
// Note that you need to call JobRecord.Unwrap() before calling this method if this JobRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobRecord) Update() *JobRecordUpdateOne {
	return NewJobRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobRecord) Unwrap() *JobRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobRecord) String() string {
	var builder strings.Builder
	builder.WriteString("JobRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("link=")
	builder.WriteString(_m.Link)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("skills=")
	builder.WriteString(_m.Skills)
	builder.WriteString(", ")
	builder.WriteString("riasec_code=")
	builder.WriteString(_m.RiasecCode)
	builder.WriteString(", ")
	builder.WriteString("riasec_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiasecConfidence))
	builder.WriteString(", ")
	builder.WriteString("primary_type=")
	builder.WriteString(_m.PrimaryType)
	builder.WriteByte(')')
	return builder.String()
}

// JobRecords is a parsable slice of JobRecord.
type JobRecords []*JobRecord
