// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/pathwayskill"
)

// PathwaySkill is the model entity for the PathwaySkill schema.
type PathwaySkill struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PathwaySkillID holds the value of the "pathway_skill_id" field.
	PathwaySkillID string `json:"pathway_skill_id,omitempty"`
	// PathwayID holds the value of the "pathway_id" field.
	PathwayID string `json:"pathway_id,omitempty"`
	// SkillName holds the value of the "skill_name" field.
	SkillName string `json:"skill_name,omitempty"`
	// SequenceOrder holds the value of the "sequence_order" field.
	SequenceOrder int `json:"sequence_order,omitempty"`
	// not_started, in_progress, or completed
	Status string `json:"status,omitempty"`
	// EstimatedHours holds the value of the "estimated_hours" field.
	EstimatedHours int `json:"estimated_hours,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathwaySkill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathwayskill.FieldID, pathwayskill.FieldSequenceOrder, pathwayskill.FieldEstimatedHours:
			values[i] = new(sql.NullInt64)
		case pathwayskill.FieldPathwaySkillID, pathwayskill.FieldPathwayID, pathwayskill.FieldSkillName, pathwayskill.FieldStatus:
			values[i] = new(sql.NullString)
		case pathwayskill.FieldStartedAt, pathwayskill.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathwaySkill fields.
func (_m *PathwaySkill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathwayskill.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathwayskill.FieldPathwaySkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pathway_skill_id", values[i])
			} else if value.Valid {
				_m.PathwaySkillID = value.String
			}
		case pathwayskill.FieldPathwayID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pathway_id", values[i])
			} else if value.Valid {
				_m.PathwayID = value.String
			}
		case pathwayskill.FieldSkillName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_name", values[i])
			} else if value.Valid {
				_m.SkillName = value.String
			}
		case pathwayskill.FieldSequenceOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_order", values[i])
			} else if value.Valid {
				_m.SequenceOrder = int(value.Int64)
			}
		case pathwayskill.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case pathwayskill.FieldEstimatedHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_hours", values[i])
			} else if value.Valid {
				_m.EstimatedHours = int(value.Int64)
			}
		case pathwayskill.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case pathwayskill.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathwaySkill.
// This includes values selected through modifiers, order, etc.
func (_m *PathwaySkill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PathwaySkill.
// Note that you need to call PathwaySkill.Unwrap() before calling this method if this PathwaySkill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathwaySkill) Update() *PathwaySkillUpdateOne {
	return NewPathwaySkillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathwaySkill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathwaySkill) Unwrap() *PathwaySkill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathwaySkill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathwaySkill) String() string {
	var builder strings.Builder
	builder.WriteString("PathwaySkill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pathway_skill_id=")
	builder.WriteString(_m.PathwaySkillID)
	builder.WriteString(", ")
	builder.WriteString("pathway_id=")
	builder.WriteString(_m.PathwayID)
	builder.WriteString(", ")
	builder.WriteString("skill_name=")
	builder.WriteString(_m.SkillName)
	builder.WriteString(", ")
	builder.WriteString("sequence_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceOrder))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("estimated_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedHours))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PathwaySkills is a parsable slice of PathwaySkill.
type PathwaySkills []*PathwaySkill
