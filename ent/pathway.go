// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/pathway"
)

// Pathway is the model entity for the Pathway schema.
type Pathway struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PathwayID holds the value of the "pathway_id" field.
	PathwayID string `json:"pathway_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID string `json:"goal_id,omitempty"`
	// active, completed, or abandoned
	Status string `json:"status,omitempty"`
	// TotalSkills holds the value of the "total_skills" field.
	TotalSkills int `json:"total_skills,omitempty"`
	// CompletedSkills holds the value of the "completed_skills" field.
	CompletedSkills int `json:"completed_skills,omitempty"`
	// EstimatedHours holds the value of the "estimated_hours" field.
	EstimatedHours int `json:"estimated_hours,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Pathway) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathway.FieldID, pathway.FieldTotalSkills, pathway.FieldCompletedSkills, pathway.FieldEstimatedHours:
			values[i] = new(sql.NullInt64)
		case pathway.FieldPathwayID, pathway.FieldLearnerID, pathway.FieldGoalID, pathway.FieldStatus:
			values[i] = new(sql.NullString)
		case pathway.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Pathway fields.
func (_m *Pathway) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathway.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathway.FieldPathwayID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pathway_id", values[i])
			} else if value.Valid {
				_m.PathwayID = value.String
			}
		case pathway.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case pathway.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case pathway.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case pathway.FieldTotalSkills:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_skills", values[i])
			} else if value.Valid {
				_m.TotalSkills = int(value.Int64)
			}
		case pathway.FieldCompletedSkills:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_skills", values[i])
			} else if value.Valid {
				_m.CompletedSkills = int(value.Int64)
			}
		case pathway.FieldEstimatedHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_hours", values[i])
			} else if value.Valid {
				_m.EstimatedHours = int(value.Int64)
			}
		case pathway.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Pathway.
// This includes values selected through modifiers, order, etc.
func (_m *Pathway) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Pathway.
// Note that you need to call Pathway.Unwrap() before calling this method if this Pathway
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Pathway) Update() *PathwayUpdateOne {
	return NewPathwayClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Pathway entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Pathway) Unwrap() *Pathway {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Pathway is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Pathway) String() string {
	var builder strings.Builder
	builder.WriteString("Pathway(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pathway_id=")
	builder.WriteString(_m.PathwayID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("total_skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSkills))
	builder.WriteString(", ")
	builder.WriteString("completed_skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedSkills))
	builder.WriteString(", ")
	builder.WriteString("estimated_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedHours))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Pathways is a parsable slice of Pathway.
type Pathways []*Pathway
