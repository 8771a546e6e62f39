// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/learnerskill"
)

// LearnerSkill is the model entity for the LearnerSkill schema.
type LearnerSkill struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// SkillName holds the value of the "skill_name" field.
	SkillName string `json:"skill_name,omitempty"`
	// none, beginner, intermediate, advanced, or expert
	ProficiencyLevel string `json:"proficiency_level,omitempty"`
	// self_reported, validated, or credential
	EvidenceSource string `json:"evidence_source,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerSkill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnerskill.FieldID:
			values[i] = new(sql.NullInt64)
		case learnerskill.FieldSkillID, learnerskill.FieldLearnerID, learnerskill.FieldSkillName, learnerskill.FieldProficiencyLevel, learnerskill.FieldEvidenceSource:
			values[i] = new(sql.NullString)
		case learnerskill.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerSkill fields.
func (_m *LearnerSkill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnerskill.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnerskill.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case learnerskill.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case learnerskill.FieldSkillName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_name", values[i])
			} else if value.Valid {
				_m.SkillName = value.String
			}
		case learnerskill.FieldProficiencyLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proficiency_level", values[i])
			} else if value.Valid {
				_m.ProficiencyLevel = value.String
			}
		case learnerskill.FieldEvidenceSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_source", values[i])
			} else if value.Valid {
				_m.EvidenceSource = value.String
			}
		case learnerskill.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerSkill.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerSkill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerSkill.
// Note that you need to call LearnerSkill.Unwrap() before calling this method if this LearnerSkill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerSkill) Update() *LearnerSkillUpdateOne {
	return NewLearnerSkillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerSkill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerSkill) Unwrap() *LearnerSkill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerSkill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerSkill) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerSkill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("skill_name=")
	builder.WriteString(_m.SkillName)
	builder.WriteString(", ")
	builder.WriteString("proficiency_level=")
	builder.WriteString(_m.ProficiencyLevel)
	builder.WriteString(", ")
	builder.WriteString("evidence_source=")
	builder.WriteString(_m.EvidenceSource)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerSkills is a parsable slice of LearnerSkill.
type LearnerSkills []*LearnerSkill
