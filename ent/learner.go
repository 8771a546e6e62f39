// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/learner"
)

// Learner is the model entity for the Learner schema.
type Learner struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID identifying the learner across tables
	LearnerID string `json:"learner_id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// new or active
	Status string `json:"status,omitempty"`
	// CurrentJobTitle holds the value of the "current_job_title" field.
	CurrentJobTitle string `json:"current_job_title,omitempty"`
	// CurrentIndustry holds the value of the "current_industry" field.
	CurrentIndustry string `json:"current_industry,omitempty"`
	// YearsExperience holds the value of the "years_experience" field.
	YearsExperience int `json:"years_experience,omitempty"`
	// EducationLevel holds the value of the "education_level" field.
	EducationLevel string `json:"education_level,omitempty"`
	// WeeklyStudyHours holds the value of the "weekly_study_hours" field.
	WeeklyStudyHours int `json:"weekly_study_hours,omitempty"`
	// PreferredStudyTimes holds the value of the "preferred_study_times" field.
	PreferredStudyTimes string `json:"preferred_study_times,omitempty"`
	// HasFamilyObligations holds the value of the "has_family_obligations" field.
	HasFamilyObligations bool `json:"has_family_obligations,omitempty"`
	// EmploymentStatus holds the value of the "employment_status" field.
	EmploymentStatus string `json:"employment_status,omitempty"`
	// PreferredFormat holds the value of the "preferred_format" field.
	PreferredFormat string `json:"preferred_format,omitempty"`
	// unclear, discontent, promotion_seeking, or called
	Disposition string `json:"disposition,omitempty"`
	// Inferred 3-letter code, empty until classified
	RiasecCode string `json:"riasec_code,omitempty"`
	// ProfileComplete holds the value of the "profile_complete" field.
	ProfileComplete bool `json:"profile_complete,omitempty"`
	// Last resolved operating mode, empty for a new learner
	CurrentMode string `json:"current_mode,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Learner) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learner.FieldHasFamilyObligations, learner.FieldProfileComplete:
			values[i] = new(sql.NullBool)
		case learner.FieldID, learner.FieldYearsExperience, learner.FieldWeeklyStudyHours:
			values[i] = new(sql.NullInt64)
		case learner.FieldLearnerID, learner.FieldEmail, learner.FieldName, learner.FieldStatus, learner.FieldCurrentJobTitle, learner.FieldCurrentIndustry, learner.FieldEducationLevel, learner.FieldPreferredStudyTimes, learner.FieldEmploymentStatus, learner.FieldPreferredFormat, learner.FieldDisposition, learner.FieldRiasecCode, learner.FieldCurrentMode:
			values[i] = new(sql.NullString)
		case learner.FieldCreatedAt, learner.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Learner fields.
func (_m *Learner) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learner.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learner.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case learner.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case learner.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case learner.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case learner.FieldCurrentJobTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_job_title", values[i])
			} else if value.Valid {
				_m.CurrentJobTitle = value.String
			}
		case learner.FieldCurrentIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_industry", values[i])
			} else if value.Valid {
				_m.CurrentIndustry = value.String
			}
		case learner.FieldYearsExperience:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field years_experience", values[i])
			} else if value.Valid {
				_m.YearsExperience = int(value.Int64)
			}
		case learner.FieldEducationLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field education_level", values[i])
			} else if value.Valid {
				_m.EducationLevel = value.String
			}
		case learner.FieldWeeklyStudyHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weekly_study_hours", values[i])
			} else if value.Valid {
				_m.WeeklyStudyHours = int(value.Int64)
			}
		case learner.FieldPreferredStudyTimes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_study_times", values[i])
			} else if value.Valid {
				_m.PreferredStudyTimes = value.String
			}
		case learner.FieldHasFamilyObligations:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_family_obligations", values[i])
			} else if value.Valid {
				_m.HasFamilyObligations = value.Bool
			}
		case learner.FieldEmploymentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employment_status", values[i])
			} else if value.Valid {
				_m.EmploymentStatus = value.String
			}
		case learner.FieldPreferredFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_format", values[i])
			} else if value.Valid {
				_m.PreferredFormat = value.String
			}
		case learner.FieldDisposition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field disposition", values[i])
			} else if value.Valid {
				_m.Disposition = value.String
			}
		case learner.FieldRiasecCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field riasec_code", values[i])
			} else if value.Valid {
				_m.RiasecCode = value.String
			}
		case learner.FieldProfileComplete:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field profile_complete", values[i])
			} else if value.Valid {
				_m.ProfileComplete = value.Bool
			}
		case learner.FieldCurrentMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_mode", values[i])
			} else if value.Valid {
				_m.CurrentMode = value.String
			}
		case learner.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learner.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Learner.
// This includes values selected through modifiers, order, etc.
func (_m *Learner) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Learner.
// Note that you need to call Learner.Unwrap() before calling this method if this Learner
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Learner) Update() *LearnerUpdateOne {
	return NewLearnerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Learner entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Learner) Unwrap() *Learner {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Learner is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Learner) String() string {
	var builder strings.Builder
	builder.WriteString("Learner(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("current_job_title=")
	builder.WriteString(_m.CurrentJobTitle)
	builder.WriteString(", ")
	builder.WriteString("current_industry=")
	builder.WriteString(_m.CurrentIndustry)
	builder.WriteString(", ")
	builder.WriteString("years_experience=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearsExperience))
	builder.WriteString(", ")
	builder.WriteString("education_level=")
	builder.WriteString(_m.EducationLevel)
	builder.WriteString(", ")
	builder.WriteString("weekly_study_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeeklyStudyHours))
	builder.WriteString(", ")
	builder.WriteString("preferred_study_times=")
	builder.WriteString(_m.PreferredStudyTimes)
	builder.WriteString(", ")
	builder.WriteString("has_family_obligations=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasFamilyObligations))
	builder.WriteString(", ")
	builder.WriteString("employment_status=")
	builder.WriteString(_m.EmploymentStatus)
	builder.WriteString(", ")
	builder.WriteString("preferred_format=")
	builder.WriteString(_m.PreferredFormat)
	builder.WriteString(", ")
	builder.WriteString("disposition=")
	builder.WriteString(_m.Disposition)
	builder.WriteString(", ")
	builder.WriteString("riasec_code=")
	builder.WriteString(_m.RiasecCode)
	builder.WriteString(", ")
	builder.WriteString("profile_complete=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileComplete))
	builder.WriteString(", ")
	builder.WriteString("current_mode=")
	builder.WriteString(_m.CurrentMode)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Learners is a parsable slice of Learner.
type Learners []*Learner
