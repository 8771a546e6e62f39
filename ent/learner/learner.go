// Code generated by ent, DO NOT EDIT.

package learner

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learner type in the database.
	Label = "learner"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentJobTitle holds the string denoting the current_job_title field in the database.
	FieldCurrentJobTitle = "current_job_title"
	// FieldCurrentIndustry holds the string denoting the current_industry field in the database.
	FieldCurrentIndustry = "current_industry"
	// FieldYearsExperience holds the string denoting the years_experience field in the database.
	FieldYearsExperience = "years_experience"
	// FieldEducationLevel holds the string denoting the education_level field in the database.
	FieldEducationLevel = "education_level"
	// FieldWeeklyStudyHours holds the string denoting the weekly_study_hours field in the database.
	FieldWeeklyStudyHours = "weekly_study_hours"
	// FieldPreferredStudyTimes holds the string denoting the preferred_study_times field in the database.
	FieldPreferredStudyTimes = "preferred_study_times"
	// FieldHasFamilyObligations holds the string denoting the has_family_obligations field in the database.
	FieldHasFamilyObligations = "has_family_obligations"
	// FieldEmploymentStatus holds the string denoting the employment_status field in the database.
	FieldEmploymentStatus = "employment_status"
	// FieldPreferredFormat holds the string denoting the preferred_format field in the database.
	FieldPreferredFormat = "preferred_format"
	// FieldDisposition holds the string denoting the disposition field in the database.
	FieldDisposition = "disposition"
	// FieldRiasecCode holds the string denoting the riasec_code field in the database.
	FieldRiasecCode = "riasec_code"
	// FieldProfileComplete holds the string denoting the profile_complete field in the database.
	FieldProfileComplete = "profile_complete"
	// FieldCurrentMode holds the string denoting the current_mode field in the database.
	FieldCurrentMode = "current_mode"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learner in the database.
	Table = "learners"
)

// Columns holds all SQL columns for learner fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldEmail,
	FieldName,
	FieldStatus,
	FieldCurrentJobTitle,
	FieldCurrentIndustry,
	FieldYearsExperience,
	FieldEducationLevel,
	FieldWeeklyStudyHours,
	FieldPreferredStudyTimes,
	FieldHasFamilyObligations,
	FieldEmploymentStatus,
	FieldPreferredFormat,
	FieldDisposition,
	FieldRiasecCode,
	FieldProfileComplete,
	FieldCurrentMode,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCurrentJobTitle holds the default value on creation for the "current_job_title" field.
	DefaultCurrentJobTitle string
	// DefaultCurrentIndustry holds the default value on creation for the "current_industry" field.
	DefaultCurrentIndustry string
	// DefaultYearsExperience holds the default value on creation for the "years_experience" field.
	DefaultYearsExperience int
	// DefaultEducationLevel holds the default value on creation for the "education_level" field.
	DefaultEducationLevel string
	// DefaultWeeklyStudyHours holds the default value on creation for the "weekly_study_hours" field.
	DefaultWeeklyStudyHours int
	// DefaultPreferredStudyTimes holds the default value on creation for the "preferred_study_times" field.
	DefaultPreferredStudyTimes string
	// DefaultHasFamilyObligations holds the default value on creation for the "has_family_obligations" field.
	DefaultHasFamilyObligations bool
	// DefaultEmploymentStatus holds the default value on creation for the "employment_status" field.
	DefaultEmploymentStatus string
	// DefaultPreferredFormat holds the default value on creation for the "preferred_format" field.
	DefaultPreferredFormat string
	// DefaultDisposition holds the default value on creation for the "disposition" field.
	DefaultDisposition string
	// DefaultRiasecCode holds the default value on creation for the "riasec_code" field.
	DefaultRiasecCode string
	// DefaultProfileComplete holds the default value on creation for the "profile_complete" field.
	DefaultProfileComplete bool
	// DefaultCurrentMode holds the default value on creation for the "current_mode" field.
	DefaultCurrentMode string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Learner queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentJobTitle orders the results by the current_job_title field.
func ByCurrentJobTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentJobTitle, opts...).ToFunc()
}

// ByCurrentIndustry orders the results by the current_industry field.
func ByCurrentIndustry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentIndustry, opts...).ToFunc()
}

// ByYearsExperience orders the results by the years_experience field.
func ByYearsExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearsExperience, opts...).ToFunc()
}

// ByEducationLevel orders the results by the education_level field.
func ByEducationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEducationLevel, opts...).ToFunc()
}

// ByWeeklyStudyHours orders the results by the weekly_study_hours field.
func ByWeeklyStudyHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeklyStudyHours, opts...).ToFunc()
}

// ByPreferredStudyTimes orders the results by the preferred_study_times field.
func ByPreferredStudyTimes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredStudyTimes, opts...).ToFunc()
}

// ByHasFamilyObligations orders the results by the has_family_obligations field.
func ByHasFamilyObligations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasFamilyObligations, opts...).ToFunc()
}

// ByEmploymentStatus orders the results by the employment_status field.
func ByEmploymentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmploymentStatus, opts...).ToFunc()
}

// ByPreferredFormat orders the results by the preferred_format field.
func ByPreferredFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredFormat, opts...).ToFunc()
}

// ByDisposition orders the results by the disposition field.
func ByDisposition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisposition, opts...).ToFunc()
}

// ByRiasecCode orders the results by the riasec_code field.
func ByRiasecCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiasecCode, opts...).ToFunc()
}

// ByProfileComplete orders the results by the profile_complete field.
func ByProfileComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileComplete, opts...).ToFunc()
}

// ByCurrentMode orders the results by the current_mode field.
func ByCurrentMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentMode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
