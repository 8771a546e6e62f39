// Code generated by ent, DO NOT EDIT.

package pathway

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pathway type in the database.
	Label = "pathway"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPathwayID holds the string denoting the pathway_id field in the database.
	FieldPathwayID = "pathway_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalSkills holds the string denoting the total_skills field in the database.
	FieldTotalSkills = "total_skills"
	// FieldCompletedSkills holds the string denoting the completed_skills field in the database.
	FieldCompletedSkills = "completed_skills"
	// FieldEstimatedHours holds the string denoting the estimated_hours field in the database.
	FieldEstimatedHours = "estimated_hours"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the pathway in the database.
	Table = "pathways"
)

// Columns holds all SQL columns for pathway fields.
var Columns = []string{
	FieldID,
	FieldPathwayID,
	FieldLearnerID,
	FieldGoalID,
	FieldStatus,
	FieldTotalSkills,
	FieldCompletedSkills,
	FieldEstimatedHours,
	FieldCreatedAt,
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
	// PathwayIDValidator is a validator for the "pathway_id" field. It is called by the builders before save.
	PathwayIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	GoalIDValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultTotalSkills holds the default value on creation for the "total_skills" field.
	DefaultTotalSkills int
	// DefaultCompletedSkills holds the default value on creation for the "completed_skills" field.
	DefaultCompletedSkills int
	// DefaultEstimatedHours holds the default value on creation for the "estimated_hours" field.
	DefaultEstimatedHours int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Pathway queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPathwayID orders the results by the pathway_id field.
func ByPathwayID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathwayID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalSkills orders the results by the total_skills field.
func ByTotalSkills(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSkills, opts...).ToFunc()
}

// ByCompletedSkills orders the results by the completed_skills field.
func ByCompletedSkills(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedSkills, opts...).ToFunc()
}

// ByEstimatedHours orders the results by the estimated_hours field.
func ByEstimatedHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedHours, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
