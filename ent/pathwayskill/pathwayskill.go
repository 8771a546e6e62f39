// Code generated by ent, DO NOT EDIT.

package pathwayskill

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pathwayskill type in the database.
	Label = "pathway_skill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPathwaySkillID holds the string denoting the pathway_skill_id field in the database.
	FieldPathwaySkillID = "pathway_skill_id"
	// FieldPathwayID holds the string denoting the pathway_id field in the database.
	FieldPathwayID = "pathway_id"
	// FieldSkillName holds the string denoting the skill_name field in the database.
	FieldSkillName = "skill_name"
	// FieldSequenceOrder holds the string denoting the sequence_order field in the database.
	FieldSequenceOrder = "sequence_order"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEstimatedHours holds the string denoting the estimated_hours field in the database.
	FieldEstimatedHours = "estimated_hours"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the pathwayskill in the database.
	Table = "pathway_skills"
)

// Columns holds all SQL columns for pathwayskill fields.
var Columns = []string{
	FieldID,
	FieldPathwaySkillID,
	FieldPathwayID,
	FieldSkillName,
	FieldSequenceOrder,
	FieldStatus,
	FieldEstimatedHours,
	FieldStartedAt,
	FieldCompletedAt,
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
	// PathwaySkillIDValidator is a validator for the "pathway_skill_id" field. It is called by the builders before save.
	PathwaySkillIDValidator func(string) error
	// PathwayIDValidator is a validator for the "pathway_id" field. It is called by the builders before save.
	PathwayIDValidator func(string) error
	// SkillNameValidator is a validator for the "skill_name" field. It is called by the builders before save.
	SkillNameValidator func(string) error
	// SequenceOrderValidator is a validator for the "sequence_order" field. It is called by the builders before save.
	SequenceOrderValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultEstimatedHours holds the default value on creation for the "estimated_hours" field.
	DefaultEstimatedHours int
)

// OrderOption defines the ordering options for the PathwaySkill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPathwaySkillID orders the results by the pathway_skill_id field.
func ByPathwaySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathwaySkillID, opts...).ToFunc()
}

// ByPathwayID orders the results by the pathway_id field.
func ByPathwayID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathwayID, opts...).ToFunc()
}

// BySkillName orders the results by the skill_name field.
func BySkillName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillName, opts...).ToFunc()
}

// BySequenceOrder orders the results by the sequence_order field.
func BySequenceOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceOrder, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEstimatedHours orders the results by the estimated_hours field.
func ByEstimatedHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedHours, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
