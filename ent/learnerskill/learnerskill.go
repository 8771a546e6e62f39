// Code generated by ent, DO NOT EDIT.

package learnerskill

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnerskill type in the database.
	Label = "learner_skill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldSkillName holds the string denoting the skill_name field in the database.
	FieldSkillName = "skill_name"
	// FieldProficiencyLevel holds the string denoting the proficiency_level field in the database.
	FieldProficiencyLevel = "proficiency_level"
	// FieldEvidenceSource holds the string denoting the evidence_source field in the database.
	FieldEvidenceSource = "evidence_source"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the learnerskill in the database.
	Table = "learner_skills"
)

// Columns holds all SQL columns for learnerskill fields.
var Columns = []string{
	FieldID,
	FieldSkillID,
	FieldLearnerID,
	FieldSkillName,
	FieldProficiencyLevel,
	FieldEvidenceSource,
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
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// SkillNameValidator is a validator for the "skill_name" field. It is called by the builders before save.
	SkillNameValidator func(string) error
	// ProficiencyLevelValidator is a validator for the "proficiency_level" field. It is called by the builders before save.
	ProficiencyLevelValidator func(string) error
	// DefaultEvidenceSource holds the default value on creation for the "evidence_source" field.
	DefaultEvidenceSource string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearnerSkill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// BySkillName orders the results by the skill_name field.
func BySkillName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillName, opts...).ToFunc()
}

// ByProficiencyLevel orders the results by the proficiency_level field.
func ByProficiencyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProficiencyLevel, opts...).ToFunc()
}

// ByEvidenceSource orders the results by the evidence_source field.
func ByEvidenceSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceSource, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
