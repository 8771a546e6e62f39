// Code generated by ent, DO NOT EDIT.

package jobrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the jobrecord type in the database.
	Label = "job_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLink holds the string denoting the link field in the database.
	FieldLink = "link"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldRiasecCode holds the string denoting the riasec_code field in the database.
	FieldRiasecCode = "riasec_code"
	// FieldRiasecConfidence holds the string denoting the riasec_confidence field in the database.
	FieldRiasecConfidence = "riasec_confidence"
	// FieldPrimaryType holds the string denoting the primary_type field in the database.
	FieldPrimaryType = "primary_type"
	// Table holds the table name of the jobrecord in the database.
	Table = "job_records"
)

// Columns holds all SQL columns for jobrecord fields.
var Columns = []string{
	FieldID,
	FieldLink,
	FieldTitle,
	FieldCompany,
	FieldLocation,
	FieldLevel,
	FieldSkills,
	FieldRiasecCode,
	FieldRiasecConfidence,
	FieldPrimaryType,
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
	// LinkValidator is a validator for the "link" field. It is called by the builders before save.
	LinkValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultCompany holds the default value on creation for the "company" field.
	DefaultCompany string
	// DefaultLocation holds the default value on creation for the "location" field.
	DefaultLocation string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// DefaultSkills holds the default value on creation for the "skills" field.
	DefaultSkills string
	// DefaultRiasecCode holds the default value on creation for the "riasec_code" field.
	DefaultRiasecCode string
	// DefaultRiasecConfidence holds the default value on creation for the "riasec_confidence" field.
	DefaultRiasecConfidence float64
	// DefaultPrimaryType holds the default value on creation for the "primary_type" field.
	DefaultPrimaryType string
)

// OrderOption defines the ordering options for the JobRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLink orders the results by the link field.
func ByLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLink, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// BySkills orders the results by the skills field.
func BySkills(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkills, opts...).ToFunc()
}

// ByRiasecCode orders the results by the riasec_code field.
func ByRiasecCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiasecCode, opts...).ToFunc()
}

// ByRiasecConfidence orders the results by the riasec_confidence field.
func ByRiasecConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiasecConfidence, opts...).ToFunc()
}

// ByPrimaryType orders the results by the primary_type field.
func ByPrimaryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryType, opts...).ToFunc()
}
