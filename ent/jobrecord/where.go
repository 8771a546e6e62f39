// Code generated by ent, DO NOT EDIT.

package jobrecord

import (
	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldID, id))
}

// Link applies equality check predicate on the "link" field. It's identical to LinkEQ.
func Link(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldLink, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldTitle, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCompany, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldLocation, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldLevel, v))
}

// Skills applies equality check predicate on the "skills" field. It's identical to SkillsEQ.
func Skills(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldSkills, v))
}

// RiasecCode applies equality check predicate on the "riasec_code" field. It's identical to RiasecCodeEQ.
func RiasecCode(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldRiasecCode, v))
}

// RiasecConfidence applies equality check predicate on the "riasec_confidence" field. It's identical to RiasecConfidenceEQ.
func RiasecConfidence(v float64) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldRiasecConfidence, v))
}

// PrimaryType applies equality check predicate on the "primary_type" field. It's identical to PrimaryTypeEQ.
func PrimaryType(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldPrimaryType, v))
}

// LinkEQ applies the EQ predicate on the "link" field.
func LinkEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldLink, v))
}

// LinkNEQ applies the NEQ predicate on the "link" field.
func LinkNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldLink, v))
}

// LinkIn applies the In predicate on the "link" field.
func LinkIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldLink, vs...))
}

// LinkNotIn applies the NotIn predicate on the "link" field.
func LinkNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldLink, vs...))
}

// LinkGT applies the GT predicate on the "link" field.
func LinkGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldLink, v))
}

// LinkGTE applies the GTE predicate on the "link" field.
func LinkGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldLink, v))
}

// LinkLT applies the LT predicate on the "link" field.
func LinkLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldLink, v))
}

// LinkLTE applies the LTE predicate on the "link" field.
func LinkLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldLink, v))
}

// LinkContains applies the Contains predicate on the "link" field.
func LinkContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldLink, v))
}

// LinkHasPrefix applies the HasPrefix predicate on the "link" field.
func LinkHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldLink, v))
}

// LinkHasSuffix applies the HasSuffix predicate on the "link" field.
func LinkHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldLink, v))
}

// LinkEqualFold applies the EqualFold predicate on the "link" field.
func LinkEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldLink, v))
}

// LinkContainsFold applies the ContainsFold predicate on the "link" field.
func LinkContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldLink, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldTitle, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldCompany, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldLocation, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldLevel, v))
}

// SkillsEQ applies the EQ predicate on the "skills" field.
func SkillsEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldSkills, v))
}

// SkillsNEQ applies the NEQ predicate on the "skills" field.
func SkillsNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldSkills, v))
}

// SkillsIn applies the In predicate on the "skills" field.
func SkillsIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldSkills, vs...))
}

// SkillsNotIn applies the NotIn predicate on the "skills" field.
func SkillsNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldSkills, vs...))
}

// SkillsGT applies the GT predicate on the "skills" field.
func SkillsGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldSkills, v))
}

// SkillsGTE applies the GTE predicate on the "skills" field.
func SkillsGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldSkills, v))
}

// SkillsLT applies the LT predicate on the "skills" field.
func SkillsLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldSkills, v))
}

// SkillsLTE applies the LTE predicate on the "skills" field.
func SkillsLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldSkills, v))
}

// SkillsContains applies the Contains predicate on the "skills" field.
func SkillsContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldSkills, v))
}

// SkillsHasPrefix applies the HasPrefix predicate on the "skills" field.
func SkillsHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldSkills, v))
}

// SkillsHasSuffix applies the HasSuffix predicate on the "skills" field.
func SkillsHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldSkills, v))
}

// SkillsEqualFold applies the EqualFold predicate on the "skills" field.
func SkillsEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldSkills, v))
}

// SkillsContainsFold applies the ContainsFold predicate on the "skills" field.
func SkillsContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldSkills, v))
}

// RiasecCodeEQ applies the EQ predicate on the "riasec_code" field.
func RiasecCodeEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldRiasecCode, v))
}

// RiasecCodeNEQ applies the NEQ predicate on the "riasec_code" field.
func RiasecCodeNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldRiasecCode, v))
}

// RiasecCodeIn applies the In predicate on the "riasec_code" field.
func RiasecCodeIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldRiasecCode, vs...))
}

// RiasecCodeNotIn applies the NotIn predicate on the "riasec_code" field.
func RiasecCodeNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldRiasecCode, vs...))
}

// RiasecCodeGT applies the GT predicate on the "riasec_code" field.
func RiasecCodeGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldRiasecCode, v))
}

// RiasecCodeGTE applies the GTE predicate on the "riasec_code" field.
func RiasecCodeGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldRiasecCode, v))
}

// RiasecCodeLT applies the LT predicate on the "riasec_code" field.
func RiasecCodeLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldRiasecCode, v))
}

// RiasecCodeLTE applies the LTE predicate on the "riasec_code" field.
func RiasecCodeLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldRiasecCode, v))
}

// RiasecCodeContains applies the Contains predicate on the "riasec_code" field.
func RiasecCodeContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldRiasecCode, v))
}

// RiasecCodeHasPrefix applies the HasPrefix predicate on the "riasec_code" field.
func RiasecCodeHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldRiasecCode, v))
}

// RiasecCodeHasSuffix applies the HasSuffix predicate on the "riasec_code" field.
func RiasecCodeHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldRiasecCode, v))
}

// RiasecCodeEqualFold applies the EqualFold predicate on the "riasec_code" field.
func RiasecCodeEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldRiasecCode, v))
}

// RiasecCodeContainsFold applies the ContainsFold predicate on the "riasec_code" field.
func RiasecCodeContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldRiasecCode, v))
}

// RiasecConfidenceEQ applies the EQ predicate on the "riasec_confidence" field.
func RiasecConfidenceEQ(v float64) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldRiasecConfidence, v))
}

// RiasecConfidenceNEQ applies the NEQ predicate on the "riasec_confidence" field.
func RiasecConfidenceNEQ(v float64) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldRiasecConfidence, v))
}

// RiasecConfidenceIn applies the In predicate on the "riasec_confidence" field.
func RiasecConfidenceIn(vs ...float64) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldRiasecConfidence, vs...))
}

// RiasecConfidenceNotIn applies the NotIn predicate on the "riasec_confidence" field.
func RiasecConfidenceNotIn(vs ...float64) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldRiasecConfidence, vs...))
}

// RiasecConfidenceGT applies the GT predicate on the "riasec_confidence" field.
func RiasecConfidenceGT(v float64) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldRiasecConfidence, v))
}

// RiasecConfidenceGTE applies the GTE predicate on the "riasec_confidence" field.
func RiasecConfidenceGTE(v float64) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldRiasecConfidence, v))
}

// RiasecConfidenceLT applies the LT predicate on the "riasec_confidence" field.
func RiasecConfidenceLT(v float64) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldRiasecConfidence, v))
}

// RiasecConfidenceLTE applies the LTE predicate on the "riasec_confidence" field.
func RiasecConfidenceLTE(v float64) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldRiasecConfidence, v))
}

// PrimaryTypeEQ applies the EQ predicate on the "primary_type" field.
func PrimaryTypeEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldPrimaryType, v))
}

// PrimaryTypeNEQ applies the NEQ predicate on the "primary_type" field.
func PrimaryTypeNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldPrimaryType, v))
}

// PrimaryTypeIn applies the In predicate on the "primary_type" field.
func PrimaryTypeIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldPrimaryType, vs...))
}

// PrimaryTypeNotIn applies the NotIn predicate on the "primary_type" field.
func PrimaryTypeNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldPrimaryType, vs...))
}

// PrimaryTypeGT applies the GT predicate on the "primary_type" field.
func PrimaryTypeGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldPrimaryType, v))
}

// PrimaryTypeGTE applies the GTE predicate on the "primary_type" field.
func PrimaryTypeGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldPrimaryType, v))
}

// PrimaryTypeLT applies the LT predicate on the "primary_type" field.
func PrimaryTypeLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldPrimaryType, v))
}

// PrimaryTypeLTE applies the LTE predicate on the "primary_type" field.
func PrimaryTypeLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldPrimaryType, v))
}

// PrimaryTypeContains applies the Contains predicate on the "primary_type" field.
func PrimaryTypeContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldPrimaryType, v))
}

// PrimaryTypeHasPrefix applies the HasPrefix predicate on the "primary_type" field.
func PrimaryTypeHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldPrimaryType, v))
}

// PrimaryTypeHasSuffix applies the HasSuffix predicate on the "primary_type" field.
func PrimaryTypeHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldPrimaryType, v))
}

// PrimaryTypeEqualFold applies the EqualFold predicate on the "primary_type" field.
func PrimaryTypeEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldPrimaryType, v))
}

// PrimaryTypeContainsFold applies the ContainsFold predicate on the "primary_type" field.
func PrimaryTypeContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldPrimaryType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobRecord) predicate.JobRecord {
	return predicate.JobRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobRecord) predicate.JobRecord {
	return predicate.JobRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobRecord) predicate.JobRecord {
	return predicate.JobRecord(sql.NotPredicates(p))
}
