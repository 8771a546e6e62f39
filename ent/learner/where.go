// Code generated by ent, DO NOT EDIT.

package learner

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldLearnerID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldEmail, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldName, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldStatus, v))
}

// CurrentJobTitle applies equality check predicate on the "current_job_title" field. It's identical to CurrentJobTitleEQ.
func CurrentJobTitle(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCurrentJobTitle, v))
}

// CurrentIndustry applies equality check predicate on the "current_industry" field. It's identical to CurrentIndustryEQ.
func CurrentIndustry(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCurrentIndustry, v))
}

// YearsExperience applies equality check predicate on the "years_experience" field. It's identical to YearsExperienceEQ.
func YearsExperience(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldYearsExperience, v))
}

// EducationLevel applies equality check predicate on the "education_level" field. It's identical to EducationLevelEQ.
func EducationLevel(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldEducationLevel, v))
}

// WeeklyStudyHours applies equality check predicate on the "weekly_study_hours" field. It's identical to WeeklyStudyHoursEQ.
func WeeklyStudyHours(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldWeeklyStudyHours, v))
}

// PreferredStudyTimes applies equality check predicate on the "preferred_study_times" field. It's identical to PreferredStudyTimesEQ.
func PreferredStudyTimes(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldPreferredStudyTimes, v))
}

// HasFamilyObligations applies equality check predicate on the "has_family_obligations" field. It's identical to HasFamilyObligationsEQ.
func HasFamilyObligations(v bool) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldHasFamilyObligations, v))
}

// EmploymentStatus applies equality check predicate on the "employment_status" field. It's identical to EmploymentStatusEQ.
func EmploymentStatus(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldEmploymentStatus, v))
}

// PreferredFormat applies equality check predicate on the "preferred_format" field. It's identical to PreferredFormatEQ.
func PreferredFormat(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldPreferredFormat, v))
}

// Disposition applies equality check predicate on the "disposition" field. It's identical to DispositionEQ.
func Disposition(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldDisposition, v))
}

// RiasecCode applies equality check predicate on the "riasec_code" field. It's identical to RiasecCodeEQ.
func RiasecCode(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldRiasecCode, v))
}

// ProfileComplete applies equality check predicate on the "profile_complete" field. It's identical to ProfileCompleteEQ.
func ProfileComplete(v bool) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldProfileComplete, v))
}

// CurrentMode applies equality check predicate on the "current_mode" field. It's identical to CurrentModeEQ.
func CurrentMode(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCurrentMode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldLearnerID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldEmail, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldStatus, v))
}

// CurrentJobTitleEQ applies the EQ predicate on the "current_job_title" field.
func CurrentJobTitleEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCurrentJobTitle, v))
}

// CurrentJobTitleNEQ applies the NEQ predicate on the "current_job_title" field.
func CurrentJobTitleNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldCurrentJobTitle, v))
}

// CurrentJobTitleIn applies the In predicate on the "current_job_title" field.
func CurrentJobTitleIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldCurrentJobTitle, vs...))
}

// CurrentJobTitleNotIn applies the NotIn predicate on the "current_job_title" field.
func CurrentJobTitleNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldCurrentJobTitle, vs...))
}

// CurrentJobTitleGT applies the GT predicate on the "current_job_title" field.
func CurrentJobTitleGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldCurrentJobTitle, v))
}

// CurrentJobTitleGTE applies the GTE predicate on the "current_job_title" field.
func CurrentJobTitleGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldCurrentJobTitle, v))
}

// CurrentJobTitleLT applies the LT predicate on the "current_job_title" field.
func CurrentJobTitleLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldCurrentJobTitle, v))
}

// CurrentJobTitleLTE applies the LTE predicate on the "current_job_title" field.
func CurrentJobTitleLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldCurrentJobTitle, v))
}

// CurrentJobTitleContains applies the Contains predicate on the "current_job_title" field.
func CurrentJobTitleContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldCurrentJobTitle, v))
}

// CurrentJobTitleHasPrefix applies the HasPrefix predicate on the "current_job_title" field.
func CurrentJobTitleHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldCurrentJobTitle, v))
}

// CurrentJobTitleHasSuffix applies the HasSuffix predicate on the "current_job_title" field.
func CurrentJobTitleHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldCurrentJobTitle, v))
}

// CurrentJobTitleEqualFold applies the EqualFold predicate on the "current_job_title" field.
func CurrentJobTitleEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldCurrentJobTitle, v))
}

// CurrentJobTitleContainsFold applies the ContainsFold predicate on the "current_job_title" field.
func CurrentJobTitleContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldCurrentJobTitle, v))
}

// CurrentIndustryEQ applies the EQ predicate on the "current_industry" field.
func CurrentIndustryEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCurrentIndustry, v))
}

// CurrentIndustryNEQ applies the NEQ predicate on the "current_industry" field.
func CurrentIndustryNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldCurrentIndustry, v))
}

// CurrentIndustryIn applies the In predicate on the "current_industry" field.
func CurrentIndustryIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldCurrentIndustry, vs...))
}

// CurrentIndustryNotIn applies the NotIn predicate on the "current_industry" field.
func CurrentIndustryNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldCurrentIndustry, vs...))
}

// CurrentIndustryGT applies the GT predicate on the "current_industry" field.
func CurrentIndustryGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldCurrentIndustry, v))
}

// CurrentIndustryGTE applies the GTE predicate on the "current_industry" field.
func CurrentIndustryGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldCurrentIndustry, v))
}

// CurrentIndustryLT applies the LT predicate on the "current_industry" field.
func CurrentIndustryLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldCurrentIndustry, v))
}

// CurrentIndustryLTE applies the LTE predicate on the "current_industry" field.
func CurrentIndustryLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldCurrentIndustry, v))
}

// CurrentIndustryContains applies the Contains predicate on the "current_industry" field.
func CurrentIndustryContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldCurrentIndustry, v))
}

// CurrentIndustryHasPrefix applies the HasPrefix predicate on the "current_industry" field.
func CurrentIndustryHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldCurrentIndustry, v))
}

// CurrentIndustryHasSuffix applies the HasSuffix predicate on the "current_industry" field.
func CurrentIndustryHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldCurrentIndustry, v))
}

// CurrentIndustryEqualFold applies the EqualFold predicate on the "current_industry" field.
func CurrentIndustryEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldCurrentIndustry, v))
}

// CurrentIndustryContainsFold applies the ContainsFold predicate on the "current_industry" field.
func CurrentIndustryContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldCurrentIndustry, v))
}

// YearsExperienceEQ applies the EQ predicate on the "years_experience" field.
func YearsExperienceEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldYearsExperience, v))
}

// YearsExperienceNEQ applies the NEQ predicate on the "years_experience" field.
func YearsExperienceNEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldYearsExperience, v))
}

// YearsExperienceIn applies the In predicate on the "years_experience" field.
func YearsExperienceIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldYearsExperience, vs...))
}

// YearsExperienceNotIn applies the NotIn predicate on the "years_experience" field.
func YearsExperienceNotIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldYearsExperience, vs...))
}

// YearsExperienceGT applies the GT predicate on the "years_experience" field.
func YearsExperienceGT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldYearsExperience, v))
}

// YearsExperienceGTE applies the GTE predicate on the "years_experience" field.
func YearsExperienceGTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldYearsExperience, v))
}

// YearsExperienceLT applies the LT predicate on the "years_experience" field.
func YearsExperienceLT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldYearsExperience, v))
}

// YearsExperienceLTE applies the LTE predicate on the "years_experience" field.
func YearsExperienceLTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldYearsExperience, v))
}

// EducationLevelEQ applies the EQ predicate on the "education_level" field.
func EducationLevelEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldEducationLevel, v))
}

// EducationLevelNEQ applies the NEQ predicate on the "education_level" field.
func EducationLevelNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldEducationLevel, v))
}

// EducationLevelIn applies the In predicate on the "education_level" field.
func EducationLevelIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldEducationLevel, vs...))
}

// EducationLevelNotIn applies the NotIn predicate on the "education_level" field.
func EducationLevelNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldEducationLevel, vs...))
}

// EducationLevelGT applies the GT predicate on the "education_level" field.
func EducationLevelGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldEducationLevel, v))
}

// EducationLevelGTE applies the GTE predicate on the "education_level" field.
func EducationLevelGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldEducationLevel, v))
}

// EducationLevelLT applies the LT predicate on the "education_level" field.
func EducationLevelLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldEducationLevel, v))
}

// EducationLevelLTE applies the LTE predicate on the "education_level" field.
func EducationLevelLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldEducationLevel, v))
}

// EducationLevelContains applies the Contains predicate on the "education_level" field.
func EducationLevelContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldEducationLevel, v))
}

// EducationLevelHasPrefix applies the HasPrefix predicate on the "education_level" field.
func EducationLevelHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldEducationLevel, v))
}

// EducationLevelHasSuffix applies the HasSuffix predicate on the "education_level" field.
func EducationLevelHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldEducationLevel, v))
}

// EducationLevelEqualFold applies the EqualFold predicate on the "education_level" field.
func EducationLevelEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldEducationLevel, v))
}

// EducationLevelContainsFold applies the ContainsFold predicate on the "education_level" field.
func EducationLevelContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldEducationLevel, v))
}

// WeeklyStudyHoursEQ applies the EQ predicate on the "weekly_study_hours" field.
func WeeklyStudyHoursEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldWeeklyStudyHours, v))
}

// WeeklyStudyHoursNEQ applies the NEQ predicate on the "weekly_study_hours" field.
func WeeklyStudyHoursNEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldWeeklyStudyHours, v))
}

// WeeklyStudyHoursIn applies the In predicate on the "weekly_study_hours" field.
func WeeklyStudyHoursIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldWeeklyStudyHours, vs...))
}

// WeeklyStudyHoursNotIn applies the NotIn predicate on the "weekly_study_hours" field.
func WeeklyStudyHoursNotIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldWeeklyStudyHours, vs...))
}

// WeeklyStudyHoursGT applies the GT predicate on the "weekly_study_hours" field.
func WeeklyStudyHoursGT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldWeeklyStudyHours, v))
}

// WeeklyStudyHoursGTE applies the GTE predicate on the "weekly_study_hours" field.
func WeeklyStudyHoursGTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldWeeklyStudyHours, v))
}

// WeeklyStudyHoursLT applies the LT predicate on the "weekly_study_hours" field.
func WeeklyStudyHoursLT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldWeeklyStudyHours, v))
}

// WeeklyStudyHoursLTE applies the LTE predicate on the "weekly_study_hours" field.
func WeeklyStudyHoursLTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldWeeklyStudyHours, v))
}

// PreferredStudyTimesEQ applies the EQ predicate on the "preferred_study_times" field.
func PreferredStudyTimesEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldPreferredStudyTimes, v))
}

// PreferredStudyTimesNEQ applies the NEQ predicate on the "preferred_study_times" field.
func PreferredStudyTimesNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldPreferredStudyTimes, v))
}

// PreferredStudyTimesIn applies the In predicate on the "preferred_study_times" field.
func PreferredStudyTimesIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldPreferredStudyTimes, vs...))
}

// PreferredStudyTimesNotIn applies the NotIn predicate on the "preferred_study_times" field.
func PreferredStudyTimesNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldPreferredStudyTimes, vs...))
}

// PreferredStudyTimesGT applies the GT predicate on the "preferred_study_times" field.
func PreferredStudyTimesGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldPreferredStudyTimes, v))
}

// PreferredStudyTimesGTE applies the GTE predicate on the "preferred_study_times" field.
func PreferredStudyTimesGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldPreferredStudyTimes, v))
}

// PreferredStudyTimesLT applies the LT predicate on the "preferred_study_times" field.
func PreferredStudyTimesLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldPreferredStudyTimes, v))
}

// PreferredStudyTimesLTE applies the LTE predicate on the "preferred_study_times" field.
func PreferredStudyTimesLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldPreferredStudyTimes, v))
}

// PreferredStudyTimesContains applies the Contains predicate on the "preferred_study_times" field.
func PreferredStudyTimesContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldPreferredStudyTimes, v))
}

// PreferredStudyTimesHasPrefix applies the HasPrefix predicate on the "preferred_study_times" field.
func PreferredStudyTimesHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldPreferredStudyTimes, v))
}

// PreferredStudyTimesHasSuffix applies the HasSuffix predicate on the "preferred_study_times" field.
func PreferredStudyTimesHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldPreferredStudyTimes, v))
}

// PreferredStudyTimesEqualFold applies the EqualFold predicate on the "preferred_study_times" field.
func PreferredStudyTimesEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldPreferredStudyTimes, v))
}

// PreferredStudyTimesContainsFold applies the ContainsFold predicate on the "preferred_study_times" field.
func PreferredStudyTimesContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldPreferredStudyTimes, v))
}

// HasFamilyObligationsEQ applies the EQ predicate on the "has_family_obligations" field.
func HasFamilyObligationsEQ(v bool) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldHasFamilyObligations, v))
}

// HasFamilyObligationsNEQ applies the NEQ predicate on the "has_family_obligations" field.
func HasFamilyObligationsNEQ(v bool) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldHasFamilyObligations, v))
}

// EmploymentStatusEQ applies the EQ predicate on the "employment_status" field.
func EmploymentStatusEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldEmploymentStatus, v))
}

// EmploymentStatusNEQ applies the NEQ predicate on the "employment_status" field.
func EmploymentStatusNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldEmploymentStatus, v))
}

// EmploymentStatusIn applies the In predicate on the "employment_status" field.
func EmploymentStatusIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldEmploymentStatus, vs...))
}

// EmploymentStatusNotIn applies the NotIn predicate on the "employment_status" field.
func EmploymentStatusNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldEmploymentStatus, vs...))
}

// EmploymentStatusGT applies the GT predicate on the "employment_status" field.
func EmploymentStatusGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldEmploymentStatus, v))
}

// EmploymentStatusGTE applies the GTE predicate on the "employment_status" field.
func EmploymentStatusGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldEmploymentStatus, v))
}

// EmploymentStatusLT applies the LT predicate on the "employment_status" field.
func EmploymentStatusLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldEmploymentStatus, v))
}

// EmploymentStatusLTE applies the LTE predicate on the "employment_status" field.
func EmploymentStatusLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldEmploymentStatus, v))
}

// EmploymentStatusContains applies the Contains predicate on the "employment_status" field.
func EmploymentStatusContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldEmploymentStatus, v))
}

// EmploymentStatusHasPrefix applies the HasPrefix predicate on the "employment_status" field.
func EmploymentStatusHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldEmploymentStatus, v))
}

// EmploymentStatusHasSuffix applies the HasSuffix predicate on the "employment_status" field.
func EmploymentStatusHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldEmploymentStatus, v))
}

// EmploymentStatusEqualFold applies the EqualFold predicate on the "employment_status" field.
func EmploymentStatusEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldEmploymentStatus, v))
}

// EmploymentStatusContainsFold applies the ContainsFold predicate on the "employment_status" field.
func EmploymentStatusContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldEmploymentStatus, v))
}

// PreferredFormatEQ applies the EQ predicate on the "preferred_format" field.
func PreferredFormatEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldPreferredFormat, v))
}

// PreferredFormatNEQ applies the NEQ predicate on the "preferred_format" field.
func PreferredFormatNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldPreferredFormat, v))
}

// PreferredFormatIn applies the In predicate on the "preferred_format" field.
func PreferredFormatIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldPreferredFormat, vs...))
}

// PreferredFormatNotIn applies the NotIn predicate on the "preferred_format" field.
func PreferredFormatNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldPreferredFormat, vs...))
}

// PreferredFormatGT applies the GT predicate on the "preferred_format" field.
func PreferredFormatGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldPreferredFormat, v))
}

// PreferredFormatGTE applies the GTE predicate on the "preferred_format" field.
func PreferredFormatGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldPreferredFormat, v))
}

// PreferredFormatLT applies the LT predicate on the "preferred_format" field.
func PreferredFormatLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldPreferredFormat, v))
}

// PreferredFormatLTE applies the LTE predicate on the "preferred_format" field.
func PreferredFormatLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldPreferredFormat, v))
}

// PreferredFormatContains applies the Contains predicate on the "preferred_format" field.
func PreferredFormatContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldPreferredFormat, v))
}

// PreferredFormatHasPrefix applies the HasPrefix predicate on the "preferred_format" field.
func PreferredFormatHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldPreferredFormat, v))
}

// PreferredFormatHasSuffix applies the HasSuffix predicate on the "preferred_format" field.
func PreferredFormatHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldPreferredFormat, v))
}

// PreferredFormatEqualFold applies the EqualFold predicate on the "preferred_format" field.
func PreferredFormatEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldPreferredFormat, v))
}

// PreferredFormatContainsFold applies the ContainsFold predicate on the "preferred_format" field.
func PreferredFormatContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldPreferredFormat, v))
}

// DispositionEQ applies the EQ predicate on the "disposition" field.
func DispositionEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldDisposition, v))
}

// DispositionNEQ applies the NEQ predicate on the "disposition" field.
func DispositionNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldDisposition, v))
}

// DispositionIn applies the In predicate on the "disposition" field.
func DispositionIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldDisposition, vs...))
}

// DispositionNotIn applies the NotIn predicate on the "disposition" field.
func DispositionNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldDisposition, vs...))
}

// DispositionGT applies the GT predicate on the "disposition" field.
func DispositionGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldDisposition, v))
}

// DispositionGTE applies the GTE predicate on the "disposition" field.
func DispositionGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldDisposition, v))
}

// DispositionLT applies the LT predicate on the "disposition" field.
func DispositionLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldDisposition, v))
}

// DispositionLTE applies the LTE predicate on the "disposition" field.
func DispositionLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldDisposition, v))
}

// DispositionContains applies the Contains predicate on the "disposition" field.
func DispositionContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldDisposition, v))
}

// DispositionHasPrefix applies the HasPrefix predicate on the "disposition" field.
func DispositionHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldDisposition, v))
}

// DispositionHasSuffix applies the HasSuffix predicate on the "disposition" field.
func DispositionHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldDisposition, v))
}

// DispositionEqualFold applies the EqualFold predicate on the "disposition" field.
func DispositionEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldDisposition, v))
}

// DispositionContainsFold applies the ContainsFold predicate on the "disposition" field.
func DispositionContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldDisposition, v))
}

// RiasecCodeEQ applies the EQ predicate on the "riasec_code" field.
func RiasecCodeEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldRiasecCode, v))
}

// RiasecCodeNEQ applies the NEQ predicate on the "riasec_code" field.
func RiasecCodeNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldRiasecCode, v))
}

// RiasecCodeIn applies the In predicate on the "riasec_code" field.
func RiasecCodeIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldRiasecCode, vs...))
}

// RiasecCodeNotIn applies the NotIn predicate on the "riasec_code" field.
func RiasecCodeNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldRiasecCode, vs...))
}

// RiasecCodeGT applies the GT predicate on the "riasec_code" field.
func RiasecCodeGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldRiasecCode, v))
}

// RiasecCodeGTE applies the GTE predicate on the "riasec_code" field.
func RiasecCodeGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldRiasecCode, v))
}

// RiasecCodeLT applies the LT predicate on the "riasec_code" field.
func RiasecCodeLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldRiasecCode, v))
}

// RiasecCodeLTE applies the LTE predicate on the "riasec_code" field.
func RiasecCodeLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldRiasecCode, v))
}

// RiasecCodeContains applies the Contains predicate on the "riasec_code" field.
func RiasecCodeContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldRiasecCode, v))
}

// RiasecCodeHasPrefix applies the HasPrefix predicate on the "riasec_code" field.
func RiasecCodeHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldRiasecCode, v))
}

// RiasecCodeHasSuffix applies the HasSuffix predicate on the "riasec_code" field.
func RiasecCodeHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldRiasecCode, v))
}

// RiasecCodeEqualFold applies the EqualFold predicate on the "riasec_code" field.
func RiasecCodeEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldRiasecCode, v))
}

// RiasecCodeContainsFold applies the ContainsFold predicate on the "riasec_code" field.
func RiasecCodeContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldRiasecCode, v))
}

// ProfileCompleteEQ applies the EQ predicate on the "profile_complete" field.
func ProfileCompleteEQ(v bool) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldProfileComplete, v))
}

// ProfileCompleteNEQ applies the NEQ predicate on the "profile_complete" field.
func ProfileCompleteNEQ(v bool) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldProfileComplete, v))
}

// CurrentModeEQ applies the EQ predicate on the "current_mode" field.
func CurrentModeEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCurrentMode, v))
}

// CurrentModeNEQ applies the NEQ predicate on the "current_mode" field.
func CurrentModeNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldCurrentMode, v))
}

// CurrentModeIn applies the In predicate on the "current_mode" field.
func CurrentModeIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldCurrentMode, vs...))
}

// CurrentModeNotIn applies the NotIn predicate on the "current_mode" field.
func CurrentModeNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldCurrentMode, vs...))
}

// CurrentModeGT applies the GT predicate on the "current_mode" field.
func CurrentModeGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldCurrentMode, v))
}

// CurrentModeGTE applies the GTE predicate on the "current_mode" field.
func CurrentModeGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldCurrentMode, v))
}

// CurrentModeLT applies the LT predicate on the "current_mode" field.
func CurrentModeLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldCurrentMode, v))
}

// CurrentModeLTE applies the LTE predicate on the "current_mode" field.
func CurrentModeLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldCurrentMode, v))
}

// CurrentModeContains applies the Contains predicate on the "current_mode" field.
func CurrentModeContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldCurrentMode, v))
}

// CurrentModeHasPrefix applies the HasPrefix predicate on the "current_mode" field.
func CurrentModeHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldCurrentMode, v))
}

// CurrentModeHasSuffix applies the HasSuffix predicate on the "current_mode" field.
func CurrentModeHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldCurrentMode, v))
}

// CurrentModeEqualFold applies the EqualFold predicate on the "current_mode" field.
func CurrentModeEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldCurrentMode, v))
}

// CurrentModeContainsFold applies the ContainsFold predicate on the "current_mode" field.
func CurrentModeContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldCurrentMode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.NotPredicates(p))
}
