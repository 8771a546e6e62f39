// Code generated by ent, DO NOT EDIT.

package learnerskill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLTE(FieldID, id))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldSkillID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldLearnerID, v))
}

// SkillName applies equality check predicate on the "skill_name" field. It's identical to SkillNameEQ.
func SkillName(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldSkillName, v))
}

// ProficiencyLevel applies equality check predicate on the "proficiency_level" field. It's identical to ProficiencyLevelEQ.
func ProficiencyLevel(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldProficiencyLevel, v))
}

// EvidenceSource applies equality check predicate on the "evidence_source" field. It's identical to EvidenceSourceEQ.
func EvidenceSource(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldEvidenceSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldCreatedAt, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldContainsFold(FieldSkillID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldContainsFold(FieldLearnerID, v))
}

// SkillNameEQ applies the EQ predicate on the "skill_name" field.
func SkillNameEQ(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldSkillName, v))
}

// SkillNameNEQ applies the NEQ predicate on the "skill_name" field.
func SkillNameNEQ(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNEQ(FieldSkillName, v))
}

// SkillNameIn applies the In predicate on the "skill_name" field.
func SkillNameIn(vs ...string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldIn(FieldSkillName, vs...))
}

// SkillNameNotIn applies the NotIn predicate on the "skill_name" field.
func SkillNameNotIn(vs ...string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNotIn(FieldSkillName, vs...))
}

// SkillNameGT applies the GT predicate on the "skill_name" field.
func SkillNameGT(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGT(FieldSkillName, v))
}

// SkillNameGTE applies the GTE predicate on the "skill_name" field.
func SkillNameGTE(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGTE(FieldSkillName, v))
}

// SkillNameLT applies the LT predicate on the "skill_name" field.
func SkillNameLT(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLT(FieldSkillName, v))
}

// SkillNameLTE applies the LTE predicate on the "skill_name" field.
func SkillNameLTE(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLTE(FieldSkillName, v))
}

// SkillNameContains applies the Contains predicate on the "skill_name" field.
func SkillNameContains(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldContains(FieldSkillName, v))
}

// SkillNameHasPrefix applies the HasPrefix predicate on the "skill_name" field.
func SkillNameHasPrefix(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldHasPrefix(FieldSkillName, v))
}

// SkillNameHasSuffix applies the HasSuffix predicate on the "skill_name" field.
func SkillNameHasSuffix(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldHasSuffix(FieldSkillName, v))
}

// SkillNameEqualFold applies the EqualFold predicate on the "skill_name" field.
func SkillNameEqualFold(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEqualFold(FieldSkillName, v))
}

// SkillNameContainsFold applies the ContainsFold predicate on the "skill_name" field.
func SkillNameContainsFold(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldContainsFold(FieldSkillName, v))
}

// ProficiencyLevelEQ applies the EQ predicate on the "proficiency_level" field.
func ProficiencyLevelEQ(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldProficiencyLevel, v))
}

// ProficiencyLevelNEQ applies the NEQ predicate on the "proficiency_level" field.
func ProficiencyLevelNEQ(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNEQ(FieldProficiencyLevel, v))
}

// ProficiencyLevelIn applies the In predicate on the "proficiency_level" field.
func ProficiencyLevelIn(vs ...string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldIn(FieldProficiencyLevel, vs...))
}

// ProficiencyLevelNotIn applies the NotIn predicate on the "proficiency_level" field.
func ProficiencyLevelNotIn(vs ...string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNotIn(FieldProficiencyLevel, vs...))
}

// ProficiencyLevelGT applies the GT predicate on the "proficiency_level" field.
func ProficiencyLevelGT(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGT(FieldProficiencyLevel, v))
}

// ProficiencyLevelGTE applies the GTE predicate on the "proficiency_level" field.
func ProficiencyLevelGTE(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGTE(FieldProficiencyLevel, v))
}

// ProficiencyLevelLT applies the LT predicate on the "proficiency_level" field.
func ProficiencyLevelLT(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLT(FieldProficiencyLevel, v))
}

// ProficiencyLevelLTE applies the LTE predicate on the "proficiency_level" field.
func ProficiencyLevelLTE(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLTE(FieldProficiencyLevel, v))
}

// ProficiencyLevelContains applies the Contains predicate on the "proficiency_level" field.
func ProficiencyLevelContains(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldContains(FieldProficiencyLevel, v))
}

// ProficiencyLevelHasPrefix applies the HasPrefix predicate on the "proficiency_level" field.
func ProficiencyLevelHasPrefix(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldHasPrefix(FieldProficiencyLevel, v))
}

// ProficiencyLevelHasSuffix applies the HasSuffix predicate on the "proficiency_level" field.
func ProficiencyLevelHasSuffix(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldHasSuffix(FieldProficiencyLevel, v))
}

// ProficiencyLevelEqualFold applies the EqualFold predicate on the "proficiency_level" field.
func ProficiencyLevelEqualFold(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEqualFold(FieldProficiencyLevel, v))
}

// ProficiencyLevelContainsFold applies the ContainsFold predicate on the "proficiency_level" field.
func ProficiencyLevelContainsFold(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldContainsFold(FieldProficiencyLevel, v))
}

// EvidenceSourceEQ applies the EQ predicate on the "evidence_source" field.
func EvidenceSourceEQ(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldEvidenceSource, v))
}

// EvidenceSourceNEQ applies the NEQ predicate on the "evidence_source" field.
func EvidenceSourceNEQ(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNEQ(FieldEvidenceSource, v))
}

// EvidenceSourceIn applies the In predicate on the "evidence_source" field.
func EvidenceSourceIn(vs ...string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldIn(FieldEvidenceSource, vs...))
}

// EvidenceSourceNotIn applies the NotIn predicate on the "evidence_source" field.
func EvidenceSourceNotIn(vs ...string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNotIn(FieldEvidenceSource, vs...))
}

// EvidenceSourceGT applies the GT predicate on the "evidence_source" field.
func EvidenceSourceGT(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGT(FieldEvidenceSource, v))
}

// EvidenceSourceGTE applies the GTE predicate on the "evidence_source" field.
func EvidenceSourceGTE(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGTE(FieldEvidenceSource, v))
}

// EvidenceSourceLT applies the LT predicate on the "evidence_source" field.
func EvidenceSourceLT(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLT(FieldEvidenceSource, v))
}

// EvidenceSourceLTE applies the LTE predicate on the "evidence_source" field.
func EvidenceSourceLTE(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLTE(FieldEvidenceSource, v))
}

// EvidenceSourceContains applies the Contains predicate on the "evidence_source" field.
func EvidenceSourceContains(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldContains(FieldEvidenceSource, v))
}

// EvidenceSourceHasPrefix applies the HasPrefix predicate on the "evidence_source" field.
func EvidenceSourceHasPrefix(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldHasPrefix(FieldEvidenceSource, v))
}

// EvidenceSourceHasSuffix applies the HasSuffix predicate on the "evidence_source" field.
func EvidenceSourceHasSuffix(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldHasSuffix(FieldEvidenceSource, v))
}

// EvidenceSourceEqualFold applies the EqualFold predicate on the "evidence_source" field.
func EvidenceSourceEqualFold(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEqualFold(FieldEvidenceSource, v))
}

// EvidenceSourceContainsFold applies the ContainsFold predicate on the "evidence_source" field.
func EvidenceSourceContainsFold(v string) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldContainsFold(FieldEvidenceSource, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerSkill) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerSkill) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerSkill) predicate.LearnerSkill {
	return predicate.LearnerSkill(sql.NotPredicates(p))
}
