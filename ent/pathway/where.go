// Code generated by ent, DO NOT EDIT.

package pathway

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Pathway {
	return predicate.Pathway(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Pathway {
	return predicate.Pathway(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Pathway {
	return predicate.Pathway(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Pathway {
	return predicate.Pathway(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Pathway {
	return predicate.Pathway(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Pathway {
	return predicate.Pathway(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Pathway {
	return predicate.Pathway(sql.FieldLTE(FieldID, id))
}

// PathwayID applies equality check predicate on the "pathway_id" field. It's identical to PathwayIDEQ.
func PathwayID(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldPathwayID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldLearnerID, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldGoalID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldStatus, v))
}

// TotalSkills applies equality check predicate on the "total_skills" field. It's identical to TotalSkillsEQ.
func TotalSkills(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldTotalSkills, v))
}

// CompletedSkills applies equality check predicate on the "completed_skills" field. It's identical to CompletedSkillsEQ.
func CompletedSkills(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldCompletedSkills, v))
}

// EstimatedHours applies equality check predicate on the "estimated_hours" field. It's identical to EstimatedHoursEQ.
func EstimatedHours(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldEstimatedHours, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldCreatedAt, v))
}

// PathwayIDEQ applies the EQ predicate on the "pathway_id" field.
func PathwayIDEQ(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldPathwayID, v))
}

// PathwayIDNEQ applies the NEQ predicate on the "pathway_id" field.
func PathwayIDNEQ(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldNEQ(FieldPathwayID, v))
}

// PathwayIDIn applies the In predicate on the "pathway_id" field.
func PathwayIDIn(vs ...string) predicate.Pathway {
	return predicate.Pathway(sql.FieldIn(FieldPathwayID, vs...))
}

// PathwayIDNotIn applies the NotIn predicate on the "pathway_id" field.
func PathwayIDNotIn(vs ...string) predicate.Pathway {
	return predicate.Pathway(sql.FieldNotIn(FieldPathwayID, vs...))
}

// PathwayIDGT applies the GT predicate on the "pathway_id" field.
func PathwayIDGT(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldGT(FieldPathwayID, v))
}

// PathwayIDGTE applies the GTE predicate on the "pathway_id" field.
func PathwayIDGTE(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldGTE(FieldPathwayID, v))
}

// PathwayIDLT applies the LT predicate on the "pathway_id" field.
func PathwayIDLT(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldLT(FieldPathwayID, v))
}

// PathwayIDLTE applies the LTE predicate on the "pathway_id" field.
func PathwayIDLTE(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldLTE(FieldPathwayID, v))
}

// PathwayIDContains applies the Contains predicate on the "pathway_id" field.
func PathwayIDContains(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldContains(FieldPathwayID, v))
}

// PathwayIDHasPrefix applies the HasPrefix predicate on the "pathway_id" field.
func PathwayIDHasPrefix(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldHasPrefix(FieldPathwayID, v))
}

// PathwayIDHasSuffix applies the HasSuffix predicate on the "pathway_id" field.
func PathwayIDHasSuffix(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldHasSuffix(FieldPathwayID, v))
}

// PathwayIDEqualFold applies the EqualFold predicate on the "pathway_id" field.
func PathwayIDEqualFold(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEqualFold(FieldPathwayID, v))
}

// PathwayIDContainsFold applies the ContainsFold predicate on the "pathway_id" field.
func PathwayIDContainsFold(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldContainsFold(FieldPathwayID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Pathway {
	return predicate.Pathway(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Pathway {
	return predicate.Pathway(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldContainsFold(FieldLearnerID, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.Pathway {
	return predicate.Pathway(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.Pathway {
	return predicate.Pathway(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldContainsFold(FieldGoalID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Pathway {
	return predicate.Pathway(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Pathway {
	return predicate.Pathway(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Pathway {
	return predicate.Pathway(sql.FieldContainsFold(FieldStatus, v))
}

// TotalSkillsEQ applies the EQ predicate on the "total_skills" field.
func TotalSkillsEQ(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldTotalSkills, v))
}

// TotalSkillsNEQ applies the NEQ predicate on the "total_skills" field.
func TotalSkillsNEQ(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldNEQ(FieldTotalSkills, v))
}

// TotalSkillsIn applies the In predicate on the "total_skills" field.
func TotalSkillsIn(vs ...int) predicate.Pathway {
	return predicate.Pathway(sql.FieldIn(FieldTotalSkills, vs...))
}

// TotalSkillsNotIn applies the NotIn predicate on the "total_skills" field.
func TotalSkillsNotIn(vs ...int) predicate.Pathway {
	return predicate.Pathway(sql.FieldNotIn(FieldTotalSkills, vs...))
}

// TotalSkillsGT applies the GT predicate on the "total_skills" field.
func TotalSkillsGT(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldGT(FieldTotalSkills, v))
}

// TotalSkillsGTE applies the GTE predicate on the "total_skills" field.
func TotalSkillsGTE(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldGTE(FieldTotalSkills, v))
}

// TotalSkillsLT applies the LT predicate on the "total_skills" field.
func TotalSkillsLT(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldLT(FieldTotalSkills, v))
}

// TotalSkillsLTE applies the LTE predicate on the "total_skills" field.
func TotalSkillsLTE(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldLTE(FieldTotalSkills, v))
}

// CompletedSkillsEQ applies the EQ predicate on the "completed_skills" field.
func CompletedSkillsEQ(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldCompletedSkills, v))
}

// CompletedSkillsNEQ applies the NEQ predicate on the "completed_skills" field.
func CompletedSkillsNEQ(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldNEQ(FieldCompletedSkills, v))
}

// CompletedSkillsIn applies the In predicate on the "completed_skills" field.
func CompletedSkillsIn(vs ...int) predicate.Pathway {
	return predicate.Pathway(sql.FieldIn(FieldCompletedSkills, vs...))
}

// CompletedSkillsNotIn applies the NotIn predicate on the "completed_skills" field.
func CompletedSkillsNotIn(vs ...int) predicate.Pathway {
	return predicate.Pathway(sql.FieldNotIn(FieldCompletedSkills, vs...))
}

// CompletedSkillsGT applies the GT predicate on the "completed_skills" field.
func CompletedSkillsGT(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldGT(FieldCompletedSkills, v))
}

// CompletedSkillsGTE applies the GTE predicate on the "completed_skills" field.
func CompletedSkillsGTE(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldGTE(FieldCompletedSkills, v))
}

// CompletedSkillsLT applies the LT predicate on the "completed_skills" field.
func CompletedSkillsLT(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldLT(FieldCompletedSkills, v))
}

// CompletedSkillsLTE applies the LTE predicate on the "completed_skills" field.
func CompletedSkillsLTE(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldLTE(FieldCompletedSkills, v))
}

// EstimatedHoursEQ applies the EQ predicate on the "estimated_hours" field.
func EstimatedHoursEQ(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldEstimatedHours, v))
}

// EstimatedHoursNEQ applies the NEQ predicate on the "estimated_hours" field.
func EstimatedHoursNEQ(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldNEQ(FieldEstimatedHours, v))
}

// EstimatedHoursIn applies the In predicate on the "estimated_hours" field.
func EstimatedHoursIn(vs ...int) predicate.Pathway {
	return predicate.Pathway(sql.FieldIn(FieldEstimatedHours, vs...))
}

// EstimatedHoursNotIn applies the NotIn predicate on the "estimated_hours" field.
func EstimatedHoursNotIn(vs ...int) predicate.Pathway {
	return predicate.Pathway(sql.FieldNotIn(FieldEstimatedHours, vs...))
}

// EstimatedHoursGT applies the GT predicate on the "estimated_hours" field.
func EstimatedHoursGT(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldGT(FieldEstimatedHours, v))
}

// EstimatedHoursGTE applies the GTE predicate on the "estimated_hours" field.
func EstimatedHoursGTE(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldGTE(FieldEstimatedHours, v))
}

// EstimatedHoursLT applies the LT predicate on the "estimated_hours" field.
func EstimatedHoursLT(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldLT(FieldEstimatedHours, v))
}

// EstimatedHoursLTE applies the LTE predicate on the "estimated_hours" field.
func EstimatedHoursLTE(v int) predicate.Pathway {
	return predicate.Pathway(sql.FieldLTE(FieldEstimatedHours, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Pathway {
	return predicate.Pathway(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Pathway {
	return predicate.Pathway(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Pathway {
	return predicate.Pathway(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Pathway {
	return predicate.Pathway(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Pathway {
	return predicate.Pathway(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Pathway {
	return predicate.Pathway(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Pathway {
	return predicate.Pathway(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Pathway {
	return predicate.Pathway(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Pathway) predicate.Pathway {
	return predicate.Pathway(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Pathway) predicate.Pathway {
	return predicate.Pathway(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Pathway) predicate.Pathway {
	return predicate.Pathway(sql.NotPredicates(p))
}
