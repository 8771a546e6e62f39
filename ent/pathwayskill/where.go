// Code generated by ent, DO NOT EDIT.

package pathwayskill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLTE(FieldID, id))
}

// PathwaySkillID applies equality check predicate on the "pathway_skill_id" field. It's identical to PathwaySkillIDEQ.
func PathwaySkillID(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldPathwaySkillID, v))
}

// PathwayID applies equality check predicate on the "pathway_id" field. It's identical to PathwayIDEQ.
func PathwayID(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldPathwayID, v))
}

// SkillName applies equality check predicate on the "skill_name" field. It's identical to SkillNameEQ.
func SkillName(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldSkillName, v))
}

// SequenceOrder applies equality check predicate on the "sequence_order" field. It's identical to SequenceOrderEQ.
func SequenceOrder(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldSequenceOrder, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldStatus, v))
}

// EstimatedHours applies equality check predicate on the "estimated_hours" field. It's identical to EstimatedHoursEQ.
func EstimatedHours(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldEstimatedHours, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldCompletedAt, v))
}

// PathwaySkillIDEQ applies the EQ predicate on the "pathway_skill_id" field.
func PathwaySkillIDEQ(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldPathwaySkillID, v))
}

// PathwaySkillIDNEQ applies the NEQ predicate on the "pathway_skill_id" field.
func PathwaySkillIDNEQ(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNEQ(FieldPathwaySkillID, v))
}

// PathwaySkillIDIn applies the In predicate on the "pathway_skill_id" field.
func PathwaySkillIDIn(vs ...string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIn(FieldPathwaySkillID, vs...))
}

// PathwaySkillIDNotIn applies the NotIn predicate on the "pathway_skill_id" field.
func PathwaySkillIDNotIn(vs ...string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotIn(FieldPathwaySkillID, vs...))
}

// PathwaySkillIDGT applies the GT predicate on the "pathway_skill_id" field.
func PathwaySkillIDGT(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGT(FieldPathwaySkillID, v))
}

// PathwaySkillIDGTE applies the GTE predicate on the "pathway_skill_id" field.
func PathwaySkillIDGTE(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGTE(FieldPathwaySkillID, v))
}

// PathwaySkillIDLT applies the LT predicate on the "pathway_skill_id" field.
func PathwaySkillIDLT(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLT(FieldPathwaySkillID, v))
}

// PathwaySkillIDLTE applies the LTE predicate on the "pathway_skill_id" field.
func PathwaySkillIDLTE(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLTE(FieldPathwaySkillID, v))
}

// PathwaySkillIDContains applies the Contains predicate on the "pathway_skill_id" field.
func PathwaySkillIDContains(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldContains(FieldPathwaySkillID, v))
}

// PathwaySkillIDHasPrefix applies the HasPrefix predicate on the "pathway_skill_id" field.
func PathwaySkillIDHasPrefix(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldHasPrefix(FieldPathwaySkillID, v))
}

// PathwaySkillIDHasSuffix applies the HasSuffix predicate on the "pathway_skill_id" field.
func PathwaySkillIDHasSuffix(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldHasSuffix(FieldPathwaySkillID, v))
}

// PathwaySkillIDEqualFold applies the EqualFold predicate on the "pathway_skill_id" field.
func PathwaySkillIDEqualFold(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEqualFold(FieldPathwaySkillID, v))
}

// PathwaySkillIDContainsFold applies the ContainsFold predicate on the "pathway_skill_id" field.
func PathwaySkillIDContainsFold(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldContainsFold(FieldPathwaySkillID, v))
}

// PathwayIDEQ applies the EQ predicate on the "pathway_id" field.
func PathwayIDEQ(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldPathwayID, v))
}

// PathwayIDNEQ applies the NEQ predicate on the "pathway_id" field.
func PathwayIDNEQ(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNEQ(FieldPathwayID, v))
}

// PathwayIDIn applies the In predicate on the "pathway_id" field.
func PathwayIDIn(vs ...string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIn(FieldPathwayID, vs...))
}

// PathwayIDNotIn applies the NotIn predicate on the "pathway_id" field.
func PathwayIDNotIn(vs ...string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotIn(FieldPathwayID, vs...))
}

// PathwayIDGT applies the GT predicate on the "pathway_id" field.
func PathwayIDGT(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGT(FieldPathwayID, v))
}

// PathwayIDGTE applies the GTE predicate on the "pathway_id" field.
func PathwayIDGTE(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGTE(FieldPathwayID, v))
}

// PathwayIDLT applies the LT predicate on the "pathway_id" field.
func PathwayIDLT(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLT(FieldPathwayID, v))
}

// PathwayIDLTE applies the LTE predicate on the "pathway_id" field.
func PathwayIDLTE(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLTE(FieldPathwayID, v))
}

// PathwayIDContains applies the Contains predicate on the "pathway_id" field.
func PathwayIDContains(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldContains(FieldPathwayID, v))
}

// PathwayIDHasPrefix applies the HasPrefix predicate on the "pathway_id" field.
func PathwayIDHasPrefix(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldHasPrefix(FieldPathwayID, v))
}

// PathwayIDHasSuffix applies the HasSuffix predicate on the "pathway_id" field.
func PathwayIDHasSuffix(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldHasSuffix(FieldPathwayID, v))
}

// PathwayIDEqualFold applies the EqualFold predicate on the "pathway_id" field.
func PathwayIDEqualFold(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEqualFold(FieldPathwayID, v))
}

// PathwayIDContainsFold applies the ContainsFold predicate on the "pathway_id" field.
func PathwayIDContainsFold(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldContainsFold(FieldPathwayID, v))
}

// SkillNameEQ applies the EQ predicate on the "skill_name" field.
func SkillNameEQ(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldSkillName, v))
}

// SkillNameNEQ applies the NEQ predicate on the "skill_name" field.
func SkillNameNEQ(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNEQ(FieldSkillName, v))
}

// SkillNameIn applies the In predicate on the "skill_name" field.
func SkillNameIn(vs ...string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIn(FieldSkillName, vs...))
}

// SkillNameNotIn applies the NotIn predicate on the "skill_name" field.
func SkillNameNotIn(vs ...string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotIn(FieldSkillName, vs...))
}

// SkillNameGT applies the GT predicate on the "skill_name" field.
func SkillNameGT(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGT(FieldSkillName, v))
}

// SkillNameGTE applies the GTE predicate on the "skill_name" field.
func SkillNameGTE(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGTE(FieldSkillName, v))
}

// SkillNameLT applies the LT predicate on the "skill_name" field.
func SkillNameLT(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLT(FieldSkillName, v))
}

// SkillNameLTE applies the LTE predicate on the "skill_name" field.
func SkillNameLTE(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLTE(FieldSkillName, v))
}

// SkillNameContains applies the Contains predicate on the "skill_name" field.
func SkillNameContains(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldContains(FieldSkillName, v))
}

// SkillNameHasPrefix applies the HasPrefix predicate on the "skill_name" field.
func SkillNameHasPrefix(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldHasPrefix(FieldSkillName, v))
}

// SkillNameHasSuffix applies the HasSuffix predicate on the "skill_name" field.
func SkillNameHasSuffix(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldHasSuffix(FieldSkillName, v))
}

// SkillNameEqualFold applies the EqualFold predicate on the "skill_name" field.
func SkillNameEqualFold(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEqualFold(FieldSkillName, v))
}

// SkillNameContainsFold applies the ContainsFold predicate on the "skill_name" field.
func SkillNameContainsFold(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldContainsFold(FieldSkillName, v))
}

// SequenceOrderEQ applies the EQ predicate on the "sequence_order" field.
func SequenceOrderEQ(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldSequenceOrder, v))
}

// SequenceOrderNEQ applies the NEQ predicate on the "sequence_order" field.
func SequenceOrderNEQ(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNEQ(FieldSequenceOrder, v))
}

// SequenceOrderIn applies the In predicate on the "sequence_order" field.
func SequenceOrderIn(vs ...int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIn(FieldSequenceOrder, vs...))
}

// SequenceOrderNotIn applies the NotIn predicate on the "sequence_order" field.
func SequenceOrderNotIn(vs ...int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotIn(FieldSequenceOrder, vs...))
}

// SequenceOrderGT applies the GT predicate on the "sequence_order" field.
func SequenceOrderGT(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGT(FieldSequenceOrder, v))
}

// SequenceOrderGTE applies the GTE predicate on the "sequence_order" field.
func SequenceOrderGTE(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGTE(FieldSequenceOrder, v))
}

// SequenceOrderLT applies the LT predicate on the "sequence_order" field.
func SequenceOrderLT(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLT(FieldSequenceOrder, v))
}

// SequenceOrderLTE applies the LTE predicate on the "sequence_order" field.
func SequenceOrderLTE(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLTE(FieldSequenceOrder, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldContainsFold(FieldStatus, v))
}

// EstimatedHoursEQ applies the EQ predicate on the "estimated_hours" field.
func EstimatedHoursEQ(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldEstimatedHours, v))
}

// EstimatedHoursNEQ applies the NEQ predicate on the "estimated_hours" field.
func EstimatedHoursNEQ(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNEQ(FieldEstimatedHours, v))
}

// EstimatedHoursIn applies the In predicate on the "estimated_hours" field.
func EstimatedHoursIn(vs ...int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIn(FieldEstimatedHours, vs...))
}

// EstimatedHoursNotIn applies the NotIn predicate on the "estimated_hours" field.
func EstimatedHoursNotIn(vs ...int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotIn(FieldEstimatedHours, vs...))
}

// EstimatedHoursGT applies the GT predicate on the "estimated_hours" field.
func EstimatedHoursGT(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGT(FieldEstimatedHours, v))
}

// EstimatedHoursGTE applies the GTE predicate on the "estimated_hours" field.
func EstimatedHoursGTE(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGTE(FieldEstimatedHours, v))
}

// EstimatedHoursLT applies the LT predicate on the "estimated_hours" field.
func EstimatedHoursLT(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLT(FieldEstimatedHours, v))
}

// EstimatedHoursLTE applies the LTE predicate on the "estimated_hours" field.
func EstimatedHoursLTE(v int) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLTE(FieldEstimatedHours, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathwaySkill) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathwaySkill) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathwaySkill) predicate.PathwaySkill {
	return predicate.PathwaySkill(sql.NotPredicates(p))
}
