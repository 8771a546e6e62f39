// Code generated by ent, DO NOT EDIT.

package modeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/careerstu/careerstu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldLearnerID, v))
}

// FromMode applies equality check predicate on the "from_mode" field. It's identical to FromModeEQ.
func FromMode(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldFromMode, v))
}

// ToMode applies equality check predicate on the "to_mode" field. It's identical to ToModeEQ.
func ToMode(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldToMode, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldReason, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// FromModeEQ applies the EQ predicate on the "from_mode" field.
func FromModeEQ(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldFromMode, v))
}

// FromModeNEQ applies the NEQ predicate on the "from_mode" field.
func FromModeNEQ(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNEQ(FieldFromMode, v))
}

// FromModeIn applies the In predicate on the "from_mode" field.
func FromModeIn(vs ...string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldIn(FieldFromMode, vs...))
}

// FromModeNotIn applies the NotIn predicate on the "from_mode" field.
func FromModeNotIn(vs ...string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNotIn(FieldFromMode, vs...))
}

// FromModeGT applies the GT predicate on the "from_mode" field.
func FromModeGT(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGT(FieldFromMode, v))
}

// FromModeGTE applies the GTE predicate on the "from_mode" field.
func FromModeGTE(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGTE(FieldFromMode, v))
}

// FromModeLT applies the LT predicate on the "from_mode" field.
func FromModeLT(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLT(FieldFromMode, v))
}

// FromModeLTE applies the LTE predicate on the "from_mode" field.
func FromModeLTE(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLTE(FieldFromMode, v))
}

// FromModeContains applies the Contains predicate on the "from_mode" field.
func FromModeContains(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldContains(FieldFromMode, v))
}

// FromModeHasPrefix applies the HasPrefix predicate on the "from_mode" field.
func FromModeHasPrefix(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldHasPrefix(FieldFromMode, v))
}

// FromModeHasSuffix applies the HasSuffix predicate on the "from_mode" field.
func FromModeHasSuffix(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldHasSuffix(FieldFromMode, v))
}

// FromModeEqualFold applies the EqualFold predicate on the "from_mode" field.
func FromModeEqualFold(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEqualFold(FieldFromMode, v))
}

// FromModeContainsFold applies the ContainsFold predicate on the "from_mode" field.
func FromModeContainsFold(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldContainsFold(FieldFromMode, v))
}

// ToModeEQ applies the EQ predicate on the "to_mode" field.
func ToModeEQ(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldToMode, v))
}

// ToModeNEQ applies the NEQ predicate on the "to_mode" field.
func ToModeNEQ(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNEQ(FieldToMode, v))
}

// ToModeIn applies the In predicate on the "to_mode" field.
func ToModeIn(vs ...string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldIn(FieldToMode, vs...))
}

// ToModeNotIn applies the NotIn predicate on the "to_mode" field.
func ToModeNotIn(vs ...string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNotIn(FieldToMode, vs...))
}

// ToModeGT applies the GT predicate on the "to_mode" field.
func ToModeGT(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGT(FieldToMode, v))
}

// ToModeGTE applies the GTE predicate on the "to_mode" field.
func ToModeGTE(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGTE(FieldToMode, v))
}

// ToModeLT applies the LT predicate on the "to_mode" field.
func ToModeLT(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLT(FieldToMode, v))
}

// ToModeLTE applies the LTE predicate on the "to_mode" field.
func ToModeLTE(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLTE(FieldToMode, v))
}

// ToModeContains applies the Contains predicate on the "to_mode" field.
func ToModeContains(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldContains(FieldToMode, v))
}

// ToModeHasPrefix applies the HasPrefix predicate on the "to_mode" field.
func ToModeHasPrefix(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldHasPrefix(FieldToMode, v))
}

// ToModeHasSuffix applies the HasSuffix predicate on the "to_mode" field.
func ToModeHasSuffix(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldHasSuffix(FieldToMode, v))
}

// ToModeEqualFold applies the EqualFold predicate on the "to_mode" field.
func ToModeEqualFold(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEqualFold(FieldToMode, v))
}

// ToModeContainsFold applies the ContainsFold predicate on the "to_mode" field.
func ToModeContainsFold(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldContainsFold(FieldToMode, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ModeEvent {
	return predicate.ModeEvent(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModeEvent) predicate.ModeEvent {
	return predicate.ModeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModeEvent) predicate.ModeEvent {
	return predicate.ModeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModeEvent) predicate.ModeEvent {
	return predicate.ModeEvent(sql.NotPredicates(p))
}
