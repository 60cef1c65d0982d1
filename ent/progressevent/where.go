// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSessionID, v))
}

// StageNumber applies equality check predicate on the "stage_number" field. It's identical to StageNumberEQ.
func StageNumber(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldStageNumber, v))
}

// Graded applies equality check predicate on the "graded" field. It's identical to GradedEQ.
func Graded(v bool) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldGraded, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldCorrect, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// CompletedSession applies equality check predicate on the "completed_session" field. It's identical to CompletedSessionEQ.
func CompletedSession(v bool) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldCompletedSession, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StageNumberEQ applies the EQ predicate on the "stage_number" field.
func StageNumberEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldStageNumber, v))
}

// StageNumberNEQ applies the NEQ predicate on the "stage_number" field.
func StageNumberNEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldStageNumber, v))
}

// StageNumberIn applies the In predicate on the "stage_number" field.
func StageNumberIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldStageNumber, vs...))
}

// StageNumberNotIn applies the NotIn predicate on the "stage_number" field.
func StageNumberNotIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldStageNumber, vs...))
}

// StageNumberGT applies the GT predicate on the "stage_number" field.
func StageNumberGT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldStageNumber, v))
}

// StageNumberGTE applies the GTE predicate on the "stage_number" field.
func StageNumberGTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldStageNumber, v))
}

// StageNumberLT applies the LT predicate on the "stage_number" field.
func StageNumberLT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldStageNumber, v))
}

// StageNumberLTE applies the LTE predicate on the "stage_number" field.
func StageNumberLTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldStageNumber, v))
}

// GradedEQ applies the EQ predicate on the "graded" field.
func GradedEQ(v bool) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldGraded, v))
}

// GradedNEQ applies the NEQ predicate on the "graded" field.
func GradedNEQ(v bool) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldGraded, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldCorrect, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// CompletedSessionEQ applies the EQ predicate on the "completed_session" field.
func CompletedSessionEQ(v bool) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldCompletedSession, v))
}

// CompletedSessionNEQ applies the NEQ predicate on the "completed_session" field.
func CompletedSessionNEQ(v bool) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldCompletedSession, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.NotPredicates(p))
}
