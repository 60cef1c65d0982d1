// Code generated by ent, DO NOT EDIT.

package lessonsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldSessionID, v))
}

// Tone applies equality check predicate on the "tone" field. It's identical to ToneEQ.
func Tone(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldTone, v))
}

// CurrentStageIndex applies equality check predicate on the "current_stage_index" field. It's identical to CurrentStageIndexEQ.
func CurrentStageIndex(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldCurrentStageIndex, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldCorrectAnswers, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldXpEarned, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldStartTime, v))
}

// IsComplete applies equality check predicate on the "is_complete" field. It's identical to IsCompleteEQ.
func IsComplete(v bool) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldIsComplete, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldContainsFold(FieldSessionID, v))
}

// ToneEQ applies the EQ predicate on the "tone" field.
func ToneEQ(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldTone, v))
}

// ToneNEQ applies the NEQ predicate on the "tone" field.
func ToneNEQ(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldTone, v))
}

// ToneIn applies the In predicate on the "tone" field.
func ToneIn(vs ...string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIn(FieldTone, vs...))
}

// ToneNotIn applies the NotIn predicate on the "tone" field.
func ToneNotIn(vs ...string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotIn(FieldTone, vs...))
}

// ToneGT applies the GT predicate on the "tone" field.
func ToneGT(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGT(FieldTone, v))
}

// ToneGTE applies the GTE predicate on the "tone" field.
func ToneGTE(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGTE(FieldTone, v))
}

// ToneLT applies the LT predicate on the "tone" field.
func ToneLT(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLT(FieldTone, v))
}

// ToneLTE applies the LTE predicate on the "tone" field.
func ToneLTE(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLTE(FieldTone, v))
}

// ToneContains applies the Contains predicate on the "tone" field.
func ToneContains(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldContains(FieldTone, v))
}

// ToneHasPrefix applies the HasPrefix predicate on the "tone" field.
func ToneHasPrefix(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldHasPrefix(FieldTone, v))
}

// ToneHasSuffix applies the HasSuffix predicate on the "tone" field.
func ToneHasSuffix(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldHasSuffix(FieldTone, v))
}

// ToneEqualFold applies the EqualFold predicate on the "tone" field.
func ToneEqualFold(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEqualFold(FieldTone, v))
}

// ToneContainsFold applies the ContainsFold predicate on the "tone" field.
func ToneContainsFold(v string) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldContainsFold(FieldTone, v))
}

// CurrentStageIndexEQ applies the EQ predicate on the "current_stage_index" field.
func CurrentStageIndexEQ(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldCurrentStageIndex, v))
}

// CurrentStageIndexNEQ applies the NEQ predicate on the "current_stage_index" field.
func CurrentStageIndexNEQ(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldCurrentStageIndex, v))
}

// CurrentStageIndexIn applies the In predicate on the "current_stage_index" field.
func CurrentStageIndexIn(vs ...int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIn(FieldCurrentStageIndex, vs...))
}

// CurrentStageIndexNotIn applies the NotIn predicate on the "current_stage_index" field.
func CurrentStageIndexNotIn(vs ...int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotIn(FieldCurrentStageIndex, vs...))
}

// CurrentStageIndexGT applies the GT predicate on the "current_stage_index" field.
func CurrentStageIndexGT(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGT(FieldCurrentStageIndex, v))
}

// CurrentStageIndexGTE applies the GTE predicate on the "current_stage_index" field.
func CurrentStageIndexGTE(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGTE(FieldCurrentStageIndex, v))
}

// CurrentStageIndexLT applies the LT predicate on the "current_stage_index" field.
func CurrentStageIndexLT(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLT(FieldCurrentStageIndex, v))
}

// CurrentStageIndexLTE applies the LTE predicate on the "current_stage_index" field.
func CurrentStageIndexLTE(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLTE(FieldCurrentStageIndex, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLTE(FieldCorrectAnswers, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLTE(FieldXpEarned, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLTE(FieldStartTime, v))
}

// IsCompleteEQ applies the EQ predicate on the "is_complete" field.
func IsCompleteEQ(v bool) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldIsComplete, v))
}

// IsCompleteNEQ applies the NEQ predicate on the "is_complete" field.
func IsCompleteNEQ(v bool) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldIsComplete, v))
}

// GradedStagesIsNil applies the IsNil predicate on the "graded_stages" field.
func GradedStagesIsNil() predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIsNull(FieldGradedStages))
}

// GradedStagesNotNil applies the NotNil predicate on the "graded_stages" field.
func GradedStagesNotNil() predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotNull(FieldGradedStages))
}

// FinalSummaryIsNil applies the IsNil predicate on the "final_summary" field.
func FinalSummaryIsNil() predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIsNull(FieldFinalSummary))
}

// FinalSummaryNotNil applies the NotNil predicate on the "final_summary" field.
func FinalSummaryNotNil() predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotNull(FieldFinalSummary))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotNull(FieldCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LessonSession {
	return predicate.LessonSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonSession) predicate.LessonSession {
	return predicate.LessonSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonSession) predicate.LessonSession {
	return predicate.LessonSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonSession) predicate.LessonSession {
	return predicate.LessonSession(sql.NotPredicates(p))
}
