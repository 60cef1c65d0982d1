// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/questline/ent/lessonsession"
	"github.com/abhisek/questline/ent/llmrequestevent"
	"github.com/abhisek/questline/ent/progressevent"
	"github.com/abhisek/questline/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	lessonsessionFields := schema.LessonSession{}.Fields()
	_ = lessonsessionFields
	// lessonsessionDescSessionID is the schema descriptor for session_id field.
	lessonsessionDescSessionID := lessonsessionFields[0].Descriptor()
	// lessonsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonsession.SessionIDValidator = lessonsessionDescSessionID.Validators[0].(func(string) error)
	// lessonsessionDescTone is the schema descriptor for tone field.
	lessonsessionDescTone := lessonsessionFields[1].Descriptor()
	// lessonsession.ToneValidator is a validator for the "tone" field. It is called by the builders before save.
	lessonsession.ToneValidator = lessonsessionDescTone.Validators[0].(func(string) error)
	// lessonsessionDescCurrentStageIndex is the schema descriptor for current_stage_index field.
	lessonsessionDescCurrentStageIndex := lessonsessionFields[3].Descriptor()
	// lessonsession.DefaultCurrentStageIndex holds the default value on creation for the current_stage_index field.
	lessonsession.DefaultCurrentStageIndex = lessonsessionDescCurrentStageIndex.Default.(int)
	// lessonsessionDescQuestionsAnswered is the schema descriptor for questions_answered field.
	lessonsessionDescQuestionsAnswered := lessonsessionFields[4].Descriptor()
	// lessonsession.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	lessonsession.DefaultQuestionsAnswered = lessonsessionDescQuestionsAnswered.Default.(int)
	// lessonsessionDescCorrectAnswers is the schema descriptor for correct_answers field.
	lessonsessionDescCorrectAnswers := lessonsessionFields[5].Descriptor()
	// lessonsession.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	lessonsession.DefaultCorrectAnswers = lessonsessionDescCorrectAnswers.Default.(int)
	// lessonsessionDescXpEarned is the schema descriptor for xp_earned field.
	lessonsessionDescXpEarned := lessonsessionFields[6].Descriptor()
	// lessonsession.DefaultXpEarned holds the default value on creation for the xp_earned field.
	lessonsession.DefaultXpEarned = lessonsessionDescXpEarned.Default.(int)
	// lessonsessionDescIsComplete is the schema descriptor for is_complete field.
	lessonsessionDescIsComplete := lessonsessionFields[8].Descriptor()
	// lessonsession.DefaultIsComplete holds the default value on creation for the is_complete field.
	lessonsession.DefaultIsComplete = lessonsessionDescIsComplete.Default.(bool)
	// lessonsessionDescUpdatedAt is the schema descriptor for updated_at field.
	lessonsessionDescUpdatedAt := lessonsessionFields[12].Descriptor()
	// lessonsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessonsession.DefaultUpdatedAt = lessonsessionDescUpdatedAt.Default.(func() time.Time)
	// lessonsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessonsession.UpdateDefaultUpdatedAt = lessonsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	progresseventMixin := schema.ProgressEvent{}.Mixin()
	progresseventMixinFields0 := progresseventMixin[0].Fields()
	_ = progresseventMixinFields0
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescTimestamp is the schema descriptor for timestamp field.
	progresseventDescTimestamp := progresseventMixinFields0[1].Descriptor()
	// progressevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	progressevent.DefaultTimestamp = progresseventDescTimestamp.Default.(func() time.Time)
	// progresseventDescSessionID is the schema descriptor for session_id field.
	progresseventDescSessionID := progresseventFields[0].Descriptor()
	// progressevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	progressevent.SessionIDValidator = progresseventDescSessionID.Validators[0].(func(string) error)
	// progresseventDescGraded is the schema descriptor for graded field.
	progresseventDescGraded := progresseventFields[2].Descriptor()
	// progressevent.DefaultGraded holds the default value on creation for the graded field.
	progressevent.DefaultGraded = progresseventDescGraded.Default.(bool)
	// progresseventDescCorrect is the schema descriptor for correct field.
	progresseventDescCorrect := progresseventFields[3].Descriptor()
	// progressevent.DefaultCorrect holds the default value on creation for the correct field.
	progressevent.DefaultCorrect = progresseventDescCorrect.Default.(bool)
	// progresseventDescXpAwarded is the schema descriptor for xp_awarded field.
	progresseventDescXpAwarded := progresseventFields[4].Descriptor()
	// progressevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	progressevent.DefaultXpAwarded = progresseventDescXpAwarded.Default.(int)
	// progresseventDescCompletedSession is the schema descriptor for completed_session field.
	progresseventDescCompletedSession := progresseventFields[5].Descriptor()
	// progressevent.DefaultCompletedSession holds the default value on creation for the completed_session field.
	progressevent.DefaultCompletedSession = progresseventDescCompletedSession.Default.(bool)
}
