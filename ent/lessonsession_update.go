// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questline/ent/lessonsession"
	"github.com/abhisek/questline/ent/predicate"
	"github.com/abhisek/questline/internal/lesson"
)

// LessonSessionUpdate is the builder for updating LessonSession entities.
type LessonSessionUpdate struct {
	config
	hooks    []Hook
	mutation *LessonSessionMutation
}

// Where appends a list predicates to the LessonSessionUpdate builder.
func (_u *LessonSessionUpdate) Where(ps ...predicate.LessonSession) *LessonSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTone sets the "tone" field.
func (_u *LessonSessionUpdate) SetTone(v string) *LessonSessionUpdate {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *LessonSessionUpdate) SetNillableTone(v *string) *LessonSessionUpdate {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// SetStages sets the "stages" field.
func (_u *LessonSessionUpdate) SetStages(v []lesson.Stage) *LessonSessionUpdate {
	_u.mutation.SetStages(v)
	return _u
}

// AppendStages appends value to the "stages" field.
func (_u *LessonSessionUpdate) AppendStages(v []lesson.Stage) *LessonSessionUpdate {
	_u.mutation.AppendStages(v)
	return _u
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_u *LessonSessionUpdate) SetCurrentStageIndex(v int) *LessonSessionUpdate {
	_u.mutation.ResetCurrentStageIndex()
	_u.mutation.SetCurrentStageIndex(v)
	return _u
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_u *LessonSessionUpdate) SetNillableCurrentStageIndex(v *int) *LessonSessionUpdate {
	if v != nil {
		_u.SetCurrentStageIndex(*v)
	}
	return _u
}

// AddCurrentStageIndex adds value to the "current_stage_index" field.
func (_u *LessonSessionUpdate) AddCurrentStageIndex(v int) *LessonSessionUpdate {
	_u.mutation.AddCurrentStageIndex(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *LessonSessionUpdate) SetQuestionsAnswered(v int) *LessonSessionUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *LessonSessionUpdate) SetNillableQuestionsAnswered(v *int) *LessonSessionUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *LessonSessionUpdate) AddQuestionsAnswered(v int) *LessonSessionUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *LessonSessionUpdate) SetCorrectAnswers(v int) *LessonSessionUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *LessonSessionUpdate) SetNillableCorrectAnswers(v *int) *LessonSessionUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *LessonSessionUpdate) AddCorrectAnswers(v int) *LessonSessionUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *LessonSessionUpdate) SetXpEarned(v int) *LessonSessionUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *LessonSessionUpdate) SetNillableXpEarned(v *int) *LessonSessionUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *LessonSessionUpdate) AddXpEarned(v int) *LessonSessionUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *LessonSessionUpdate) SetStartTime(v time.Time) *LessonSessionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *LessonSessionUpdate) SetNillableStartTime(v *time.Time) *LessonSessionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetIsComplete sets the "is_complete" field.
func (_u *LessonSessionUpdate) SetIsComplete(v bool) *LessonSessionUpdate {
	_u.mutation.SetIsComplete(v)
	return _u
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_u *LessonSessionUpdate) SetNillableIsComplete(v *bool) *LessonSessionUpdate {
	if v != nil {
		_u.SetIsComplete(*v)
	}
	return _u
}

// SetGradedStages sets the "graded_stages" field.
func (_u *LessonSessionUpdate) SetGradedStages(v map[int]bool) *LessonSessionUpdate {
	_u.mutation.SetGradedStages(v)
	return _u
}

// ClearGradedStages clears the value of the "graded_stages" field.
func (_u *LessonSessionUpdate) ClearGradedStages() *LessonSessionUpdate {
	_u.mutation.ClearGradedStages()
	return _u
}

// SetFinalSummary sets the "final_summary" field.
func (_u *LessonSessionUpdate) SetFinalSummary(v *lesson.StatsSnapshot) *LessonSessionUpdate {
	_u.mutation.SetFinalSummary(v)
	return _u
}

// ClearFinalSummary clears the value of the "final_summary" field.
func (_u *LessonSessionUpdate) ClearFinalSummary() *LessonSessionUpdate {
	_u.mutation.ClearFinalSummary()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LessonSessionUpdate) SetCompletedAt(v time.Time) *LessonSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LessonSessionUpdate) SetNillableCompletedAt(v *time.Time) *LessonSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LessonSessionUpdate) ClearCompletedAt() *LessonSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonSessionUpdate) SetUpdatedAt(v time.Time) *LessonSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonSessionMutation object of the builder.
func (_u *LessonSessionUpdate) Mutation() *LessonSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonSessionUpdate) check() error {
	if v, ok := _u.mutation.Tone(); ok {
		if err := lessonsession.ToneValidator(v); err != nil {
			return &ValidationError{Name: "tone", err: fmt.Errorf(`ent: validator failed for field "LessonSession.tone": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonsession.Table, lessonsession.Columns, sqlgraph.NewFieldSpec(lessonsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(lessonsession.FieldTone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stages(); ok {
		_spec.SetField(lessonsession.FieldStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonsession.FieldStages, value)
		})
	}
	if value, ok := _u.mutation.CurrentStageIndex(); ok {
		_spec.SetField(lessonsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStageIndex(); ok {
		_spec.AddField(lessonsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(lessonsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(lessonsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(lessonsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(lessonsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(lessonsession.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(lessonsession.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(lessonsession.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsComplete(); ok {
		_spec.SetField(lessonsession.FieldIsComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GradedStages(); ok {
		_spec.SetField(lessonsession.FieldGradedStages, field.TypeJSON, value)
	}
	if _u.mutation.GradedStagesCleared() {
		_spec.ClearField(lessonsession.FieldGradedStages, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalSummary(); ok {
		_spec.SetField(lessonsession.FieldFinalSummary, field.TypeJSON, value)
	}
	if _u.mutation.FinalSummaryCleared() {
		_spec.ClearField(lessonsession.FieldFinalSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lessonsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonSessionUpdateOne is the builder for updating a single LessonSession entity.
type LessonSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonSessionMutation
}

// SetTone sets the "tone" field.
func (_u *LessonSessionUpdateOne) SetTone(v string) *LessonSessionUpdateOne {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *LessonSessionUpdateOne) SetNillableTone(v *string) *LessonSessionUpdateOne {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// SetStages sets the "stages" field.
func (_u *LessonSessionUpdateOne) SetStages(v []lesson.Stage) *LessonSessionUpdateOne {
	_u.mutation.SetStages(v)
	return _u
}

// AppendStages appends value to the "stages" field.
func (_u *LessonSessionUpdateOne) AppendStages(v []lesson.Stage) *LessonSessionUpdateOne {
	_u.mutation.AppendStages(v)
	return _u
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_u *LessonSessionUpdateOne) SetCurrentStageIndex(v int) *LessonSessionUpdateOne {
	_u.mutation.ResetCurrentStageIndex()
	_u.mutation.SetCurrentStageIndex(v)
	return _u
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_u *LessonSessionUpdateOne) SetNillableCurrentStageIndex(v *int) *LessonSessionUpdateOne {
	if v != nil {
		_u.SetCurrentStageIndex(*v)
	}
	return _u
}

// AddCurrentStageIndex adds value to the "current_stage_index" field.
func (_u *LessonSessionUpdateOne) AddCurrentStageIndex(v int) *LessonSessionUpdateOne {
	_u.mutation.AddCurrentStageIndex(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *LessonSessionUpdateOne) SetQuestionsAnswered(v int) *LessonSessionUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *LessonSessionUpdateOne) SetNillableQuestionsAnswered(v *int) *LessonSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *LessonSessionUpdateOne) AddQuestionsAnswered(v int) *LessonSessionUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *LessonSessionUpdateOne) SetCorrectAnswers(v int) *LessonSessionUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *LessonSessionUpdateOne) SetNillableCorrectAnswers(v *int) *LessonSessionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *LessonSessionUpdateOne) AddCorrectAnswers(v int) *LessonSessionUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *LessonSessionUpdateOne) SetXpEarned(v int) *LessonSessionUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *LessonSessionUpdateOne) SetNillableXpEarned(v *int) *LessonSessionUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *LessonSessionUpdateOne) AddXpEarned(v int) *LessonSessionUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *LessonSessionUpdateOne) SetStartTime(v time.Time) *LessonSessionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *LessonSessionUpdateOne) SetNillableStartTime(v *time.Time) *LessonSessionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetIsComplete sets the "is_complete" field.
func (_u *LessonSessionUpdateOne) SetIsComplete(v bool) *LessonSessionUpdateOne {
	_u.mutation.SetIsComplete(v)
	return _u
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_u *LessonSessionUpdateOne) SetNillableIsComplete(v *bool) *LessonSessionUpdateOne {
	if v != nil {
		_u.SetIsComplete(*v)
	}
	return _u
}

// SetGradedStages sets the "graded_stages" field.
func (_u *LessonSessionUpdateOne) SetGradedStages(v map[int]bool) *LessonSessionUpdateOne {
	_u.mutation.SetGradedStages(v)
	return _u
}

// ClearGradedStages clears the value of the "graded_stages" field.
func (_u *LessonSessionUpdateOne) ClearGradedStages() *LessonSessionUpdateOne {
	_u.mutation.ClearGradedStages()
	return _u
}

// SetFinalSummary sets the "final_summary" field.
func (_u *LessonSessionUpdateOne) SetFinalSummary(v *lesson.StatsSnapshot) *LessonSessionUpdateOne {
	_u.mutation.SetFinalSummary(v)
	return _u
}

// ClearFinalSummary clears the value of the "final_summary" field.
func (_u *LessonSessionUpdateOne) ClearFinalSummary() *LessonSessionUpdateOne {
	_u.mutation.ClearFinalSummary()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LessonSessionUpdateOne) SetCompletedAt(v time.Time) *LessonSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LessonSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *LessonSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LessonSessionUpdateOne) ClearCompletedAt() *LessonSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonSessionUpdateOne) SetUpdatedAt(v time.Time) *LessonSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonSessionMutation object of the builder.
func (_u *LessonSessionUpdateOne) Mutation() *LessonSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonSessionUpdate builder.
func (_u *LessonSessionUpdateOne) Where(ps ...predicate.LessonSession) *LessonSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonSessionUpdateOne) Select(field string, fields ...string) *LessonSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonSession entity.
func (_u *LessonSessionUpdateOne) Save(ctx context.Context) (*LessonSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonSessionUpdateOne) SaveX(ctx context.Context) *LessonSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Tone(); ok {
		if err := lessonsession.ToneValidator(v); err != nil {
			return &ValidationError{Name: "tone", err: fmt.Errorf(`ent: validator failed for field "LessonSession.tone": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonSessionUpdateOne) sqlSave(ctx context.Context) (_node *LessonSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonsession.Table, lessonsession.Columns, sqlgraph.NewFieldSpec(lessonsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonsession.FieldID)
		for _, f := range fields {
			if !lessonsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(lessonsession.FieldTone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stages(); ok {
		_spec.SetField(lessonsession.FieldStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonsession.FieldStages, value)
		})
	}
	if value, ok := _u.mutation.CurrentStageIndex(); ok {
		_spec.SetField(lessonsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStageIndex(); ok {
		_spec.AddField(lessonsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(lessonsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(lessonsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(lessonsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(lessonsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(lessonsession.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(lessonsession.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(lessonsession.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsComplete(); ok {
		_spec.SetField(lessonsession.FieldIsComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GradedStages(); ok {
		_spec.SetField(lessonsession.FieldGradedStages, field.TypeJSON, value)
	}
	if _u.mutation.GradedStagesCleared() {
		_spec.ClearField(lessonsession.FieldGradedStages, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalSummary(); ok {
		_spec.SetField(lessonsession.FieldFinalSummary, field.TypeJSON, value)
	}
	if _u.mutation.FinalSummaryCleared() {
		_spec.ClearField(lessonsession.FieldFinalSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lessonsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LessonSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
