// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questline/ent/lessonsession"
	"github.com/abhisek/questline/internal/lesson"
)

// LessonSessionCreate is the builder for creating a LessonSession entity.
type LessonSessionCreate struct {
	config
	mutation *LessonSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *LessonSessionCreate) SetSessionID(v string) *LessonSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTone sets the "tone" field.
func (_c *LessonSessionCreate) SetTone(v string) *LessonSessionCreate {
	_c.mutation.SetTone(v)
	return _c
}

// SetStages sets the "stages" field.
func (_c *LessonSessionCreate) SetStages(v []lesson.Stage) *LessonSessionCreate {
	_c.mutation.SetStages(v)
	return _c
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_c *LessonSessionCreate) SetCurrentStageIndex(v int) *LessonSessionCreate {
	_c.mutation.SetCurrentStageIndex(v)
	return _c
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_c *LessonSessionCreate) SetNillableCurrentStageIndex(v *int) *LessonSessionCreate {
	if v != nil {
		_c.SetCurrentStageIndex(*v)
	}
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *LessonSessionCreate) SetQuestionsAnswered(v int) *LessonSessionCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_c *LessonSessionCreate) SetNillableQuestionsAnswered(v *int) *LessonSessionCreate {
	if v != nil {
		_c.SetQuestionsAnswered(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *LessonSessionCreate) SetCorrectAnswers(v int) *LessonSessionCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *LessonSessionCreate) SetNillableCorrectAnswers(v *int) *LessonSessionCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *LessonSessionCreate) SetXpEarned(v int) *LessonSessionCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *LessonSessionCreate) SetNillableXpEarned(v *int) *LessonSessionCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *LessonSessionCreate) SetStartTime(v time.Time) *LessonSessionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetIsComplete sets the "is_complete" field.
func (_c *LessonSessionCreate) SetIsComplete(v bool) *LessonSessionCreate {
	_c.mutation.SetIsComplete(v)
	return _c
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_c *LessonSessionCreate) SetNillableIsComplete(v *bool) *LessonSessionCreate {
	if v != nil {
		_c.SetIsComplete(*v)
	}
	return _c
}

// SetGradedStages sets the "graded_stages" field.
func (_c *LessonSessionCreate) SetGradedStages(v map[int]bool) *LessonSessionCreate {
	_c.mutation.SetGradedStages(v)
	return _c
}

// SetFinalSummary sets the "final_summary" field.
func (_c *LessonSessionCreate) SetFinalSummary(v *lesson.StatsSnapshot) *LessonSessionCreate {
	_c.mutation.SetFinalSummary(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LessonSessionCreate) SetCompletedAt(v time.Time) *LessonSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LessonSessionCreate) SetNillableCompletedAt(v *time.Time) *LessonSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonSessionCreate) SetUpdatedAt(v time.Time) *LessonSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonSessionCreate) SetNillableUpdatedAt(v *time.Time) *LessonSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LessonSessionMutation object of the builder.
func (_c *LessonSessionCreate) Mutation() *LessonSessionMutation {
	return _c.mutation
}

// Save creates the LessonSession in the database.
func (_c *LessonSessionCreate) Save(ctx context.Context) (*LessonSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonSessionCreate) SaveX(ctx context.Context) *LessonSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonSessionCreate) defaults() {
	if _, ok := _c.mutation.CurrentStageIndex(); !ok {
		v := lessonsession.DefaultCurrentStageIndex
		_c.mutation.SetCurrentStageIndex(v)
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		v := lessonsession.DefaultQuestionsAnswered
		_c.mutation.SetQuestionsAnswered(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := lessonsession.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := lessonsession.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
	if _, ok := _c.mutation.IsComplete(); !ok {
		v := lessonsession.DefaultIsComplete
		_c.mutation.SetIsComplete(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lessonsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LessonSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := lessonsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tone(); !ok {
		return &ValidationError{Name: "tone", err: errors.New(`ent: missing required field "LessonSession.tone"`)}
	}
	if v, ok := _c.mutation.Tone(); ok {
		if err := lessonsession.ToneValidator(v); err != nil {
			return &ValidationError{Name: "tone", err: fmt.Errorf(`ent: validator failed for field "LessonSession.tone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stages(); !ok {
		return &ValidationError{Name: "stages", err: errors.New(`ent: missing required field "LessonSession.stages"`)}
	}
	if _, ok := _c.mutation.CurrentStageIndex(); !ok {
		return &ValidationError{Name: "current_stage_index", err: errors.New(`ent: missing required field "LessonSession.current_stage_index"`)}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "LessonSession.questions_answered"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "LessonSession.correct_answers"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "LessonSession.xp_earned"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "LessonSession.start_time"`)}
	}
	if _, ok := _c.mutation.IsComplete(); !ok {
		return &ValidationError{Name: "is_complete", err: errors.New(`ent: missing required field "LessonSession.is_complete"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LessonSession.updated_at"`)}
	}
	return nil
}

func (_c *LessonSessionCreate) sqlSave(ctx context.Context) (*LessonSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonSessionCreate) createSpec() (*LessonSession, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonsession.Table, sqlgraph.NewFieldSpec(lessonsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(lessonsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Tone(); ok {
		_spec.SetField(lessonsession.FieldTone, field.TypeString, value)
		_node.Tone = value
	}
	if value, ok := _c.mutation.Stages(); ok {
		_spec.SetField(lessonsession.FieldStages, field.TypeJSON, value)
		_node.Stages = value
	}
	if value, ok := _c.mutation.CurrentStageIndex(); ok {
		_spec.SetField(lessonsession.FieldCurrentStageIndex, field.TypeInt, value)
		_node.CurrentStageIndex = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(lessonsession.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(lessonsession.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(lessonsession.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(lessonsession.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.IsComplete(); ok {
		_spec.SetField(lessonsession.FieldIsComplete, field.TypeBool, value)
		_node.IsComplete = value
	}
	if value, ok := _c.mutation.GradedStages(); ok {
		_spec.SetField(lessonsession.FieldGradedStages, field.TypeJSON, value)
		_node.GradedStages = value
	}
	if value, ok := _c.mutation.FinalSummary(); ok {
		_spec.SetField(lessonsession.FieldFinalSummary, field.TypeJSON, value)
		_node.FinalSummary = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(lessonsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LessonSessionCreateBulk is the builder for creating many LessonSession entities in bulk.
type LessonSessionCreateBulk struct {
	config
	err      error
	builders []*LessonSessionCreate
}

// Save creates the LessonSession entities in the database.
func (_c *LessonSessionCreateBulk) Save(ctx context.Context) ([]*LessonSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonSessionCreateBulk) SaveX(ctx context.Context) []*LessonSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
