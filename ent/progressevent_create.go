// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questline/ent/progressevent"
)

// ProgressEventCreate is the builder for creating a ProgressEvent entity.
type ProgressEventCreate struct {
	config
	mutation *ProgressEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProgressEventCreate) SetSequence(v int64) *ProgressEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProgressEventCreate) SetTimestamp(v time.Time) *ProgressEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableTimestamp(v *time.Time) *ProgressEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ProgressEventCreate) SetSessionID(v string) *ProgressEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStageNumber sets the "stage_number" field.
func (_c *ProgressEventCreate) SetStageNumber(v int) *ProgressEventCreate {
	_c.mutation.SetStageNumber(v)
	return _c
}

// SetGraded sets the "graded" field.
func (_c *ProgressEventCreate) SetGraded(v bool) *ProgressEventCreate {
	_c.mutation.SetGraded(v)
	return _c
}

// SetNillableGraded sets the "graded" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableGraded(v *bool) *ProgressEventCreate {
	if v != nil {
		_c.SetGraded(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ProgressEventCreate) SetCorrect(v bool) *ProgressEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableCorrect(v *bool) *ProgressEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *ProgressEventCreate) SetXpAwarded(v int) *ProgressEventCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableXpAwarded(v *int) *ProgressEventCreate {
	if v != nil {
		_c.SetXpAwarded(*v)
	}
	return _c
}

// SetCompletedSession sets the "completed_session" field.
func (_c *ProgressEventCreate) SetCompletedSession(v bool) *ProgressEventCreate {
	_c.mutation.SetCompletedSession(v)
	return _c
}

// SetNillableCompletedSession sets the "completed_session" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableCompletedSession(v *bool) *ProgressEventCreate {
	if v != nil {
		_c.SetCompletedSession(*v)
	}
	return _c
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_c *ProgressEventCreate) Mutation() *ProgressEventMutation {
	return _c.mutation
}

// Save creates the ProgressEvent in the database.
func (_c *ProgressEventCreate) Save(ctx context.Context) (*ProgressEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressEventCreate) SaveX(ctx context.Context) *ProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := progressevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Graded(); !ok {
		v := progressevent.DefaultGraded
		_c.mutation.SetGraded(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := progressevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		v := progressevent.DefaultXpAwarded
		_c.mutation.SetXpAwarded(v)
	}
	if _, ok := _c.mutation.CompletedSession(); !ok {
		v := progressevent.DefaultCompletedSession
		_c.mutation.SetCompletedSession(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProgressEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProgressEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ProgressEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := progressevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageNumber(); !ok {
		return &ValidationError{Name: "stage_number", err: errors.New(`ent: missing required field "ProgressEvent.stage_number"`)}
	}
	if _, ok := _c.mutation.Graded(); !ok {
		return &ValidationError{Name: "graded", err: errors.New(`ent: missing required field "ProgressEvent.graded"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ProgressEvent.correct"`)}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "ProgressEvent.xp_awarded"`)}
	}
	if _, ok := _c.mutation.CompletedSession(); !ok {
		return &ValidationError{Name: "completed_session", err: errors.New(`ent: missing required field "ProgressEvent.completed_session"`)}
	}
	return nil
}

func (_c *ProgressEventCreate) sqlSave(ctx context.Context) (*ProgressEvent, error) {
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

func (_c *ProgressEventCreate) createSpec() (*ProgressEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressevent.Table, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(progressevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(progressevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(progressevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StageNumber(); ok {
		_spec.SetField(progressevent.FieldStageNumber, field.TypeInt, value)
		_node.StageNumber = value
	}
	if value, ok := _c.mutation.Graded(); ok {
		_spec.SetField(progressevent.FieldGraded, field.TypeBool, value)
		_node.Graded = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(progressevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(progressevent.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	if value, ok := _c.mutation.CompletedSession(); ok {
		_spec.SetField(progressevent.FieldCompletedSession, field.TypeBool, value)
		_node.CompletedSession = value
	}
	return _node, _spec
}

// ProgressEventCreateBulk is the builder for creating many ProgressEvent entities in bulk.
type ProgressEventCreateBulk struct {
	config
	err      error
	builders []*ProgressEventCreate
}

// Save creates the ProgressEvent entities in the database.
func (_c *ProgressEventCreateBulk) Save(ctx context.Context) ([]*ProgressEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressEventMutation)
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
func (_c *ProgressEventCreateBulk) SaveX(ctx context.Context) []*ProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
