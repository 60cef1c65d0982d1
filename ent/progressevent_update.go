// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/questline/ent/predicate"
	"github.com/abhisek/questline/ent/progressevent"
)

// ProgressEventUpdate is the builder for updating ProgressEvent entities.
type ProgressEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressEventMutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdate) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ProgressEventUpdate) SetSessionID(v string) *ProgressEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableSessionID(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStageNumber sets the "stage_number" field.
func (_u *ProgressEventUpdate) SetStageNumber(v int) *ProgressEventUpdate {
	_u.mutation.ResetStageNumber()
	_u.mutation.SetStageNumber(v)
	return _u
}

// SetNillableStageNumber sets the "stage_number" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableStageNumber(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetStageNumber(*v)
	}
	return _u
}

// AddStageNumber adds value to the "stage_number" field.
func (_u *ProgressEventUpdate) AddStageNumber(v int) *ProgressEventUpdate {
	_u.mutation.AddStageNumber(v)
	return _u
}

// SetGraded sets the "graded" field.
func (_u *ProgressEventUpdate) SetGraded(v bool) *ProgressEventUpdate {
	_u.mutation.SetGraded(v)
	return _u
}

// SetNillableGraded sets the "graded" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableGraded(v *bool) *ProgressEventUpdate {
	if v != nil {
		_u.SetGraded(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ProgressEventUpdate) SetCorrect(v bool) *ProgressEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableCorrect(v *bool) *ProgressEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *ProgressEventUpdate) SetXpAwarded(v int) *ProgressEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableXpAwarded(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *ProgressEventUpdate) AddXpAwarded(v int) *ProgressEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetCompletedSession sets the "completed_session" field.
func (_u *ProgressEventUpdate) SetCompletedSession(v bool) *ProgressEventUpdate {
	_u.mutation.SetCompletedSession(v)
	return _u
}

// SetNillableCompletedSession sets the "completed_session" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableCompletedSession(v *bool) *ProgressEventUpdate {
	if v != nil {
		_u.SetCompletedSession(*v)
	}
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdate) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := progressevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(progressevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageNumber(); ok {
		_spec.SetField(progressevent.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageNumber(); ok {
		_spec.AddField(progressevent.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Graded(); ok {
		_spec.SetField(progressevent.FieldGraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(progressevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(progressevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(progressevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedSession(); ok {
		_spec.SetField(progressevent.FieldCompletedSession, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressEventUpdateOne is the builder for updating a single ProgressEvent entity.
type ProgressEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ProgressEventUpdateOne) SetSessionID(v string) *ProgressEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableSessionID(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStageNumber sets the "stage_number" field.
func (_u *ProgressEventUpdateOne) SetStageNumber(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetStageNumber()
	_u.mutation.SetStageNumber(v)
	return _u
}

// SetNillableStageNumber sets the "stage_number" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableStageNumber(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetStageNumber(*v)
	}
	return _u
}

// AddStageNumber adds value to the "stage_number" field.
func (_u *ProgressEventUpdateOne) AddStageNumber(v int) *ProgressEventUpdateOne {
	_u.mutation.AddStageNumber(v)
	return _u
}

// SetGraded sets the "graded" field.
func (_u *ProgressEventUpdateOne) SetGraded(v bool) *ProgressEventUpdateOne {
	_u.mutation.SetGraded(v)
	return _u
}

// SetNillableGraded sets the "graded" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableGraded(v *bool) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetGraded(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ProgressEventUpdateOne) SetCorrect(v bool) *ProgressEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableCorrect(v *bool) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *ProgressEventUpdateOne) SetXpAwarded(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableXpAwarded(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *ProgressEventUpdateOne) AddXpAwarded(v int) *ProgressEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetCompletedSession sets the "completed_session" field.
func (_u *ProgressEventUpdateOne) SetCompletedSession(v bool) *ProgressEventUpdateOne {
	_u.mutation.SetCompletedSession(v)
	return _u
}

// SetNillableCompletedSession sets the "completed_session" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableCompletedSession(v *bool) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetCompletedSession(*v)
	}
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdateOne) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdateOne) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressEventUpdateOne) Select(field string, fields ...string) *ProgressEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressEvent entity.
func (_u *ProgressEventUpdateOne) Save(ctx context.Context) (*ProgressEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) SaveX(ctx context.Context) *ProgressEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := progressevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdateOne) sqlSave(ctx context.Context) (_node *ProgressEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressevent.FieldID)
		for _, f := range fields {
			if !progressevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(progressevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageNumber(); ok {
		_spec.SetField(progressevent.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageNumber(); ok {
		_spec.AddField(progressevent.FieldStageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Graded(); ok {
		_spec.SetField(progressevent.FieldGraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(progressevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(progressevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(progressevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedSession(); ok {
		_spec.SetField(progressevent.FieldCompletedSession, field.TypeBool, value)
	}
	_node = &ProgressEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
