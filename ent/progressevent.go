// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/progressevent"
)

// ProgressEvent is the model entity for the ProgressEvent schema.
type ProgressEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the session this event belongs to
	SessionID string `json:"session_id,omitempty"`
	// 1-based stage the event was submitted for
	StageNumber int `json:"stage_number,omitempty"`
	// Graded holds the value of the "graded" field.
	Graded bool `json:"graded,omitempty"`
	// Grading outcome (graded events only)
	Correct bool `json:"correct,omitempty"`
	// XpAwarded holds the value of the "xp_awarded" field.
	XpAwarded int `json:"xp_awarded,omitempty"`
	// True when this event completed the session
	CompletedSession bool `json:"completed_session,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progressevent.FieldGraded, progressevent.FieldCorrect, progressevent.FieldCompletedSession:
			values[i] = new(sql.NullBool)
		case progressevent.FieldID, progressevent.FieldSequence, progressevent.FieldStageNumber, progressevent.FieldXpAwarded:
			values[i] = new(sql.NullInt64)
		case progressevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case progressevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressEvent fields.
func (_m *ProgressEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progressevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progressevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case progressevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case progressevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case progressevent.FieldStageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_number", values[i])
			} else if value.Valid {
				_m.StageNumber = int(value.Int64)
			}
		case progressevent.FieldGraded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field graded", values[i])
			} else if value.Valid {
				_m.Graded = value.Bool
			}
		case progressevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case progressevent.FieldXpAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_awarded", values[i])
			} else if value.Valid {
				_m.XpAwarded = int(value.Int64)
			}
		case progressevent.FieldCompletedSession:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed_session", values[i])
			} else if value.Valid {
				_m.CompletedSession = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ProgressEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressEvent.
// Note that you need to call ProgressEvent.Unwrap() before calling this method if this ProgressEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProgressEvent) Update() *ProgressEventUpdateOne {
	return NewProgressEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProgressEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProgressEvent) Unwrap() *ProgressEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProgressEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("stage_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageNumber))
	builder.WriteString(", ")
	builder.WriteString("graded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Graded))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("xp_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAwarded))
	builder.WriteString(", ")
	builder.WriteString("completed_session=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedSession))
	builder.WriteByte(')')
	return builder.String()
}

// ProgressEvents is a parsable slice of ProgressEvent.
type ProgressEvents []*ProgressEvent
