// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/lessonsession"
	"github.com/abhisek/questline/internal/lesson"
)

// LessonSession is the model entity for the LessonSession schema.
type LessonSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID issued at session creation
	SessionID string `json:"session_id,omitempty"`
	// Personality tone, fixed at creation
	Tone string `json:"tone,omitempty"`
	// Full stage sequence, fixed at creation
	Stages []lesson.Stage `json:"stages,omitempty"`
	// CurrentStageIndex holds the value of the "current_stage_index" field.
	CurrentStageIndex int `json:"current_stage_index,omitempty"`
	// QuestionsAnswered holds the value of the "questions_answered" field.
	QuestionsAnswered int `json:"questions_answered,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned int `json:"xp_earned,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// IsComplete holds the value of the "is_complete" field.
	IsComplete bool `json:"is_complete,omitempty"`
	// Stage indexes that consumed their graded submission
	GradedStages map[int]bool `json:"graded_stages,omitempty"`
	// Summary frozen at completion time
	FinalSummary *lesson.StatsSnapshot `json:"final_summary,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonsession.FieldStages, lessonsession.FieldGradedStages, lessonsession.FieldFinalSummary:
			values[i] = new([]byte)
		case lessonsession.FieldIsComplete:
			values[i] = new(sql.NullBool)
		case lessonsession.FieldID, lessonsession.FieldCurrentStageIndex, lessonsession.FieldQuestionsAnswered, lessonsession.FieldCorrectAnswers, lessonsession.FieldXpEarned:
			values[i] = new(sql.NullInt64)
		case lessonsession.FieldSessionID, lessonsession.FieldTone:
			values[i] = new(sql.NullString)
		case lessonsession.FieldStartTime, lessonsession.FieldCompletedAt, lessonsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonSession fields.
func (_m *LessonSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case lessonsession.FieldTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tone", values[i])
			} else if value.Valid {
				_m.Tone = value.String
			}
		case lessonsession.FieldStages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stages); err != nil {
					return fmt.Errorf("unmarshal field stages: %w", err)
				}
			}
		case lessonsession.FieldCurrentStageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage_index", values[i])
			} else if value.Valid {
				_m.CurrentStageIndex = int(value.Int64)
			}
		case lessonsession.FieldQuestionsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_answered", values[i])
			} else if value.Valid {
				_m.QuestionsAnswered = int(value.Int64)
			}
		case lessonsession.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case lessonsession.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				_m.XpEarned = int(value.Int64)
			}
		case lessonsession.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case lessonsession.FieldIsComplete:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_complete", values[i])
			} else if value.Valid {
				_m.IsComplete = value.Bool
			}
		case lessonsession.FieldGradedStages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field graded_stages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GradedStages); err != nil {
					return fmt.Errorf("unmarshal field graded_stages: %w", err)
				}
			}
		case lessonsession.FieldFinalSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field final_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FinalSummary); err != nil {
					return fmt.Errorf("unmarshal field final_summary: %w", err)
				}
			}
		case lessonsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case lessonsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonSession.
// This includes values selected through modifiers, order, etc.
func (_m *LessonSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonSession.
// Note that you need to call LessonSession.Unwrap() before calling this method if this LessonSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonSession) Update() *LessonSessionUpdateOne {
	return NewLessonSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonSession) Unwrap() *LessonSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonSession) String() string {
	var builder strings.Builder
	builder.WriteString("LessonSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("tone=")
	builder.WriteString(_m.Tone)
	builder.WriteString(", ")
	builder.WriteString("stages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stages))
	builder.WriteString(", ")
	builder.WriteString("current_stage_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStageIndex))
	builder.WriteString(", ")
	builder.WriteString("questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAnswered))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpEarned))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_complete=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsComplete))
	builder.WriteString(", ")
	builder.WriteString("graded_stages=")
	builder.WriteString(fmt.Sprintf("%v", _m.GradedStages))
	builder.WriteString(", ")
	builder.WriteString("final_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalSummary))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LessonSessions is a parsable slice of LessonSession.
type LessonSessions []*LessonSession
