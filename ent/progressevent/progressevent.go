// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressevent type in the database.
	Label = "progress_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStageNumber holds the string denoting the stage_number field in the database.
	FieldStageNumber = "stage_number"
	// FieldGraded holds the string denoting the graded field in the database.
	FieldGraded = "graded"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldXpAwarded holds the string denoting the xp_awarded field in the database.
	FieldXpAwarded = "xp_awarded"
	// FieldCompletedSession holds the string denoting the completed_session field in the database.
	FieldCompletedSession = "completed_session"
	// Table holds the table name of the progressevent in the database.
	Table = "progress_events"
)

// Columns holds all SQL columns for progressevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldStageNumber,
	FieldGraded,
	FieldCorrect,
	FieldXpAwarded,
	FieldCompletedSession,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultGraded holds the default value on creation for the "graded" field.
	DefaultGraded bool
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect bool
	// DefaultXpAwarded holds the default value on creation for the "xp_awarded" field.
	DefaultXpAwarded int
	// DefaultCompletedSession holds the default value on creation for the "completed_session" field.
	DefaultCompletedSession bool
)

// OrderOption defines the ordering options for the ProgressEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStageNumber orders the results by the stage_number field.
func ByStageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageNumber, opts...).ToFunc()
}

// ByGraded orders the results by the graded field.
func ByGraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraded, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByXpAwarded orders the results by the xp_awarded field.
func ByXpAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpAwarded, opts...).ToFunc()
}

// ByCompletedSession orders the results by the completed_session field.
func ByCompletedSession(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedSession, opts...).ToFunc()
}
