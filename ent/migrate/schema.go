// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonSessionsColumns holds the columns for the "lesson_sessions" table.
	LessonSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "tone", Type: field.TypeString},
		{Name: "stages", Type: field.TypeJSON},
		{Name: "current_stage_index", Type: field.TypeInt, Default: 0},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "is_complete", Type: field.TypeBool, Default: false},
		{Name: "graded_stages", Type: field.TypeJSON, Nullable: true},
		{Name: "final_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LessonSessionsTable holds the schema information for the "lesson_sessions" table.
	LessonSessionsTable = &schema.Table{
		Name:       "lesson_sessions",
		Columns:    LessonSessionsColumns,
		PrimaryKey: []*schema.Column{LessonSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonsession_session_id",
				Unique:  false,
				Columns: []*schema.Column{LessonSessionsColumns[1]},
			},
			{
				Name:    "lessonsession_is_complete",
				Unique:  false,
				Columns: []*schema.Column{LessonSessionsColumns[9]},
			},
		},
	}
	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage_number", Type: field.TypeInt},
		{Name: "graded", Type: field.TypeBool, Default: false},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "xp_awarded", Type: field.TypeInt, Default: 0},
		{Name: "completed_session", Type: field.TypeBool, Default: false},
	}
	// ProgressEventsTable holds the schema information for the "progress_events" table.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[1]},
			},
			{
				Name:    "progressevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[2]},
			},
			{
				Name:    "progressevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LessonSessionsTable,
		ProgressEventsTable,
	}
)

func init() {
}
