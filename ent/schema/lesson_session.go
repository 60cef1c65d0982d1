package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/abhisek/questline/internal/lesson"
)

// LessonSession is the persisted snapshot of one lesson session. One row
// per session, updated in place after every progress submission.
type LessonSession struct {
	ent.Schema
}

func (LessonSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID issued at session creation"),
		field.String("tone").
			NotEmpty().
			Comment("Personality tone, fixed at creation"),
		field.JSON("stages", []lesson.Stage{}).
			Comment("Full stage sequence, fixed at creation"),
		field.Int("current_stage_index").
			Default(0),
		field.Int("questions_answered").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("xp_earned").
			Default(0),
		field.Time("start_time"),
		field.Bool("is_complete").
			Default(false),
		field.JSON("graded_stages", map[int]bool{}).
			Optional().
			Comment("Stage indexes that consumed their graded submission"),
		field.JSON("final_summary", &lesson.StatsSnapshot{}).
			Optional().
			Comment("Summary frozen at completion time"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LessonSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("is_complete"),
	}
}
