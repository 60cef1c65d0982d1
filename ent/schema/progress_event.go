package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEvent is the append-only audit record of one progress
// submission: which stage was acknowledged, whether it was graded, and
// what it earned.
type ProgressEvent struct {
	ent.Schema
}

func (ProgressEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session this event belongs to"),
		field.Int("stage_number").
			Comment("1-based stage the event was submitted for"),
		field.Bool("graded").
			Default(false),
		field.Bool("correct").
			Default(false).
			Comment("Grading outcome (graded events only)"),
		field.Int("xp_awarded").
			Default(0),
		field.Bool("completed_session").
			Default(false).
			Comment("True when this event completed the session"),
	}
}

func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
