package engine

import "github.com/abhisek/questline/internal/lesson"

// Sequencer owns the stage-pointer transitions for one session.
//
// The per-session state machine is InStage(i) for i in [0, len(stages)),
// plus the terminal Complete state. Every advance event moves i forward by
// one; reaching len(stages) flips the session to Complete. There are no
// backward transitions and a stage is never re-entered.
type Sequencer struct {
	Session *lesson.Session
}

// Advance applies one advance transition. Both correct and incorrect
// answers permit advancement ("Continue" is always unlocked). Advancing an
// already-complete session is a no-op, so completion side effects never
// fire twice. Returns true when the session is complete after the call.
func (sq Sequencer) Advance() bool {
	s := sq.Session
	if s.Complete {
		return true
	}

	s.CurrentStageIndex++
	if s.CurrentStageIndex >= len(s.Stages) {
		s.CurrentStageIndex = len(s.Stages)
		s.Complete = true
	}
	return s.Complete
}
