// Package engine implements the lesson progression engine: the state
// machine that advances a session stage by stage, grades boss battle
// answers, and accumulates session statistics.
//
// All operations are synchronous, single-threaded state transforms. The
// engine assumes at most one in-flight Submit per session; serializing
// calls is the caller's responsibility.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/scoring"
)

// ErrNoCurrentStage is returned by CurrentStage on a completed session.
// Callers must check Session().Complete first.
var ErrNoCurrentStage = errors.New("session complete: no current stage")

// ErrInvalidSession marks a session whose persisted state violates the
// engine invariants (e.g. stage index out of bounds).
var ErrInvalidSession = errors.New("invalid session")

// EventKind discriminates progress event variants.
type EventKind int

const (
	// EventUngraded acknowledges a non-graded block (explainer, victory).
	EventUngraded EventKind = iota

	// EventAnswer carries a raw answer for the engine to grade.
	EventAnswer

	// EventResult carries a result already graded by the renderer.
	EventResult
)

// Event is a single progress signal for the current stage.
type Event struct {
	Kind EventKind

	// EventAnswer fields.
	Selected      string
	CorrectAnswer string
	XPReward      int

	// EventResult fields.
	Correct bool
	XP      int
}

// Ungraded builds an advance event for a non-graded block.
func Ungraded() Event {
	return Event{Kind: EventUngraded}
}

// Answer builds a graded event the engine will grade itself.
func Answer(selected, correctAnswer string, xpReward int) Event {
	return Event{Kind: EventAnswer, Selected: selected, CorrectAnswer: correctAnswer, XPReward: xpReward}
}

// GradedResult builds a graded event from a result the renderer already
// computed. Used by the HTTP contract, where clients grade locally and post
// {correct, xp}.
func GradedResult(correct bool, xp int) Event {
	return Event{Kind: EventResult, Correct: correct, XP: xp}
}

// Outcome is the result of one Submit call: either the stage to render
// next, or the completion record.
type Outcome struct {
	Completed bool
	NextStage *lesson.Stage
	Summary   *lesson.StatsSnapshot

	// Result is set when the event was graded and counted, for renderer
	// feedback. Nil for ungraded events and ignored repeat submissions.
	Result *scoring.Result
}

// Engine drives one lesson session.
type Engine struct {
	session *lesson.Session
	now     func() time.Time
}

// New creates a session for the given stages and returns its engine.
func New(tone lesson.Tone, stages []lesson.Stage) *Engine {
	e := &Engine{now: time.Now}
	e.session = &lesson.Session{
		ID:     uuid.NewString(),
		Tone:   tone,
		Stages: stages,
		Stats:  lesson.Stats{StartTime: e.now()},
	}
	return e
}

// Restore wraps a previously persisted session, validating the engine
// invariants first. A violated invariant means the stored state is corrupt
// and the session cannot be resumed.
func Restore(s *lesson.Session) (*Engine, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil session", ErrInvalidSession)
	}
	if s.CurrentStageIndex < 0 || s.CurrentStageIndex > len(s.Stages) {
		return nil, fmt.Errorf("%w %s: stage index %d out of range [0,%d]",
			ErrInvalidSession, s.ID, s.CurrentStageIndex, len(s.Stages))
	}
	if s.Complete != (s.CurrentStageIndex == len(s.Stages)) {
		return nil, fmt.Errorf("%w %s: completion flag disagrees with stage index",
			ErrInvalidSession, s.ID)
	}
	if s.Stats.CorrectAnswers > s.Stats.QuestionsAnswered {
		return nil, fmt.Errorf("%w %s: correct answers exceed questions answered",
			ErrInvalidSession, s.ID)
	}
	return &Engine{session: s, now: time.Now}, nil
}

// Session returns the engine's session. The caller must not mutate it.
func (e *Engine) Session() *lesson.Session {
	return e.session
}

// CurrentStage returns the stage the learner is on. Fails with
// ErrNoCurrentStage once the session is complete.
func (e *Engine) CurrentStage() (*lesson.Stage, error) {
	s := e.session
	if s.Complete {
		return nil, ErrNoCurrentStage
	}
	return &s.Stages[s.CurrentStageIndex], nil
}

// Submit applies one progress event and returns what to do next.
//
// Graded events are counted at most once per stage instance; repeats are
// no-ops for stats but still advance. Submitting on a completed session
// replays the frozen completion outcome without touching anything, which
// keeps a stray extra "Continue" harmless.
func (e *Engine) Submit(ev Event) Outcome {
	s := e.session
	if s.Complete {
		return e.completionOutcome(nil)
	}

	var result *scoring.Result
	if ev.Kind == EventAnswer || ev.Kind == EventResult {
		if !s.StageGraded(s.CurrentStageIndex) {
			var r scoring.Result
			if ev.Kind == EventAnswer {
				r = scoring.Grade(ev.Selected, ev.CorrectAnswer, ev.XPReward)
			} else {
				r = scoring.Result{Correct: ev.Correct, XPAwarded: ev.XP}
			}
			s.Stats = scoring.Record(s.Stats, r)
			s.MarkStageGraded(s.CurrentStageIndex)
			result = &r
		}
	}

	sq := Sequencer{Session: s}
	if sq.Advance() {
		return e.completionOutcome(result)
	}

	return Outcome{
		NextStage: &s.Stages[s.CurrentStageIndex],
		Result:    result,
	}
}

// completionOutcome returns the completion record, freezing the summary on
// first use so later replays are identical.
func (e *Engine) completionOutcome(result *scoring.Result) Outcome {
	s := e.session
	if s.FinalSummary == nil {
		now := e.now()
		snap := scoring.Summarize(s.Stats, now)
		s.FinalSummary = &snap
		s.CompletedAt = &now
	}
	return Outcome{Completed: true, Summary: s.FinalSummary, Result: result}
}
