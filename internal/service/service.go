// Package service exposes lesson sessions through a transport-neutral
// request/response contract. The TUI and the HTTP layer both drive
// sessions through it, so grading, persistence, and the audit log behave
// identically regardless of surface.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/questline/internal/engine"
	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/lessongen"
	"github.com/abhisek/questline/internal/store"
)

// ProgressRequest is the wire shape of one progress submission. Both
// fields absent means an ungraded acknowledgement; Correct present means
// the caller graded a boss battle locally and reports the outcome.
type ProgressRequest struct {
	Correct *bool `json:"correct,omitempty"`
	XP      *int  `json:"xp,omitempty"`
}

// ProgressOutcome is the result of one submission: the updated session
// while in progress, or the frozen summary once complete.
type ProgressOutcome struct {
	Completed bool
	Session   *lesson.Session
	Summary   *lesson.StatsSnapshot
}

// Service orchestrates session lifecycle: generation, progression,
// persistence, and the append-only audit trail.
type Service struct {
	sessions store.SessionRepo
	events   store.EventRepo
	gen      lessongen.Generator
	log      *zap.Logger
}

// New builds a Service. A nil logger disables logging.
func New(sessions store.SessionRepo, events store.EventRepo, gen lessongen.Generator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{sessions: sessions, events: events, gen: gen, log: log}
}

// Create generates a lesson on the given topic and persists a fresh
// session at stage 1.
func (s *Service) Create(ctx context.Context, tone lesson.Tone, topic string) (*lesson.Session, error) {
	stages, err := s.gen.GenerateStages(ctx, topic, tone)
	if err != nil {
		return nil, fmt.Errorf("generate stages: %w", err)
	}

	eng := engine.New(tone, stages)
	sess := eng.Session()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.log.Info("session created",
		zap.String("sessionId", sess.ID),
		zap.String("tone", string(tone)),
		zap.Int("totalStages", sess.TotalStages()))
	return sess, nil
}

// Get loads a session snapshot. Unknown ids surface store.ErrNotFound;
// corrupt persisted state surfaces engine.ErrInvalidSession.
func (s *Service) Get(ctx context.Context, id string) (*lesson.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := engine.Restore(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Submit applies one progress event to the identified session, persists
// the new state, and appends the audit record. Callers must not issue
// concurrent submissions for the same session.
func (s *Service) Submit(ctx context.Context, id string, ev engine.Event) (*ProgressOutcome, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	eng, err := engine.Restore(sess)
	if err != nil {
		return nil, err
	}

	stageNumber := sess.CurrentStageIndex + 1
	alreadyComplete := sess.Complete

	out := eng.Submit(ev)

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	// Replayed submissions on a complete session change nothing, so they
	// leave no audit trace either.
	if !alreadyComplete {
		data := store.ProgressEventData{
			SessionID:        sess.ID,
			StageNumber:      stageNumber,
			CompletedSession: out.Completed,
		}
		if out.Result != nil {
			data.Graded = true
			data.Correct = out.Result.Correct
			data.XPAwarded = out.Result.XPAwarded
		}
		if err := s.events.AppendProgress(ctx, data); err != nil {
			s.log.Warn("append progress event",
				zap.String("sessionId", sess.ID), zap.Error(err))
		}
	}

	return &ProgressOutcome{
		Completed: out.Completed,
		Session:   sess,
		Summary:   out.Summary,
	}, nil
}

// SubmitProgress is the wire-level variant of Submit: it maps the
// {correct?, xp?} request body onto a progress event. Grading happened on
// the caller's side, so a present Correct arrives as a pre-graded result.
func (s *Service) SubmitProgress(ctx context.Context, id string, req ProgressRequest) (*ProgressOutcome, error) {
	ev := engine.Ungraded()
	if req.Correct != nil {
		xp := 0
		if req.XP != nil {
			xp = *req.XP
		}
		ev = engine.GradedResult(*req.Correct, xp)
	}
	return s.Submit(ctx, id, ev)
}

// Delete removes a persisted session.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// History returns up to limit sessions, most recently touched first.
func (s *Service) History(ctx context.Context, limit int) ([]*lesson.Session, error) {
	return s.sessions.ListRecent(ctx, limit)
}
