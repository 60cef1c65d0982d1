package store

import (
	"context"
	"fmt"

	"github.com/abhisek/questline/ent"
	"github.com/abhisek/questline/ent/lessonsession"
	"github.com/abhisek/questline/internal/lesson"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Save(ctx context.Context, s *lesson.Session) error {
	existing, err := r.client.LessonSession.Query().
		Where(lessonsession.SessionID(s.ID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query session %s: %w", s.ID, err)
		}
		return r.create(ctx, s)
	}

	upd := existing.Update().
		SetCurrentStageIndex(s.CurrentStageIndex).
		SetQuestionsAnswered(s.Stats.QuestionsAnswered).
		SetCorrectAnswers(s.Stats.CorrectAnswers).
		SetXpEarned(s.Stats.XPEarned).
		SetIsComplete(s.Complete)
	if s.GradedStages != nil {
		upd.SetGradedStages(s.GradedStages)
	}
	if s.FinalSummary != nil {
		upd.SetFinalSummary(s.FinalSummary)
	}
	if s.CompletedAt != nil {
		upd.SetCompletedAt(*s.CompletedAt)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update session %s: %w", s.ID, err)
	}
	return nil
}

func (r *sessionRepo) create(ctx context.Context, s *lesson.Session) error {
	cr := r.client.LessonSession.Create().
		SetSessionID(s.ID).
		SetTone(string(s.Tone)).
		SetStages(s.Stages).
		SetCurrentStageIndex(s.CurrentStageIndex).
		SetQuestionsAnswered(s.Stats.QuestionsAnswered).
		SetCorrectAnswers(s.Stats.CorrectAnswers).
		SetXpEarned(s.Stats.XPEarned).
		SetStartTime(s.Stats.StartTime).
		SetIsComplete(s.Complete)
	if s.GradedStages != nil {
		cr.SetGradedStages(s.GradedStages)
	}
	if s.FinalSummary != nil {
		cr.SetFinalSummary(s.FinalSummary)
	}
	if s.CompletedAt != nil {
		cr.SetCompletedAt(*s.CompletedAt)
	}
	if _, err := cr.Save(ctx); err != nil {
		return fmt.Errorf("create session %s: %w", s.ID, err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*lesson.Session, error) {
	e, err := r.client.LessonSession.Query().
		Where(lessonsession.SessionID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session %s: %w", id, err)
	}
	return entToSession(e), nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.LessonSession.Delete().
		Where(lessonsession.SessionID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

func (r *sessionRepo) ListRecent(ctx context.Context, limit int) ([]*lesson.Session, error) {
	q := r.client.LessonSession.Query().
		Order(ent.Desc(lessonsession.FieldUpdatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sessions := make([]*lesson.Session, 0, len(rows))
	for _, e := range rows {
		sessions = append(sessions, entToSession(e))
	}
	return sessions, nil
}

// entToSession converts an ent row back into the domain session.
func entToSession(e *ent.LessonSession) *lesson.Session {
	return &lesson.Session{
		ID:                e.SessionID,
		Tone:              lesson.Tone(e.Tone),
		Stages:            e.Stages,
		CurrentStageIndex: e.CurrentStageIndex,
		Stats: lesson.Stats{
			QuestionsAnswered: e.QuestionsAnswered,
			CorrectAnswers:    e.CorrectAnswers,
			XPEarned:          e.XpEarned,
			StartTime:         e.StartTime,
		},
		Complete:     e.IsComplete,
		GradedStages: e.GradedStages,
		FinalSummary: e.FinalSummary,
		CompletedAt:  e.CompletedAt,
	}
}
