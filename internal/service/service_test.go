package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/questline/internal/engine"
	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/llm"
	"github.com/abhisek/questline/internal/store"
)

// fakeSessions stores deep copies so state only survives through Save,
// like the real repo.
type fakeSessions struct {
	m map[string]*lesson.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{m: make(map[string]*lesson.Session)}
}

func deepCopy(s *lesson.Session) *lesson.Session {
	b, _ := json.Marshal(s)
	var out lesson.Session
	_ = json.Unmarshal(b, &out)
	return &out
}

func (f *fakeSessions) Save(_ context.Context, s *lesson.Session) error {
	f.m[s.ID] = deepCopy(s)
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*lesson.Session, error) {
	s, ok := f.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return deepCopy(s), nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.m, id)
	return nil
}

func (f *fakeSessions) ListRecent(_ context.Context, limit int) ([]*lesson.Session, error) {
	var out []*lesson.Session
	for _, s := range f.m {
		out = append(out, deepCopy(s))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeEvents struct {
	progress []store.ProgressEventData
}

func (f *fakeEvents) AppendProgress(_ context.Context, data store.ProgressEventData) error {
	f.progress = append(f.progress, data)
	return nil
}

func (f *fakeEvents) RecordModelRequest(_ context.Context, _ llm.RequestRecord) error {
	return nil
}

// fakeGen returns a fixed 2-stage lesson: one explainer, then one boss
// battle worth 100 XP with correct answer "B".
type fakeGen struct{}

func (fakeGen) GenerateStages(_ context.Context, _ string, _ lesson.Tone) ([]lesson.Stage, error) {
	return []lesson.Stage{
		{Number: 1, Title: "Basics", Blocks: []lesson.Block{
			lesson.NewExplainer(lesson.Explainer{Title: "Basics", Content: "Read this first."}),
		}},
		{Number: 2, Title: "Showdown", Blocks: []lesson.Block{
			lesson.NewBossBattle(lesson.BossBattle{
				BossName:      "Quizmaster",
				BossHealth:    100,
				Question:      "Pick B",
				Options:       []string{"A", "B"},
				CorrectAnswer: "B",
				XPReward:      100,
			}),
		}},
	}, nil
}

func newTestService() (*Service, *fakeSessions, *fakeEvents) {
	sessions := newFakeSessions()
	events := &fakeEvents{}
	return New(sessions, events, fakeGen{}, nil), sessions, events
}

func TestCreatePersistsSession(t *testing.T) {
	svc, sessions, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Create(ctx, lesson.ToneWizard, "fractions")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.ID == "" {
		t.Error("expected non-empty session id")
	}
	if sess.Tone != lesson.ToneWizard {
		t.Errorf("tone = %q, want %q", sess.Tone, lesson.ToneWizard)
	}
	if sess.TotalStages() != 2 {
		t.Errorf("totalStages = %d, want 2", sess.TotalStages())
	}
	if sess.CurrentStageIndex != 0 || sess.Complete {
		t.Errorf("fresh session at index %d, complete=%v", sess.CurrentStageIndex, sess.Complete)
	}

	if _, ok := sessions.m[sess.ID]; !ok {
		t.Error("session was not persisted")
	}
}

func TestSubmitProgressFullLesson(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	sess, err := svc.Create(ctx, lesson.ToneEncouraging, "fractions")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Stage 1: ungraded acknowledgement.
	out, err := svc.SubmitProgress(ctx, sess.ID, ProgressRequest{})
	if err != nil {
		t.Fatalf("submit stage 1: %v", err)
	}
	if out.Completed {
		t.Fatal("completed after one of two stages")
	}
	if out.Session.CurrentStageIndex != 1 {
		t.Errorf("currentStageIndex = %d, want 1", out.Session.CurrentStageIndex)
	}

	// Stage 2: client graded the boss battle correct for 100 XP.
	correct := true
	xp := 100
	out, err = svc.SubmitProgress(ctx, sess.ID, ProgressRequest{Correct: &correct, XP: &xp})
	if err != nil {
		t.Fatalf("submit stage 2: %v", err)
	}
	if !out.Completed {
		t.Fatal("expected completion after final stage")
	}
	if out.Summary == nil {
		t.Fatal("expected final summary")
	}
	if out.Summary.XPEarned != 100 {
		t.Errorf("xpEarned = %d, want 100", out.Summary.XPEarned)
	}
	if out.Summary.Accuracy != 100 {
		t.Errorf("accuracy = %d, want 100", out.Summary.Accuracy)
	}

	// Audit trail: one event per submission, last one graded + completing.
	if len(events.progress) != 2 {
		t.Fatalf("progress events = %d, want 2", len(events.progress))
	}
	last := events.progress[1]
	if !last.Graded || !last.Correct || last.XPAwarded != 100 || !last.CompletedSession {
		t.Errorf("last event = %+v, want graded correct 100xp completing", last)
	}
}

func TestSubmitProgressUnknownSession(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SubmitProgress(context.Background(), "missing", ProgressRequest{})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want store.ErrNotFound", err)
	}
}

func TestGetSurfacesCorruptState(t *testing.T) {
	svc, sessions, _ := newTestService()
	ctx := context.Background()

	sessions.m["corrupt"] = &lesson.Session{
		ID:                "corrupt",
		Tone:              lesson.ToneRobot,
		Stages:            []lesson.Stage{{Number: 1, Title: "Only"}},
		CurrentStageIndex: 5,
		Stats:             lesson.Stats{StartTime: time.Now()},
	}

	_, err := svc.Get(ctx, "corrupt")
	if !errors.Is(err, engine.ErrInvalidSession) {
		t.Errorf("err = %v, want engine.ErrInvalidSession", err)
	}
}

func TestResubmitAfterCompleteIsIdempotent(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	sess, err := svc.Create(ctx, lesson.ToneCoach, "fractions")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.SubmitProgress(ctx, sess.ID, ProgressRequest{}); err != nil {
		t.Fatalf("submit stage 1: %v", err)
	}
	correct := false
	if _, err := svc.SubmitProgress(ctx, sess.ID, ProgressRequest{Correct: &correct}); err != nil {
		t.Fatalf("submit stage 2: %v", err)
	}

	first, err := svc.SubmitProgress(ctx, sess.ID, ProgressRequest{})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	second, err := svc.SubmitProgress(ctx, sess.ID, ProgressRequest{})
	if err != nil {
		t.Fatalf("replay again: %v", err)
	}

	if !first.Completed || !second.Completed {
		t.Fatal("replays must report completion")
	}
	if *first.Summary != *second.Summary {
		t.Errorf("summaries differ: %+v vs %+v", *first.Summary, *second.Summary)
	}
	if second.Session.Stats.QuestionsAnswered != 1 {
		t.Errorf("questionsAnswered = %d, want 1 (replays must not count)", second.Session.Stats.QuestionsAnswered)
	}

	// Replays leave no audit trace.
	if len(events.progress) != 2 {
		t.Errorf("progress events = %d, want 2", len(events.progress))
	}
}
