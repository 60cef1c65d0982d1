package history

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/llm"
	"github.com/abhisek/questline/internal/router"
	"github.com/abhisek/questline/internal/screens/stage"
	"github.com/abhisek/questline/internal/service"
	"github.com/abhisek/questline/internal/store"
)

type mockSessions struct {
	recent  []*lesson.Session
	listErr error
}

func (f *mockSessions) Save(context.Context, *lesson.Session) error { return nil }

func (f *mockSessions) Get(context.Context, string) (*lesson.Session, error) {
	return nil, store.ErrNotFound
}

func (f *mockSessions) Delete(context.Context, string) error { return nil }

func (f *mockSessions) ListRecent(_ context.Context, _ int) ([]*lesson.Session, error) {
	return f.recent, f.listErr
}

type mockEvents struct{}

func (mockEvents) AppendProgress(context.Context, store.ProgressEventData) error { return nil }
func (mockEvents) RecordModelRequest(context.Context, llm.RequestRecord) error   { return nil }

type mockGenerator struct{}

func (mockGenerator) GenerateStages(context.Context, string, lesson.Tone) ([]lesson.Stage, error) {
	return nil, errors.New("not used")
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func recentSessions() []*lesson.Session {
	stages := []lesson.Stage{
		{Number: 1, Title: "Warmup", Blocks: []lesson.Block{
			lesson.NewExplainer(lesson.Explainer{Title: "Warmup", Content: "Read me."}),
		}},
		{Number: 2, Title: "The Boss"},
	}
	done := &lesson.Session{
		ID:                "aaaaaaaa-done",
		Tone:              lesson.ToneWizard,
		Stages:            stages,
		CurrentStageIndex: 2,
		Complete:          true,
		Stats:             lesson.Stats{QuestionsAnswered: 1, CorrectAnswers: 1, XPEarned: 50},
	}
	open := &lesson.Session{
		ID:     "bbbbbbbb-open",
		Tone:   lesson.TonePirate,
		Stages: stages,
	}
	return []*lesson.Session{done, open}
}

func testHistoryScreen(sessions *mockSessions) *HistoryScreen {
	svc := service.New(sessions, mockEvents{}, mockGenerator{}, nil)
	h := New(svc, nil)
	if cmd := h.Init(); cmd != nil {
		h.Update(cmd())
	}
	return h
}

func TestHistoryScreen_ListsSessions(t *testing.T) {
	h := testHistoryScreen(&mockSessions{recent: recentSessions()})

	view := h.View(100, 24)
	if !strings.Contains(view, "complete") {
		t.Error("view missing completed session status")
	}
	if !strings.Contains(view, "stage 1/2") {
		t.Error("view missing in-progress session status")
	}
	if !strings.Contains(view, "50 XP") {
		t.Error("view missing XP column")
	}
}

func TestHistoryScreen_EmptyState(t *testing.T) {
	h := testHistoryScreen(&mockSessions{})

	view := h.View(80, 24)
	if !strings.Contains(view, "No quests yet") {
		t.Error("expected empty state message")
	}
}

func TestHistoryScreen_LoadErrorShown(t *testing.T) {
	h := testHistoryScreen(&mockSessions{listErr: errors.New("disk gone")})

	if h.errMsg == "" {
		t.Error("expected an error message")
	}
	if !strings.Contains(h.View(80, 24), "disk gone") {
		t.Error("view missing load error")
	}
}

func TestHistoryScreen_ResumeIncompleteSession(t *testing.T) {
	h := testHistoryScreen(&mockSessions{recent: recentSessions()})

	// Completed session at index 0 cannot be resumed.
	if _, cmd := h.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("expected no command when selecting a completed session")
	}

	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a push command for the in-progress session")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*stage.StageScreen); !ok {
		t.Errorf("expected stage screen, got %T", push.Screen)
	}
}
