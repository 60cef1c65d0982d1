package home

import (
	"context"
	"errors"
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
	m map[string]*lesson.Session
}

func (f *mockSessions) Save(_ context.Context, s *lesson.Session) error {
	f.m[s.ID] = s
	return nil
}

func (f *mockSessions) Get(_ context.Context, id string) (*lesson.Session, error) {
	s, ok := f.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (f *mockSessions) Delete(_ context.Context, id string) error {
	delete(f.m, id)
	return nil
}

func (f *mockSessions) ListRecent(_ context.Context, _ int) ([]*lesson.Session, error) {
	return nil, nil
}

type mockEvents struct{}

func (mockEvents) AppendProgress(context.Context, store.ProgressEventData) error { return nil }
func (mockEvents) RecordModelRequest(context.Context, llm.RequestRecord) error   { return nil }

// mockGenerator returns a one-stage quest, or fails when err is set.
type mockGenerator struct {
	err error
}

func (g mockGenerator) GenerateStages(_ context.Context, _ string, _ lesson.Tone) ([]lesson.Stage, error) {
	if g.err != nil {
		return nil, g.err
	}
	return []lesson.Stage{
		{Number: 1, Title: "Warmup", Blocks: []lesson.Block{
			lesson.NewExplainer(lesson.Explainer{Title: "Warmup", Content: "Read me."}),
		}},
	}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHomeScreen(genErr error) *HomeScreen {
	svc := service.New(&mockSessions{m: make(map[string]*lesson.Session)}, mockEvents{}, mockGenerator{err: genErr}, nil)
	return New(svc, nil)
}

func TestHomeScreen_NewQuestEntersTopicPhase(t *testing.T) {
	h := testHomeScreen(nil)

	if _, cmd := h.Update(specialKey(tea.KeyEnter)); cmd != nil {
		cmd()
	}
	if h.phase != phaseTopic {
		t.Errorf("phase = %d, want phaseTopic", h.phase)
	}
}

func TestHomeScreen_TopicToneFlowStartsLesson(t *testing.T) {
	h := testHomeScreen(nil)

	h.Update(specialKey(tea.KeyEnter)) // NEW QUEST
	for _, r := range "maps" {
		h.Update(keyPress(r))
	}
	h.Update(specialKey(tea.KeyEnter)) // topic -> tone
	if h.phase != phaseTone {
		t.Fatalf("phase = %d, want phaseTone", h.phase)
	}

	_, cmd := h.Update(specialKey(tea.KeyEnter)) // tone -> loading
	if h.phase != phaseLoading {
		t.Fatalf("phase = %d, want phaseLoading", h.phase)
	}
	if cmd == nil {
		t.Fatal("expected a lesson creation command")
	}

	ready, ok := cmd().(lessonReadyMsg)
	if !ok {
		t.Fatalf("expected lessonReadyMsg, got %T", cmd())
	}
	if ready.Err != nil {
		t.Fatalf("lesson creation failed: %v", ready.Err)
	}

	_, cmd = h.Update(ready)
	if cmd == nil {
		t.Fatal("expected a push command after lesson creation")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*stage.StageScreen); !ok {
		t.Errorf("expected stage screen, got %T", push.Screen)
	}
}

func TestHomeScreen_EmptyTopicDoesNotAdvance(t *testing.T) {
	h := testHomeScreen(nil)

	h.Update(specialKey(tea.KeyEnter)) // NEW QUEST
	h.Update(specialKey(tea.KeyEnter)) // enter with no topic typed
	if h.phase != phaseTopic {
		t.Errorf("phase = %d, want phaseTopic (empty topic must not advance)", h.phase)
	}
}

func TestHomeScreen_EscNavigatesBack(t *testing.T) {
	h := testHomeScreen(nil)

	h.Update(specialKey(tea.KeyEnter)) // NEW QUEST
	for _, r := range "maps" {
		h.Update(keyPress(r))
	}
	h.Update(specialKey(tea.KeyEnter)) // topic -> tone

	h.Update(specialKey(tea.KeyEscape))
	if h.phase != phaseTopic {
		t.Errorf("phase = %d, want phaseTopic after esc", h.phase)
	}
	h.Update(specialKey(tea.KeyEscape))
	if h.phase != phaseMenu {
		t.Errorf("phase = %d, want phaseMenu after second esc", h.phase)
	}
}

func TestHomeScreen_GenerationFailureShowsError(t *testing.T) {
	h := testHomeScreen(errors.New("model unavailable"))

	h.Update(specialKey(tea.KeyEnter)) // NEW QUEST
	for _, r := range "maps" {
		h.Update(keyPress(r))
	}
	h.Update(specialKey(tea.KeyEnter)) // topic -> tone
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a lesson creation command")
	}

	_, next := h.Update(cmd())
	if next != nil {
		t.Error("expected no push after a failed creation")
	}
	if h.phase != phaseMenu {
		t.Errorf("phase = %d, want phaseMenu after failure", h.phase)
	}
	if h.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestHomeScreen_ViewShowsBanner(t *testing.T) {
	h := testHomeScreen(nil)
	view := h.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view")
	}
}
