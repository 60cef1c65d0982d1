package stage

import (
	"context"
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/llm"
	"github.com/abhisek/questline/internal/router"
	"github.com/abhisek/questline/internal/screen"
	"github.com/abhisek/questline/internal/screens/summary"
	"github.com/abhisek/questline/internal/service"
	"github.com/abhisek/questline/internal/store"
)

// mockSessions implements store.SessionRepo in memory.
type mockSessions struct {
	m map[string]*lesson.Session
}

func copySession(s *lesson.Session) *lesson.Session {
	b, _ := json.Marshal(s)
	var out lesson.Session
	_ = json.Unmarshal(b, &out)
	return &out
}

func (f *mockSessions) Save(_ context.Context, s *lesson.Session) error {
	f.m[s.ID] = copySession(s)
	return nil
}

func (f *mockSessions) Get(_ context.Context, id string) (*lesson.Session, error) {
	s, ok := f.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copySession(s), nil
}

func (f *mockSessions) Delete(_ context.Context, id string) error {
	delete(f.m, id)
	return nil
}

func (f *mockSessions) ListRecent(_ context.Context, _ int) ([]*lesson.Session, error) {
	return nil, nil
}

type mockEvents struct {
	progress []store.ProgressEventData
}

func (f *mockEvents) AppendProgress(_ context.Context, data store.ProgressEventData) error {
	f.progress = append(f.progress, data)
	return nil
}

func (f *mockEvents) RecordModelRequest(_ context.Context, _ llm.RequestRecord) error {
	return nil
}

// mockGenerator returns a fixed 2-stage quest ending in a boss battle.
type mockGenerator struct{}

func (mockGenerator) GenerateStages(_ context.Context, _ string, _ lesson.Tone) ([]lesson.Stage, error) {
	return []lesson.Stage{
		{Number: 1, Title: "Warmup", Blocks: []lesson.Block{
			lesson.NewExplainer(lesson.Explainer{Title: "Warmup", Content: "Read me."}),
		}},
		{Number: 2, Title: "The Boss", Blocks: []lesson.Block{
			lesson.NewBossBattle(lesson.BossBattle{
				BossName:      "Grader",
				BossHealth:    100,
				Question:      "Pick B",
				Options:       []string{"A", "B"},
				CorrectAnswer: "B",
				Hint:          "It rhymes with sea",
				XPReward:      100,
			}),
		}},
	}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testStageScreen(t *testing.T) (*StageScreen, *mockEvents) {
	t.Helper()
	sessions := &mockSessions{m: make(map[string]*lesson.Session)}
	events := &mockEvents{}
	svc := service.New(sessions, events, mockGenerator{}, nil)

	sess, err := svc.Create(context.Background(), lesson.TonePirate, "tides")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	s := New(svc, nil, sess)
	if cmd := s.Init(); cmd != nil {
		cmd()
	}
	return s, events
}

// step sends a key and, if the screen kicked off a submission, runs it and
// feeds the result back in.
func step(t *testing.T, s screen.Screen, msg tea.Msg) (screen.Screen, tea.Msg) {
	t.Helper()
	s, cmd := s.Update(msg)
	if cmd == nil {
		return s, nil
	}
	out := cmd()
	if res, ok := out.(progressResultMsg); ok {
		var next tea.Cmd
		s, next = s.Update(res)
		if next != nil {
			return s, next()
		}
		return s, nil
	}
	return s, out
}

func TestStageScreen_Title(t *testing.T) {
	s, _ := testStageScreen(t)
	if s.Title() != "Quest" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quest")
	}
}

func TestStageScreen_ViewShowsStageHeader(t *testing.T) {
	s, _ := testStageScreen(t)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view")
	}
}

func TestStageScreen_ExplainerAdvancesStage(t *testing.T) {
	s, events := testStageScreen(t)

	var scr screen.Screen = s
	scr, _ = step(t, scr, specialKey(tea.KeyEnter))

	ss := scr.(*StageScreen)
	if ss.sess.CurrentStageIndex != 1 {
		t.Errorf("currentStageIndex = %d, want 1", ss.sess.CurrentStageIndex)
	}
	if len(events.progress) != 1 {
		t.Fatalf("progress events = %d, want 1", len(events.progress))
	}
	if events.progress[0].Graded {
		t.Error("explainer acknowledgement must be ungraded")
	}
}

func TestStageScreen_BossBattleCompletesSession(t *testing.T) {
	s, events := testStageScreen(t)

	var scr screen.Screen = s
	scr, _ = step(t, scr, specialKey(tea.KeyEnter)) // explainer

	// Pick option B and answer.
	scr, _ = step(t, scr, specialKey(tea.KeyDown))
	scr, _ = step(t, scr, specialKey(tea.KeyEnter)) // locks the answer, shows verdict

	// Continue past the verdict; this submits and completes the session.
	scr, out := step(t, scr, specialKey(tea.KeyEnter))

	rep, ok := out.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", out)
	}
	if _, ok := rep.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", rep.Screen)
	}

	ss := scr.(*StageScreen)
	if !ss.sess.Complete {
		t.Error("expected session to be complete")
	}
	if ss.sess.Stats.XPEarned != 100 {
		t.Errorf("xpEarned = %d, want 100", ss.sess.Stats.XPEarned)
	}

	last := events.progress[len(events.progress)-1]
	if !last.Graded || !last.Correct || !last.CompletedSession {
		t.Errorf("last event = %+v, want graded correct completing", last)
	}
}

func TestStageScreen_WrongAnswerStillAdvances(t *testing.T) {
	s, _ := testStageScreen(t)

	var scr screen.Screen = s
	scr, _ = step(t, scr, specialKey(tea.KeyEnter)) // explainer

	// Answer A (wrong), then continue.
	scr, _ = step(t, scr, specialKey(tea.KeyEnter))
	scr, _ = step(t, scr, specialKey(tea.KeyEnter))

	ss := scr.(*StageScreen)
	if !ss.sess.Complete {
		t.Error("wrong answer must still advance to completion")
	}
	if ss.sess.Stats.XPEarned != 0 {
		t.Errorf("xpEarned = %d, want 0", ss.sess.Stats.XPEarned)
	}
	if ss.sess.Stats.QuestionsAnswered != 1 {
		t.Errorf("questionsAnswered = %d, want 1", ss.sess.Stats.QuestionsAnswered)
	}
}

func TestStageScreen_XPProvider(t *testing.T) {
	s, _ := testStageScreen(t)
	if s.XP() != 0 {
		t.Errorf("XP = %d, want 0 at start", s.XP())
	}
}
