package stage

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/questline/internal/dispatch"
	"github.com/abhisek/questline/internal/engine"
	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/router"
	"github.com/abhisek/questline/internal/scoring"
	"github.com/abhisek/questline/internal/screen"
	"github.com/abhisek/questline/internal/screens/summary"
	"github.com/abhisek/questline/internal/service"
	"github.com/abhisek/questline/internal/ui/components"
	"github.com/abhisek/questline/internal/ui/layout"
	"github.com/abhisek/questline/internal/ui/theme"
)

// StageScreen plays one lesson session stage by stage. Each stage's
// blocks are resolved through the dispatcher; the learner steps through
// them in order, and the last interaction of the stage gates the engine
// submission.
type StageScreen struct {
	svc  *service.Service
	log  *zap.Logger
	sess *lesson.Session

	dispatcher *dispatch.Dispatcher
	renderers  []dispatch.Renderer
	cursor     int

	// pending/finishing are set by renderer hooks during Update and
	// consumed immediately after the renderer returns.
	pending   *engine.Event
	finishing bool

	// graded holds the stage's graded answer until the stage's final
	// interaction submits it.
	graded *engine.Event

	submitting bool
	errMsg     string
}

var _ screen.Screen = (*StageScreen)(nil)
var _ screen.KeyHintProvider = (*StageScreen)(nil)
var _ screen.XPProvider = (*StageScreen)(nil)

// New creates a StageScreen for the given session. The session must not
// be complete.
func New(svc *service.Service, log *zap.Logger, sess *lesson.Session) *StageScreen {
	s := &StageScreen{svc: svc, log: log, sess: sess}
	s.dispatcher = dispatch.New(newRegistry(), log, func() lesson.StatsSnapshot {
		if s.sess.FinalSummary != nil {
			return *s.sess.FinalSummary
		}
		return scoring.Summarize(s.sess.Stats, time.Now())
	})
	return s
}

func (s *StageScreen) Init() tea.Cmd {
	return s.buildRenderers()
}

func (s *StageScreen) Title() string {
	return "Quest"
}

func (s *StageScreen) XP() int {
	return s.sess.Stats.XPEarned
}

func (s *StageScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Abandon quest"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StageScreen) hooks() dispatch.Hooks {
	return dispatch.Hooks{
		Progress: func(ev engine.Event) { s.pending = &ev },
		Complete: func() { s.finishing = true },
	}
}

// buildRenderers resolves the current stage's blocks. A stage whose
// blocks are all unknown has nothing to show, so it advances on its own.
func (s *StageScreen) buildRenderers() tea.Cmd {
	if s.sess.Complete || s.sess.CurrentStageIndex >= len(s.sess.Stages) {
		return nil
	}

	st := &s.sess.Stages[s.sess.CurrentStageIndex]
	s.renderers, _ = s.dispatcher.Render(st, s.hooks())
	s.cursor = 0
	s.graded = nil

	if len(s.renderers) == 0 {
		s.submitting = true
		return s.submitCmd(engine.Ungraded())
	}
	return s.renderers[0].Init()
}

func (s *StageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if res, ok := msg.(progressResultMsg); ok {
		return s.handleProgressResult(res)
	}

	if s.errMsg != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}
	if s.submitting || s.cursor >= len(s.renderers) {
		return s, nil
	}

	r, cmd := s.renderers[s.cursor].Update(msg)
	s.renderers[s.cursor] = r

	if s.pending == nil && !s.finishing {
		return s, cmd
	}

	ev := engine.Ungraded()
	if s.pending != nil {
		ev = *s.pending
	}
	s.pending = nil
	s.finishing = false

	if ev.Kind == engine.EventAnswer {
		s.graded = &ev
	}

	// Interactions before the stage's last block only move the cursor.
	if s.cursor < len(s.renderers)-1 {
		s.cursor++
		return s, tea.Batch(cmd, s.renderers[s.cursor].Init())
	}

	final := ev
	if s.graded != nil {
		final = *s.graded
	}
	s.submitting = true
	return s, tea.Batch(cmd, s.submitCmd(final))
}

// submitCmd pushes the stage's progress event through the service.
func (s *StageScreen) submitCmd(ev engine.Event) tea.Cmd {
	id := s.sess.ID
	return func() tea.Msg {
		out, err := s.svc.Submit(context.Background(), id, ev)
		return progressResultMsg{Out: out, Err: err}
	}
}

func (s *StageScreen) handleProgressResult(msg progressResultMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.sess = msg.Out.Session
	if msg.Out.Completed {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.Out.Summary)}
		}
	}

	return s, s.buildRenderers()
}

func (s *StageScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Failed to load lesson: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if s.submitting {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Saving progress...")
	}
	if s.cursor >= len(s.renderers) {
		return ""
	}

	st := &s.sess.Stages[s.sess.CurrentStageIndex]

	var b strings.Builder
	header := fmt.Sprintf("Stage %d of %d — %s", st.Number, s.sess.TotalStages(), st.Title)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(header))
	b.WriteString("\n")

	percent := float64(s.sess.CurrentStageIndex) / float64(s.sess.TotalStages())
	bar := components.NewProgressBar("", percent, false, min(width-20, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(s.renderers[s.cursor].View(width))

	return b.String()
}
