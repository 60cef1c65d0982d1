package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/router"
	"github.com/abhisek/questline/internal/screen"
	"github.com/abhisek/questline/internal/screens/stage"
	"github.com/abhisek/questline/internal/service"
	"github.com/abhisek/questline/internal/ui/layout"
	"github.com/abhisek/questline/internal/ui/theme"
)

const listLimit = 20

// sessionsLoadedMsg is sent when the session list arrives from the store.
type sessionsLoadedMsg struct {
	Sessions []*lesson.Session
	Err      error
}

// HistoryScreen lists recent sessions. Incomplete ones can be resumed.
type HistoryScreen struct {
	svc *service.Service
	log *zap.Logger

	sessions []*lesson.Session
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *service.Service, log *zap.Logger) *HistoryScreen {
	return &HistoryScreen{svc: svc, log: log}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := h.svc.History(context.Background(), listLimit)
		return sessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Resume"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.sessions = msg.Sessions
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.selected > 0 {
				h.selected--
			}
		case "down", "j":
			if h.selected < len(h.sessions)-1 {
				h.selected++
			}
		case "enter":
			if h.selected < len(h.sessions) {
				sess := h.sessions[h.selected]
				if !sess.Complete {
					return h, func() tea.Msg {
						return router.PushScreenMsg{Screen: stage.New(h.svc, h.log, sess)}
					}
				}
			}
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + h.errMsg)
	}
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}
	if len(h.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No quests yet. Start one from the home screen!")
	}

	for i, sess := range h.sessions {
		status := fmt.Sprintf("stage %d/%d", sess.CurrentStageIndex+1, sess.TotalStages())
		statusStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
		if sess.Complete {
			status = "complete"
			statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		line := fmt.Sprintf("%-12s  %-10s  %4d XP  %s",
			shortID(sess.ID), sess.Tone, sess.Stats.XPEarned, statusStyle.Render(status))

		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == h.selected {
			prefix = "  ▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+line)))
		b.WriteString("\n")
	}

	return b.String()
}

// shortID abbreviates a session UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
