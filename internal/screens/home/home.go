package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/router"
	"github.com/abhisek/questline/internal/screen"
	"github.com/abhisek/questline/internal/screens/history"
	"github.com/abhisek/questline/internal/screens/stage"
	"github.com/abhisek/questline/internal/service"
	"github.com/abhisek/questline/internal/ui/components"
	"github.com/abhisek/questline/internal/ui/layout"
	"github.com/abhisek/questline/internal/ui/theme"
)

type phase int

const (
	phaseMenu phase = iota
	phaseTopic
	phaseTone
	phaseLoading
)

var tones = []lesson.Tone{
	lesson.ToneEncouraging,
	lesson.TonePirate,
	lesson.ToneWizard,
	lesson.ToneCoach,
	lesson.ToneRobot,
}

// lessonReadyMsg is sent when lesson generation finishes.
type lessonReadyMsg struct {
	Session *lesson.Session
	Err     error
}

// HomeScreen is the entry point: start a new quest, browse history, quit.
type HomeScreen struct {
	svc *service.Service
	log *zap.Logger

	phase     phase
	menu      components.Menu
	topic     components.TextInput
	toneIndex int
	errMsg    string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *service.Service, log *zap.Logger) *HomeScreen {
	h := &HomeScreen{svc: svc, log: log}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "NEW QUEST", Action: func() tea.Cmd {
			h.phase = phaseTopic
			h.topic = components.NewTextInput("What do you want to learn?", 60)
			return h.topic.Init()
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(svc, log)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	switch h.phase {
	case phaseTopic:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseTone:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Pick a guide"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if ready, ok := msg.(lessonReadyMsg); ok {
		h.phase = phaseMenu
		if ready.Err != nil {
			h.errMsg = "Failed to create lesson: " + ready.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: stage.New(h.svc, h.log, ready.Session)}
		}
	}

	switch h.phase {
	case phaseMenu:
		if _, ok := msg.(tea.KeyMsg); ok {
			h.errMsg = ""
		}
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd

	case phaseTopic:
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "esc":
				h.phase = phaseMenu
				return h, nil
			case "enter":
				if strings.TrimSpace(h.topic.Value()) != "" {
					h.phase = phaseTone
					h.toneIndex = 0
				}
				return h, nil
			}
		}
		var cmd tea.Cmd
		h.topic, cmd = h.topic.Update(msg)
		return h, cmd

	case phaseTone:
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "esc":
				h.phase = phaseTopic
				return h, nil
			case "up", "k":
				if h.toneIndex > 0 {
					h.toneIndex--
				}
			case "down", "j":
				if h.toneIndex < len(tones)-1 {
					h.toneIndex++
				}
			case "enter":
				h.phase = phaseLoading
				return h, h.createLesson()
			}
		}
		return h, nil
	}

	return h, nil
}

// createLesson generates the lesson asynchronously.
func (h *HomeScreen) createLesson() tea.Cmd {
	topic := strings.TrimSpace(h.topic.Value())
	tone := tones[h.toneIndex]
	return func() tea.Msg {
		sess, err := h.svc.Create(context.Background(), tone, topic)
		return lessonReadyMsg{Session: sess, Err: err}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Q U E S T L I N E"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Micro-lessons, one boss battle at a time"))
	b.WriteString("\n\n")

	switch h.phase {
	case phaseTopic:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render("Pick a topic"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.topic.View()))

	case phaseTone:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render("Choose your guide"))
		b.WriteString("\n\n")
		for i, tone := range tones {
			line := "    " + string(tone)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == h.toneIndex {
				line = "  ▸ " + string(tone)
				style = style.Foreground(theme.Primary).Bold(true)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}

	case phaseLoading:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Forging your quest..."))

	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
		if h.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Render(h.errMsg))
		}
	}

	return b.String()
}
