package stage

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questline/internal/dispatch"
	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/ui/theme"
)

// victoryRenderer is the terminal celebration block. Acknowledging it
// completes the session.
type victoryRenderer struct {
	block lesson.Victory
	hooks dispatch.Hooks
}

func newVictory(b lesson.Block, hooks dispatch.Hooks) dispatch.Renderer {
	var v lesson.Victory
	if b.Victory != nil {
		v = *b.Victory
	}
	return &victoryRenderer{block: v, hooks: hooks}
}

func (r *victoryRenderer) Init() tea.Cmd {
	return nil
}

func (r *victoryRenderer) Update(msg tea.Msg) (dispatch.Renderer, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" {
			r.hooks.Complete()
		}
	}
	return r, nil
}

func (r *victoryRenderer) View(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("★ " + r.block.Title + " ★"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(r.block.Encouragement))
	b.WriteString("\n\n")

	if s := r.block.Stats; s != nil {
		statsLine := fmt.Sprintf("Questions: %d     Accuracy: %d%%     XP: %d     Time: %s",
			s.QuestionsAnswered, s.Accuracy, s.XPEarned, s.TimeSpent)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(statsLine))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to finish"))

	return b.String()
}
