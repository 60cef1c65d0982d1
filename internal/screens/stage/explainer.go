package stage

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questline/internal/dispatch"
	"github.com/abhisek/questline/internal/engine"
	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/ui/theme"
)

// explainerRenderer shows a teaching block. Enter acknowledges it.
type explainerRenderer struct {
	block lesson.Explainer
	hooks dispatch.Hooks
}

func newExplainer(b lesson.Block, hooks dispatch.Hooks) dispatch.Renderer {
	var e lesson.Explainer
	if b.Explainer != nil {
		e = *b.Explainer
	}
	return &explainerRenderer{block: e, hooks: hooks}
}

func (r *explainerRenderer) Init() tea.Cmd {
	return nil
}

func (r *explainerRenderer) Update(msg tea.Msg) (dispatch.Renderer, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" {
			r.hooks.Progress(engine.Ungraded())
		}
	}
	return r, nil
}

func (r *explainerRenderer) View(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(r.block.Title))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(r.block.Content)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n\n")

	if r.block.Encouragement != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Italic(true).
			Render(r.block.Encouragement))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to continue"))

	return b.String()
}
