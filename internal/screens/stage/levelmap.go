package stage

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questline/internal/dispatch"
	"github.com/abhisek/questline/internal/engine"
	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/ui/theme"
)

// levelMapRenderer shows the quest overview. Purely informational.
type levelMapRenderer struct {
	levels []lesson.Level
	hooks  dispatch.Hooks
}

func newLevelMap(b lesson.Block, hooks dispatch.Hooks) dispatch.Renderer {
	var levels []lesson.Level
	if b.LevelMap != nil {
		levels = b.LevelMap.Levels
	}
	return &levelMapRenderer{levels: levels, hooks: hooks}
}

func (r *levelMapRenderer) Init() tea.Cmd {
	return nil
}

func (r *levelMapRenderer) Update(msg tea.Msg) (dispatch.Renderer, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" {
			r.hooks.Progress(engine.Ungraded())
		}
	}
	return r, nil
}

func (r *levelMapRenderer) View(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Your Quest"))
	b.WriteString("\n\n")

	for _, lv := range r.levels {
		var marker string
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch lv.Status {
		case lesson.LevelCompleted:
			marker = "✓"
			style = style.Foreground(theme.Success)
		case lesson.LevelCurrent:
			marker = "▸"
			style = style.Foreground(theme.Primary).Bold(true)
		default:
			marker = "·"
			style = style.Foreground(theme.TextDim)
		}
		line := fmt.Sprintf("  %s  %d. %s", marker, lv.Number, lv.Title)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to continue"))

	return b.String()
}
