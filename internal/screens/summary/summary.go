package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/router"
	"github.com/abhisek/questline/internal/screen"
	"github.com/abhisek/questline/internal/ui/components"
	"github.com/abhisek/questline/internal/ui/layout"
	"github.com/abhisek/questline/internal/ui/theme"
)

// SummaryScreen displays the frozen end-of-lesson stats.
type SummaryScreen struct {
	stats *lesson.StatsSnapshot
	home  components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(stats *lesson.StatsSnapshot) *SummaryScreen {
	return &SummaryScreen{
		stats: stats,
		home: components.NewButton("Return home", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quest Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	s.home, cmd = s.home.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quest complete!"))
	b.WriteString("\n\n")

	if s.stats == nil {
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"XP earned", fmt.Sprintf("%d", s.stats.XPEarned)},
		{"Questions answered", fmt.Sprintf("%d", s.stats.QuestionsAnswered)},
		{"Accuracy", fmt.Sprintf("%d%%", s.stats.Accuracy)},
		{"Time spent", s.stats.TimeSpent},
	}
	for _, row := range rows {
		line := fmt.Sprintf("%-20s %s",
			row.label,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(row.value))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.home.View()))

	return b.String()
}
