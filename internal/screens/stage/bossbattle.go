package stage

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questline/internal/dispatch"
	"github.com/abhisek/questline/internal/engine"
	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/scoring"
	"github.com/abhisek/questline/internal/ui/components"
	"github.com/abhisek/questline/internal/ui/theme"
)

// bossBattleRenderer runs one graded question. The learner picks an
// answer, sees the verdict (plus the hint when wrong), and continues.
// Grading for display happens locally; the engine re-grades the raw
// answer as the source of record.
type bossBattleRenderer struct {
	battle lesson.BossBattle
	choice components.MultiChoice
	hooks  dispatch.Hooks
	result *scoring.Result
}

func newBossBattle(b lesson.Block, hooks dispatch.Hooks) dispatch.Renderer {
	var battle lesson.BossBattle
	if b.BossBattle != nil {
		battle = *b.BossBattle
	}

	correctIndex := 0
	for i, opt := range battle.Options {
		if opt == battle.CorrectAnswer {
			correctIndex = i
			break
		}
	}

	return &bossBattleRenderer{
		battle: battle,
		choice: components.NewMultiChoice(battle.Question, battle.Options, correctIndex),
		hooks:  hooks,
	}
}

func (r *bossBattleRenderer) Init() tea.Cmd {
	return nil
}

func (r *bossBattleRenderer) Update(msg tea.Msg) (dispatch.Renderer, tea.Cmd) {
	if r.result != nil {
		// Verdict shown; Enter sends the answer up for authoritative
		// grading and stage advancement.
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			r.hooks.Progress(engine.Answer(r.choice.Chosen(), r.battle.CorrectAnswer, r.battle.XPReward))
		}
		return r, nil
	}

	var cmd tea.Cmd
	r.choice, cmd = r.choice.Update(msg)
	if r.choice.Submitted {
		res := scoring.Grade(r.choice.Chosen(), r.battle.CorrectAnswer, r.battle.XPReward)
		r.result = &res
	}
	return r, cmd
}

func (r *bossBattleRenderer) View(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render(fmt.Sprintf("⚔ %s", r.battle.BossName)))
	b.WriteString("\n")

	health := 1.0
	if r.result != nil && r.result.Correct {
		health = 0
	}
	bar := components.NewProgressBar("HP", health, false, min(width-20, 40))
	bar.FillColor = theme.Error
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.choice.View()))
	b.WriteString("\n")

	if r.result != nil {
		if r.result.Correct {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render(fmt.Sprintf("Boss defeated!  +%d XP", r.result.XPAwarded)))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Not quite"))
			if r.battle.Hint != "" {
				b.WriteString("\n")
				b.WriteString(lipgloss.NewStyle().
					Width(width).
					Align(lipgloss.Center).
					Foreground(theme.TextDim).
					Italic(true).
					Render("Hint: " + r.battle.Hint))
			}
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter to continue"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Pick an answer with arrows + Enter"))
	}

	return b.String()
}
