package lessongen

import (
	"context"
	"fmt"

	"github.com/abhisek/questline/internal/lesson"
)

// FallbackGenerator serves a small built-in lesson when no model provider
// is configured, so the app still works offline. The content teaches how
// Questline itself works, whatever the requested topic was.
type FallbackGenerator struct{}

// NewFallback creates the offline generator.
func NewFallback() *FallbackGenerator {
	return &FallbackGenerator{}
}

func (f *FallbackGenerator) GenerateStages(_ context.Context, topic string, tone lesson.Tone) ([]lesson.Stage, error) {
	titles := []string{"Welcome to Questline", "Your First Boss"}

	levels := make([]lesson.Level, len(titles))
	for i, t := range titles {
		status := lesson.LevelLocked
		if i == 0 {
			status = lesson.LevelCurrent
		}
		levels[i] = lesson.Level{Number: i + 1, Title: t, Status: status}
	}

	return []lesson.Stage{
		{
			Number: 1,
			Title:  titles[0],
			Blocks: []lesson.Block{
				lesson.NewLevelMap(lesson.LevelMap{Levels: levels}),
				lesson.NewExplainer(lesson.Explainer{
					Title: "How lessons work",
					Content: fmt.Sprintf(
						"No model provider is configured, so this is the built-in demo lesson "+
							"(you asked for %q). A lesson is a sequence of stages. Most stages "+
							"explain one idea, then a boss battle tests it. Answer correctly to "+
							"earn XP; either way, you move forward.", topic),
					Encouragement: "Set an API key to generate real lessons on any topic.",
				}),
			},
		},
		{
			Number: 2,
			Title:  titles[1],
			Blocks: []lesson.Block{
				lesson.NewBossBattle(lesson.BossBattle{
					BossName:      "The Gatekeeper",
					BossHealth:    100,
					Question:      "What happens after you answer a boss battle question?",
					Options:       []string{"The session advances", "The lesson restarts", "Nothing"},
					CorrectAnswer: "The session advances",
					Hint:          "Right or wrong, Continue is always unlocked.",
					XPReward:      50,
				}),
			},
		},
		victoryStage(3, "the Questline demo", tone),
	}, nil
}
