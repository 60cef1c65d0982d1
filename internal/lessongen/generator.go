package lessongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/llm"
)

// stagesOutput mirrors StagesSchema for decoding.
type stagesOutput struct {
	Title  string        `json:"title"`
	Stages []stageOutput `json:"stages"`
}

type stageOutput struct {
	Title     string `json:"title"`
	Explainer struct {
		Title         string `json:"title"`
		Content       string `json:"content"`
		Encouragement string `json:"encouragement"`
	} `json:"explainer"`
	BossBattle *struct {
		BossName      string   `json:"bossName"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correctAnswer"`
		Hint          string   `json:"hint"`
		XPReward      int      `json:"xpReward"`
	} `json:"bossBattle"`
}

// LLMGenerator generates stages through a model provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a model-backed stage generator.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

// GenerateStages produces the full stage sequence for a topic: the
// generated teaching stages, a level map injected into the first stage,
// and a closing victory stage.
func (g *LLMGenerator) GenerateStages(ctx context.Context, topic string, tone lesson.Tone) ([]lesson.Stage, error) {
	ctx = llm.WithPurpose(ctx, "lesson")

	req := llm.Request{
		System: stagesSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStagesUserMessage(topic, tone, g.cfg.StageCount)},
		},
		Schema:      StagesSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("stage generation: %w", err)
	}

	var out stagesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse stage response: %w", err)
	}

	stages, err := assemble(out, tone)
	if err != nil {
		return nil, fmt.Errorf("assemble stages: %w", err)
	}
	return stages, nil
}

// assemble converts model output into renderable stages and checks the
// structural rules the schema alone cannot express.
func assemble(out stagesOutput, tone lesson.Tone) ([]lesson.Stage, error) {
	if len(out.Stages) == 0 {
		return nil, fmt.Errorf("no stages generated")
	}

	stages := make([]lesson.Stage, 0, len(out.Stages)+1)
	for i, so := range out.Stages {
		st := lesson.Stage{
			Number: i + 1,
			Title:  so.Title,
		}

		if i == 0 {
			st.Blocks = append(st.Blocks, lesson.NewLevelMap(levelMap(out.Stages, 0)))
		}

		st.Blocks = append(st.Blocks, lesson.NewExplainer(lesson.Explainer{
			Title:         so.Explainer.Title,
			Content:       so.Explainer.Content,
			Encouragement: so.Explainer.Encouragement,
		}))

		if bb := so.BossBattle; bb != nil {
			if err := checkBossBattle(i+1, bb.Options, bb.CorrectAnswer, bb.XPReward); err != nil {
				return nil, err
			}
			st.Blocks = append(st.Blocks, lesson.NewBossBattle(lesson.BossBattle{
				BossName:      bb.BossName,
				BossHealth:    100,
				Question:      bb.Question,
				Options:       bb.Options,
				CorrectAnswer: bb.CorrectAnswer,
				Hint:          bb.Hint,
				XPReward:      bb.XPReward,
			}))
		}

		stages = append(stages, st)
	}

	stages = append(stages, victoryStage(len(stages)+1, out.Title, tone))
	return stages, nil
}

func checkBossBattle(stageNum int, options []string, correctAnswer string, xpReward int) error {
	if len(options) < 2 {
		return fmt.Errorf("stage %d: boss battle needs at least 2 options, got %d", stageNum, len(options))
	}
	found := false
	for _, o := range options {
		if o == correctAnswer {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("stage %d: correct answer %q is not among the options", stageNum, correctAnswer)
	}
	if xpReward <= 0 {
		return fmt.Errorf("stage %d: xp reward must be positive, got %d", stageNum, xpReward)
	}
	return nil
}

// levelMap builds the progress overview for the lesson's stage titles.
// The victory stage is excluded; it is the destination, not a level.
func levelMap(stages []stageOutput, currentIdx int) lesson.LevelMap {
	levels := make([]lesson.Level, len(stages))
	for i, so := range stages {
		status := lesson.LevelLocked
		switch {
		case i < currentIdx:
			status = lesson.LevelCompleted
		case i == currentIdx:
			status = lesson.LevelCurrent
		}
		levels[i] = lesson.Level{Number: i + 1, Title: so.Title, Status: status}
	}
	return lesson.LevelMap{Levels: levels}
}

// victoryEncouragements closes the lesson in-voice.
var victoryEncouragements = map[lesson.Tone]string{
	lesson.ToneEncouraging: "You showed up, you pushed through, and you earned every point.",
	lesson.TonePirate:      "Ye plundered every stage, matey. The treasure o' knowledge be yours!",
	lesson.ToneWizard:      "The final sigil is yours. Few apprentices master this tome so swiftly.",
	lesson.ToneCoach:       "That's a clean sweep! Hit the showers, champ. You earned it.",
	lesson.ToneRobot:       "All stages cleared. Enthusiasm subroutine reports: maximum output.",
}

func victoryStage(number int, lessonTitle string, tone lesson.Tone) lesson.Stage {
	return lesson.Stage{
		Number: number,
		Title:  "Victory",
		Blocks: []lesson.Block{
			lesson.NewVictory(lesson.Victory{
				Title:         fmt.Sprintf("You conquered: %s", lessonTitle),
				Encouragement: victoryEncouragements[tone],
			}),
		},
	}
}
