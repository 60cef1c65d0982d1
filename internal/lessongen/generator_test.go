package lessongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/llm"
)

const sampleOutput = `{
	"title": "Fractions Fundamentals",
	"stages": [
		{
			"title": "What is a fraction?",
			"explainer": {"title": "Parts of a whole", "content": "A fraction names part of a whole.", "encouragement": "Ye be doin' great, matey!"}
		},
		{
			"title": "Adding fractions",
			"explainer": {"title": "Common denominators", "content": "To add fractions, match the denominators."},
			"bossBattle": {
				"bossName": "The Denominator",
				"question": "What is 1/4 + 2/4?",
				"options": ["3/4", "3/8", "2/4"],
				"correctAnswer": "3/4",
				"hint": "The denominators already match.",
				"xpReward": 50
			}
		}
	]
}`

func TestGenerateStages_AssemblesBlocks(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(sampleOutput)})
	g := New(mock, DefaultConfig())

	stages, err := g.GenerateStages(context.Background(), "fractions", lesson.TonePirate)
	if err != nil {
		t.Fatalf("GenerateStages: %v", err)
	}

	// Two generated stages plus the victory stage.
	if len(stages) != 3 {
		t.Fatalf("len(stages) = %d, want 3", len(stages))
	}

	// Stage 1 leads with the level map, then the explainer.
	first := stages[0]
	if first.Number != 1 {
		t.Errorf("stage 1 number = %d", first.Number)
	}
	if len(first.Blocks) != 2 || first.Blocks[0].Kind != lesson.KindLevelMap {
		t.Fatalf("stage 1 blocks = %+v, want levelMap then explainer", first.Blocks)
	}
	lm := first.Blocks[0].LevelMap
	if len(lm.Levels) != 2 {
		t.Fatalf("level map has %d levels, want 2", len(lm.Levels))
	}
	if lm.Levels[0].Status != lesson.LevelCurrent || lm.Levels[1].Status != lesson.LevelLocked {
		t.Errorf("level statuses = %v/%v, want current/locked", lm.Levels[0].Status, lm.Levels[1].Status)
	}

	// Stage 2 carries the boss battle.
	second := stages[1]
	var bb *lesson.BossBattle
	for _, b := range second.Blocks {
		if b.Kind == lesson.KindBossBattle {
			bb = b.BossBattle
		}
	}
	if bb == nil {
		t.Fatal("stage 2 has no boss battle")
	}
	if bb.CorrectAnswer != "3/4" || bb.XPReward != 50 {
		t.Errorf("boss battle = %+v", bb)
	}
	if bb.BossHealth != 100 {
		t.Errorf("BossHealth = %d, want 100", bb.BossHealth)
	}

	// Last stage is the victory stage in the requested voice.
	last := stages[2]
	if len(last.Blocks) != 1 || last.Blocks[0].Kind != lesson.KindVictory {
		t.Fatalf("last stage blocks = %+v, want a single victory", last.Blocks)
	}
	v := last.Blocks[0].Victory
	if !strings.Contains(v.Title, "Fractions Fundamentals") {
		t.Errorf("victory title = %q, want lesson title inside", v.Title)
	}
	if v.Encouragement != victoryEncouragements[lesson.TonePirate] {
		t.Errorf("victory encouragement = %q, want pirate voice", v.Encouragement)
	}
}

func TestGenerateStages_RejectsAnswerNotInOptions(t *testing.T) {
	bad := `{
		"title": "T",
		"stages": [
			{"title": "S", "explainer": {"title": "E", "content": "..."},
			 "bossBattle": {"bossName": "B", "question": "?", "options": ["a", "b"], "correctAnswer": "c", "xpReward": 10}}
		]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	g := New(mock, DefaultConfig())

	if _, err := g.GenerateStages(context.Background(), "t", lesson.ToneRobot); err == nil {
		t.Fatal("expected structural validation error")
	}
}

func TestGenerateStages_RejectsEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"title":"T","stages":[]}`)})
	g := New(mock, DefaultConfig())

	if _, err := g.GenerateStages(context.Background(), "t", lesson.ToneCoach); err == nil {
		t.Fatal("expected error for empty stage list")
	}
}

func TestFallback_PlayableOffline(t *testing.T) {
	g := NewFallback()
	stages, err := g.GenerateStages(context.Background(), "anything", lesson.ToneWizard)
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if len(stages) != 3 {
		t.Fatalf("len(stages) = %d, want 3", len(stages))
	}

	hasBoss := false
	for _, st := range stages {
		for _, b := range st.Blocks {
			if b.Kind == lesson.KindBossBattle {
				hasBoss = true
				if err := checkBossBattle(st.Number, b.BossBattle.Options, b.BossBattle.CorrectAnswer, b.BossBattle.XPReward); err != nil {
					t.Errorf("fallback boss battle invalid: %v", err)
				}
			}
		}
	}
	if !hasBoss {
		t.Error("fallback lesson has no boss battle")
	}
	if stages[len(stages)-1].Blocks[0].Kind != lesson.KindVictory {
		t.Error("fallback lesson must end with a victory block")
	}
}
