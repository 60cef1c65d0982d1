package lesson

import (
	"encoding/json"
	"testing"
)

func TestBlock_UnmarshalBossBattle(t *testing.T) {
	data := []byte(`{
		"type": "bossBattle",
		"props": {
			"bossName": "The Fraction Fiend",
			"bossHealth": 100,
			"question": "What is 1/2 + 1/4?",
			"options": ["1/6", "3/4", "2/6", "1/8"],
			"correctAnswer": "3/4",
			"hint": "Find a common denominator first.",
			"xpReward": 50
		}
	}`)

	var b Block
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.Kind != KindBossBattle {
		t.Fatalf("Kind = %q, want %q", b.Kind, KindBossBattle)
	}
	if b.BossBattle == nil {
		t.Fatal("BossBattle variant is nil")
	}
	if b.BossBattle.CorrectAnswer != "3/4" {
		t.Errorf("CorrectAnswer = %q, want %q", b.BossBattle.CorrectAnswer, "3/4")
	}
	if b.BossBattle.XPReward != 50 {
		t.Errorf("XPReward = %d, want 50", b.BossBattle.XPReward)
	}
	if !b.Graded() {
		t.Error("boss battle should be graded")
	}
}

func TestBlock_UnmarshalUnknownKind(t *testing.T) {
	data := []byte(`{"type": "mysteryBlock", "props": {"whatever": true}}`)

	var b Block
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("unknown block type must not error: %v", err)
	}
	if b.Kind != KindUnknown {
		t.Errorf("Kind = %q, want KindUnknown", b.Kind)
	}
	if b.RawKind != "mysteryBlock" {
		t.Errorf("RawKind = %q, want %q", b.RawKind, "mysteryBlock")
	}
	if b.Graded() {
		t.Error("unknown block must not be graded")
	}
}

func TestBlock_MarshalEnvelope(t *testing.T) {
	b := NewExplainer(Explainer{Title: "Fractions", Content: "A fraction is..."})

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var env struct {
		Type  string          `json:"type"`
		Props json.RawMessage `json:"props"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Type != "explainer" {
		t.Errorf("type = %q, want %q", env.Type, "explainer")
	}

	var back Block
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if back.Explainer == nil || back.Explainer.Title != "Fractions" {
		t.Errorf("round trip lost explainer title: %+v", back.Explainer)
	}
}

func TestStage_MixedBlocksDecode(t *testing.T) {
	data := []byte(`{
		"stageNumber": 2,
		"title": "Boss Fight",
		"components": [
			{"type": "explainer", "props": {"title": "Get ready", "content": "..."}},
			{"type": "hologram", "props": {}},
			{"type": "bossBattle", "props": {"bossName": "X", "question": "?", "options": ["a"], "correctAnswer": "a", "xpReward": 10}}
		]
	}`)

	var st Stage
	if err := json.Unmarshal(data, &st); err != nil {
		t.Fatalf("unmarshal stage: %v", err)
	}
	if len(st.Blocks) != 3 {
		t.Fatalf("len(Blocks) = %d, want 3", len(st.Blocks))
	}
	if st.Blocks[0].Kind != KindExplainer {
		t.Errorf("block 0 kind = %q, want explainer", st.Blocks[0].Kind)
	}
	if st.Blocks[1].Kind != KindUnknown {
		t.Errorf("block 1 kind = %q, want unknown", st.Blocks[1].Kind)
	}
	if st.Blocks[2].Kind != KindBossBattle {
		t.Errorf("block 2 kind = %q, want bossBattle", st.Blocks[2].Kind)
	}
}

func TestParseTone(t *testing.T) {
	tests := []struct {
		in   string
		want Tone
	}{
		{"pirate", TonePirate},
		{"wizard", ToneWizard},
		{"", ToneEncouraging},
		{"sarcastic", ToneEncouraging},
	}
	for _, tt := range tests {
		if got := ParseTone(tt.in); got != tt.want {
			t.Errorf("ParseTone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
