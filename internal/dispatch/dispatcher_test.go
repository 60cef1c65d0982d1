package dispatch

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questline/internal/lesson"
)

// fakeRenderer records the block it was built for.
type fakeRenderer struct {
	block lesson.Block
}

func (f fakeRenderer) Init() tea.Cmd                      { return nil }
func (f fakeRenderer) Update(tea.Msg) (Renderer, tea.Cmd) { return f, nil }
func (f fakeRenderer) View(int) string                    { return string(f.block.Kind) }

func fakeFactory(b lesson.Block, _ Hooks) Renderer {
	return fakeRenderer{block: b}
}

func fullRegistry() *Registry {
	r := NewRegistry()
	r.Register(lesson.KindExplainer, fakeFactory)
	r.Register(lesson.KindBossBattle, fakeFactory)
	r.Register(lesson.KindLevelMap, fakeFactory)
	r.Register(lesson.KindVictory, fakeFactory)
	return r
}

func TestRender_UnknownBlockSkipped(t *testing.T) {
	stage := &lesson.Stage{
		Number: 1,
		Title:  "Mixed",
		Blocks: []lesson.Block{
			lesson.NewExplainer(lesson.Explainer{Title: "A", Content: "..."}),
			{Kind: lesson.KindUnknown, RawKind: "mysteryBlock"},
			lesson.NewBossBattle(lesson.BossBattle{Question: "?", CorrectAnswer: "x", XPReward: 5}),
		},
	}

	d := New(fullRegistry(), nil, nil)
	renderers, warnings := d.Render(stage, Hooks{})

	if len(renderers) != 2 {
		t.Fatalf("len(renderers) = %d, want 2", len(renderers))
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
	if warnings[0].TypeTag != "mysteryBlock" {
		t.Errorf("warning tag = %q, want mysteryBlock", warnings[0].TypeTag)
	}
	if warnings[0].StageNumber != 1 {
		t.Errorf("warning stage = %d, want 1", warnings[0].StageNumber)
	}
}

func TestRender_OrderPreserved(t *testing.T) {
	stage := &lesson.Stage{
		Number: 2,
		Blocks: []lesson.Block{
			lesson.NewLevelMap(lesson.LevelMap{}),
			lesson.NewExplainer(lesson.Explainer{}),
			lesson.NewBossBattle(lesson.BossBattle{}),
		},
	}

	d := New(fullRegistry(), nil, nil)
	renderers, _ := d.Render(stage, Hooks{})

	want := []lesson.BlockKind{lesson.KindLevelMap, lesson.KindExplainer, lesson.KindBossBattle}
	if len(renderers) != len(want) {
		t.Fatalf("len(renderers) = %d, want %d", len(renderers), len(want))
	}
	for i, r := range renderers {
		if got := r.(fakeRenderer).block.Kind; got != want[i] {
			t.Errorf("renderer %d kind = %q, want %q", i, got, want[i])
		}
	}
}

func TestRender_VictoryStatsOverlay(t *testing.T) {
	stale := &lesson.StatsSnapshot{XPEarned: 1, Accuracy: 10, TimeSpent: "99m"}
	victory := lesson.Victory{Title: "Done", Stats: stale}
	stage := &lesson.Stage{
		Number: 3,
		Blocks: []lesson.Block{lesson.NewVictory(victory)},
	}

	fresh := lesson.StatsSnapshot{QuestionsAnswered: 4, Accuracy: 75, XPEarned: 300, TimeSpent: "7m"}
	d := New(fullRegistry(), nil, func() lesson.StatsSnapshot { return fresh })
	renderers, _ := d.Render(stage, Hooks{})

	got := renderers[0].(fakeRenderer).block.Victory
	if got.Stats == nil || *got.Stats != fresh {
		t.Errorf("victory stats = %+v, want fresh overlay %+v", got.Stats, fresh)
	}

	// The session-owned block keeps its original props.
	if stage.Blocks[0].Victory.Stats != stale {
		t.Error("dispatcher mutated the stage's own victory block")
	}
}

func TestResolve_UnregisteredKind(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Resolve(lesson.KindVictory); ok {
		t.Error("expected miss on empty registry")
	}
}
