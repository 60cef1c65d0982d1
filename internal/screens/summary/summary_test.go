package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/router"
)

func testStats() *lesson.StatsSnapshot {
	return &lesson.StatsSnapshot{
		QuestionsAnswered: 3,
		Accuracy:          67,
		XPEarned:          250,
		TimeSpent:         "4m",
	}
}

func TestSummaryScreen_ViewShowsStats(t *testing.T) {
	s := New(testStats())
	view := s.View(80, 24)

	for _, want := range []string{"250", "67%", "4m", "Quest complete!"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NilStats(t *testing.T) {
	s := New(nil)
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty view for nil stats")
	}
}

func TestSummaryScreen_EnterReturnsHome(t *testing.T) {
	s := New(testStats())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on enter")
	}
}

func TestSummaryScreen_EscReturnsHome(t *testing.T) {
	s := New(testStats())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on esc")
	}
}
