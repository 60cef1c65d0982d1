package scoring

import (
	"testing"
	"time"

	"github.com/abhisek/questline/internal/lesson"
)

func TestGrade_ExactMatch(t *testing.T) {
	r := Grade("Paris", "Paris", 50)
	if !r.Correct {
		t.Error("expected correct")
	}
	if r.XPAwarded != 50 {
		t.Errorf("XPAwarded = %d, want 50", r.XPAwarded)
	}
}

func TestGrade_CaseSensitive(t *testing.T) {
	// Matching is literal by design; "paris" is not "Paris".
	r := Grade("paris", "Paris", 50)
	if r.Correct {
		t.Error("expected incorrect for case mismatch")
	}
	if r.XPAwarded != 0 {
		t.Errorf("XPAwarded = %d, want 0", r.XPAwarded)
	}
}

func TestGrade_WrongAnswerZeroXP(t *testing.T) {
	r := Grade("B", "C", 100)
	if r.Correct || r.XPAwarded != 0 {
		t.Errorf("got %+v, want incorrect with 0 XP", r)
	}
}

func TestRecord_Monotonic(t *testing.T) {
	stats := lesson.Stats{}

	stats = Record(stats, Result{Correct: true, XPAwarded: 50})
	stats = Record(stats, Result{Correct: false, XPAwarded: 0})
	stats = Record(stats, Result{Correct: true, XPAwarded: 25})

	if stats.QuestionsAnswered != 3 {
		t.Errorf("QuestionsAnswered = %d, want 3", stats.QuestionsAnswered)
	}
	if stats.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", stats.CorrectAnswers)
	}
	if stats.XPEarned != 75 {
		t.Errorf("XPEarned = %d, want 75", stats.XPEarned)
	}
	if stats.CorrectAnswers > stats.QuestionsAnswered {
		t.Error("invariant violated: correct > answered")
	}
}

func TestSummarize_AccuracyRounding(t *testing.T) {
	start := time.Now()
	stats := lesson.Stats{QuestionsAnswered: 3, CorrectAnswers: 2, StartTime: start}

	snap := Summarize(stats, start)
	if snap.Accuracy != 67 {
		t.Errorf("Accuracy = %d, want 67", snap.Accuracy)
	}
}

func TestSummarize_NoQuestions(t *testing.T) {
	start := time.Now()
	snap := Summarize(lesson.Stats{StartTime: start}, start)
	if snap.Accuracy != 0 {
		t.Errorf("Accuracy = %d, want 0 with no questions", snap.Accuracy)
	}
}

func TestSummarize_ElapsedMinutes(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "0m"},
		{29 * time.Second, "0m"},
		{31 * time.Second, "1m"},
		{12*time.Minute + 40*time.Second, "13m"},
	}
	for _, tt := range tests {
		snap := Summarize(lesson.Stats{StartTime: start}, start.Add(tt.elapsed))
		if snap.TimeSpent != tt.want {
			t.Errorf("elapsed %v: TimeSpent = %q, want %q", tt.elapsed, snap.TimeSpent, tt.want)
		}
	}
}

func TestSummarize_CopiesXP(t *testing.T) {
	start := time.Now()
	stats := lesson.Stats{QuestionsAnswered: 4, CorrectAnswers: 4, XPEarned: 400, StartTime: start}

	snap := Summarize(stats, start)
	if snap.XPEarned != 400 {
		t.Errorf("XPEarned = %d, want 400", snap.XPEarned)
	}
	if snap.Accuracy != 100 {
		t.Errorf("Accuracy = %d, want 100", snap.Accuracy)
	}
}
