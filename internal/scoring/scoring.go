// Package scoring holds the pure grading and statistics functions for
// lesson sessions. Nothing here performs I/O or keeps state; the engine
// owns the session and calls in.
package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/abhisek/questline/internal/lesson"
)

// Result is the grading outcome for a single answer.
type Result struct {
	Correct   bool
	XPAwarded int
}

// Grade compares a selected answer against the expected one. Matching is
// literal string equality: no case folding, no whitespace trimming. A wrong
// answer earns zero XP; there is no partial credit.
func Grade(selected, correctAnswer string, xpReward int) Result {
	if selected == correctAnswer {
		return Result{Correct: true, XPAwarded: xpReward}
	}
	return Result{Correct: false, XPAwarded: 0}
}

// Record folds a grading result into the session counters and returns the
// updated value. Counters only ever increase.
func Record(stats lesson.Stats, r Result) lesson.Stats {
	stats.QuestionsAnswered++
	if r.Correct {
		stats.CorrectAnswers++
	}
	stats.XPEarned += r.XPAwarded
	return stats
}

// Summarize computes the display snapshot for the given counters.
// Accuracy is round-half-up of 100*correct/answered, 0 when nothing has
// been answered. Elapsed time is round-half-up whole minutes since start.
func Summarize(stats lesson.Stats, now time.Time) lesson.StatsSnapshot {
	accuracy := 0
	if stats.QuestionsAnswered > 0 {
		accuracy = int(math.Round(100 * float64(stats.CorrectAnswers) / float64(stats.QuestionsAnswered)))
	}

	minutes := int(math.Round(now.Sub(stats.StartTime).Minutes()))
	if minutes < 0 {
		minutes = 0
	}

	return lesson.StatsSnapshot{
		QuestionsAnswered: stats.QuestionsAnswered,
		Accuracy:          accuracy,
		XPEarned:          stats.XPEarned,
		TimeSpent:         fmt.Sprintf("%dm", minutes),
	}
}
