package lesson

import "time"

// Tone selects the narrative voice used when lesson content is generated.
// It is fixed at session creation and opaque to the progression engine.
type Tone string

const (
	ToneEncouraging Tone = "encouraging"
	TonePirate      Tone = "pirate"
	ToneWizard      Tone = "wizard"
	ToneCoach       Tone = "coach"
	ToneRobot       Tone = "robot"
)

// Tones lists every supported tone in display order.
var Tones = []Tone{ToneEncouraging, TonePirate, ToneWizard, ToneCoach, ToneRobot}

// ParseTone returns the tone matching s, falling back to ToneEncouraging
// for empty or unrecognized input.
func ParseTone(s string) Tone {
	for _, t := range Tones {
		if string(t) == s {
			return t
		}
	}
	return ToneEncouraging
}

// Stats holds the cumulative counters for a session. All counters are
// monotonically non-decreasing; only the scoring package updates them.
type Stats struct {
	QuestionsAnswered int       `json:"questionsAnswered"`
	CorrectAnswers    int       `json:"correctAnswers"`
	XPEarned          int       `json:"xpEarned"`
	StartTime         time.Time `json:"startTime"`
}

// StatsSnapshot is the wire form of session statistics shown to learners
// and returned by the session API.
type StatsSnapshot struct {
	QuestionsAnswered int    `json:"questionsAnswered"`
	Accuracy          int    `json:"accuracy"` // percent, 0-100
	XPEarned          int    `json:"xpEarned"`
	TimeSpent         string `json:"timeSpent"` // e.g. "12m"
}

// Stage is one ordered step of a lesson. Its block list is immutable once
// the stage has been issued to a session.
type Stage struct {
	Number int     `json:"stageNumber"` // 1-based, matches position
	Title  string  `json:"title"`
	Blocks []Block `json:"components"`
}

// Session is one learner's traversal of a lesson's stage sequence.
//
// Invariants: 0 <= CurrentStageIndex <= len(Stages);
// Stats.CorrectAnswers <= Stats.QuestionsAnswered;
// Complete is true exactly when CurrentStageIndex == len(Stages).
type Session struct {
	ID                string  `json:"sessionId"`
	Tone              Tone    `json:"personalityTone"`
	Stages            []Stage `json:"stages"`
	CurrentStageIndex int     `json:"currentStageIndex"`
	Stats             Stats   `json:"stats"`
	Complete          bool    `json:"isComplete"`

	// GradedStages records stage indexes that already consumed their one
	// graded submission. A second graded event for the same stage is a no-op
	// for stats.
	GradedStages map[int]bool `json:"gradedStages,omitempty"`

	// FinalSummary is frozen when the session completes so that repeated
	// submissions replay an identical completion outcome.
	FinalSummary *StatsSnapshot `json:"finalSummary,omitempty"`
	CompletedAt  *time.Time     `json:"completedAt,omitempty"`
}

// TotalStages returns the number of stages in the session.
func (s *Session) TotalStages() int {
	return len(s.Stages)
}

// StageGraded reports whether the stage at index i has already consumed
// its graded submission.
func (s *Session) StageGraded(i int) bool {
	return s.GradedStages[i]
}

// MarkStageGraded records that the stage at index i consumed its graded
// submission.
func (s *Session) MarkStageGraded(i int) {
	if s.GradedStages == nil {
		s.GradedStages = make(map[int]bool)
	}
	s.GradedStages[i] = true
}
