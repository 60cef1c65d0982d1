package lessongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/questline/internal/lesson"
)

const stagesSystemPrompt = `You are a lesson designer for an interactive learning game. You turn any topic into a short sequence of stages: each stage teaches one idea, and most stages end with a "boss battle" quiz question that tests exactly that idea.`

// toneVoices describes each personality tone for the model.
var toneVoices = map[lesson.Tone]string{
	lesson.ToneEncouraging: "warm and encouraging, celebrates every bit of progress",
	lesson.TonePirate:      "a salty pirate captain; nautical slang, calls the learner 'matey'",
	lesson.ToneWizard:      "an ancient wizard mentor; mystical, speaks of knowledge as magic",
	lesson.ToneCoach:       "a high-energy sports coach; short punchy sentences, lots of drive",
	lesson.ToneRobot:       "a deadpan robot tutor; precise, occasionally computes enthusiasm",
}

func buildStagesUserMessage(topic string, tone lesson.Tone, stageCount int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Voice: %s\n", toneVoices[tone]))
	b.WriteString(fmt.Sprintf("Stage count: %d\n", stageCount))

	b.WriteString(`
Instructions:
1. Break the topic into that many stages, ordered from fundamentals to the hardest idea. Each stage gets a short title.
2. Every stage needs an explainer: a clear 3-6 sentence explanation of that stage's idea, written in the requested voice, plus one line of encouragement.
3. Every stage except the first needs a boss battle: one multiple-choice question testing that stage's idea, with 3-4 answer options, a themed boss name, a helpful hint, and an XP reward between 25 and 150 scaled to difficulty.
4. The correctAnswer string must be copied character-for-character from the options list.
5. Keep all text plain ASCII.`)

	return b.String()
}
