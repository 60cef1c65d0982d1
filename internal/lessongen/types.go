// Package lessongen generates complete stage sequences for a topic. It is
// the content-generation collaborator: the progression engine consumes its
// output and never talks to a model itself.
package lessongen

import (
	"context"

	"github.com/abhisek/questline/internal/lesson"
)

// Generator produces the full stage list for one lesson session.
type Generator interface {
	GenerateStages(ctx context.Context, topic string, tone lesson.Tone) ([]lesson.Stage, error)
}

// Config holds generation settings.
type Config struct {
	// StageCount is how many teaching stages to request, excluding the
	// closing victory stage.
	StageCount int

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		StageCount:  4,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
