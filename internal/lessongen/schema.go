package lessongen

import "github.com/abhisek/questline/internal/llm"

// StagesSchema is the JSON schema for generated lessons. The model returns
// flat stage records; the generator assembles them into content blocks.
var StagesSchema = &llm.Schema{
	Name:        "lesson-stages",
	Description: "An ordered sequence of micro-lesson stages with explanations and boss battle questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short lesson title (3-8 words)",
			},
			"stages": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Stage title shown in the header and on the level map",
						},
						"explainer": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"title": map[string]any{"type": "string"},
								"content": map[string]any{
									"type":        "string",
									"description": "Clear explanation of this step of the topic, 3-6 sentences, in the requested voice",
								},
								"encouragement": map[string]any{
									"type":        "string",
									"description": "One short encouraging line in the requested voice",
								},
							},
							"required":             []any{"title", "content"},
							"additionalProperties": false,
						},
						"bossBattle": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"bossName": map[string]any{
									"type":        "string",
									"description": "A playful villain name themed to the stage",
								},
								"question": map[string]any{"type": "string"},
								"options": map[string]any{
									"type":  "array",
									"items": map[string]any{"type": "string"},
								},
								"correctAnswer": map[string]any{
									"type":        "string",
									"description": "Must be exactly equal to one of the options",
								},
								"hint": map[string]any{"type": "string"},
								"xpReward": map[string]any{
									"type":        "integer",
									"description": "XP for a correct answer, 25-150",
								},
							},
							"required":             []any{"bossName", "question", "options", "correctAnswer", "xpReward"},
							"additionalProperties": false,
						},
					},
					"required":             []any{"title", "explainer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "stages"},
		"additionalProperties": false,
	},
}
