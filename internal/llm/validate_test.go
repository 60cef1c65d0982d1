package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func stageSchema() *Schema {
	return &Schema{
		Name:        "stage-check",
		Description: "One lesson stage",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":    map[string]any{"type": "string"},
				"xpReward": map[string]any{"type": "integer", "minimum": 1},
				"tone":     map[string]any{"type": "string", "enum": []any{"pirate", "wizard"}},
			},
			"required": []any{"title", "xpReward"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"title":"Boss Fight","xpReward":50,"tone":"pirate"}`)
	if err := validateResponse(stageSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_OptionalOmitted(t *testing.T) {
	raw := json.RawMessage(`{"title":"Intro","xpReward":10}`)
	if err := validateResponse(stageSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"Intro"}`)
	err := validateResponse(stageSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("err = %T, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`Sure! Here is your lesson:`)
	err := validateResponse(stageSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("err = %T, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Fatalf("nil schema must pass: %v", err)
	}
}
