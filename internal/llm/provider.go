// Package llm abstracts the language-model providers used to generate
// lesson content. Callers build a Request, optionally with a JSON schema,
// and get validated JSON back regardless of which provider served it.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured content from a prompt.
type Provider interface {
	// Generate sends the request and returns the model's output. When the
	// request carries a Schema, Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation. Questline generation is
// single-turn, so requests usually carry exactly one user message.
type Message struct {
	Role    Role
	Content string
}

// Schema is the JSON Schema the response must conform to. Providers use
// their native structured-output mechanism where one exists; the response
// is additionally validated locally before it is returned.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Request describes one generation call.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64 // 0.0-1.0, zero means deterministic
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON when a schema was requested, otherwise
	// the raw text.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}
