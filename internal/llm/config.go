package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the model provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries. Default 60s:
	// lesson generation produces several stages in one call.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific settings.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific settings. BaseURL switches the client
// to any OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini-specific settings.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig tunes the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns sensible defaults for every provider.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from QUESTLINE_* and provider API key
// environment variables. The provider defaults by whichever API key is
// present, with QUESTLINE_LLM_PROVIDER taking precedence.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")

	if m := os.Getenv("QUESTLINE_LLM_MODEL"); m != "" {
		cfg.Anthropic.Model = m
		cfg.OpenAI.Model = m
		cfg.Gemini.Model = m
	}
	if u := os.Getenv("QUESTLINE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if p := os.Getenv("QUESTLINE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
		return cfg, nil
	}

	switch {
	case cfg.Anthropic.APIKey != "":
		cfg.Provider = "anthropic"
	case cfg.OpenAI.APIKey != "":
		cfg.Provider = "openai"
	case cfg.Gemini.APIKey != "":
		cfg.Provider = "gemini"
	default:
		return cfg, fmt.Errorf("no LLM API key configured (set ANTHROPIC_API_KEY, OPENAI_API_KEY or GEMINI_API_KEY)")
	}
	return cfg, nil
}
