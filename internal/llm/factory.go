package llm

import (
	"context"
	"fmt"
)

// RequestSink receives a record of every model request for auditing. The
// store's event repo satisfies this; a nil sink disables logging.
type RequestSink interface {
	RecordModelRequest(ctx context.Context, rec RequestRecord) error
}

// NewProvider builds the configured provider wrapped with logging and retry
// middleware (caller -> retry -> logging -> base).
func NewProvider(ctx context.Context, cfg Config, sink RequestSink) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initialize %s provider: %w", cfg.Provider, err)
	}

	wrapped := Provider(base)
	if sink != nil {
		wrapped = WithLogging(wrapped, sink)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewProviderFromEnv is NewProvider driven by environment configuration.
func NewProviderFromEnv(ctx context.Context, sink RequestSink) (Provider, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, sink)
}
