package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RequestRecord is the audit trail entry for one model request.
type RequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// loggingProvider records every request through a RequestSink.
type loggingProvider struct {
	inner Provider
	sink  RequestSink
}

// WithLogging wraps a provider so every call lands in the sink. Sink
// failures are reported to stderr and never fail the request itself.
func WithLogging(p Provider, sink RequestSink) Provider {
	return &loggingProvider{inner: p, sink: sink}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := RequestRecord{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	if sinkErr := l.sink.RecordModelRequest(ctx, rec); sinkErr != nil {
		fmt.Fprintf(os.Stderr, "warning: record model request: %v\n", sinkErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
