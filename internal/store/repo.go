package store

import (
	"context"
	"errors"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/llm"
)

// ErrNotFound is returned when a session does not exist in the store.
var ErrNotFound = errors.New("session not found")

// SessionRepo persists lesson session snapshots. Save is an upsert keyed
// by the session ID, so callers write back the full session after every
// state change.
type SessionRepo interface {
	// Save inserts or updates the session snapshot.
	Save(ctx context.Context, s *lesson.Session) error

	// Get returns the session with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*lesson.Session, error)

	// Delete removes the session with the given ID. Deleting a session
	// that does not exist is not an error.
	Delete(ctx context.Context, id string) error

	// ListRecent returns up to limit sessions ordered by most recently
	// updated first.
	ListRecent(ctx context.Context, limit int) ([]*lesson.Session, error)
}

// ProgressEventData captures one progress submission for the audit log.
type ProgressEventData struct {
	SessionID        string
	StageNumber      int
	Graded           bool
	Correct          bool
	XPAwarded        int
	CompletedSession bool
}

// EventRepo provides append access to domain events. It also satisfies
// llm.RequestSink so model calls land in the same event log.
type EventRepo interface {
	llm.RequestSink

	// AppendProgress records one progress submission.
	AppendProgress(ctx context.Context, data ProgressEventData) error
}
