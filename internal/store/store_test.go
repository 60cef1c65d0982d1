package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSession(id string) *lesson.Session {
	return &lesson.Session{
		ID:   id,
		Tone: lesson.TonePirate,
		Stages: []lesson.Stage{
			{Number: 1, Title: "Setting Sail", Blocks: []lesson.Block{
				lesson.NewExplainer(lesson.Explainer{
					Title:         "Setting Sail",
					Content:       "Every voyage starts somewhere.",
					Encouragement: "Onward!",
				}),
			}},
			{Number: 2, Title: "The Kraken", Blocks: []lesson.Block{
				lesson.NewBossBattle(lesson.BossBattle{
					BossName:      "The Kraken",
					BossHealth:    100,
					Question:      "How many arms?",
					Options:       []string{"6", "8"},
					CorrectAnswer: "8",
					XPReward:      75,
				}),
			}},
		},
		Stats: lesson.Stats{StartTime: time.Now().UTC().Truncate(time.Second)},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := testSession("sess-roundtrip")
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "sess-roundtrip")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("id = %q, want %q", got.ID, sess.ID)
	}
	if got.Tone != lesson.TonePirate {
		t.Errorf("tone = %q, want %q", got.Tone, lesson.TonePirate)
	}
	if len(got.Stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(got.Stages))
	}
	boss := got.Stages[1].Blocks[0].BossBattle
	if boss == nil {
		t.Fatal("expected boss battle block to survive the round trip")
	}
	if boss.CorrectAnswer != "8" {
		t.Errorf("correctAnswer = %q, want %q", boss.CorrectAnswer, "8")
	}
}

func TestSessionGetMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	_, err := repo.Get(context.Background(), "no-such-session")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionSaveUpdatesInPlace(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := testSession("sess-update")
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	sess.CurrentStageIndex = 2
	sess.Complete = true
	sess.Stats.QuestionsAnswered = 1
	sess.Stats.CorrectAnswers = 1
	sess.Stats.XPEarned = 75
	sess.MarkStageGraded(1)
	sess.FinalSummary = &lesson.StatsSnapshot{
		QuestionsAnswered: 1,
		Accuracy:          100,
		XPEarned:          75,
		TimeSpent:         "3m",
	}
	completedAt := time.Now().UTC().Truncate(time.Second)
	sess.CompletedAt = &completedAt
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := repo.Get(ctx, "sess-update")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Complete {
		t.Error("expected session to be complete")
	}
	if got.Stats.XPEarned != 75 {
		t.Errorf("xpEarned = %d, want 75", got.Stats.XPEarned)
	}
	if !got.StageGraded(1) {
		t.Error("expected stage 1 to be recorded as graded")
	}
	if got.FinalSummary == nil || got.FinalSummary.Accuracy != 100 {
		t.Errorf("finalSummary = %+v, want accuracy 100", got.FinalSummary)
	}

	count, err := s.Client().LessonSession.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1 (save should update, not insert)", count)
	}
}

func TestSessionDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testSession("sess-delete")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "sess-delete"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "sess-delete"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}

	// Deleting a missing session is a no-op.
	if err := repo.Delete(ctx, "sess-delete"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestSessionListRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for _, id := range []string{"sess-a", "sess-b", "sess-c"} {
		if err := repo.Save(ctx, testSession(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	sessions, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("len = %d, want 2", len(sessions))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []ProgressEventData{
		{SessionID: "sess-ev", StageNumber: 1},
		{SessionID: "sess-ev", StageNumber: 2, Graded: true, Correct: true, XPAwarded: 75, CompletedSession: true},
	}
	for i, ev := range events {
		if err := repo.AppendProgress(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	count, err := s.Client().ProgressEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("progress events = %d, want 2", count)
	}
}

func TestRecordModelRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.RecordModelRequest(ctx, llm.RequestRecord{
		Provider:     "claude-sonnet-4-5",
		Model:        "claude-sonnet-4-5",
		Purpose:      "lesson",
		InputTokens:  812,
		OutputTokens: 1450,
		LatencyMs:    2300,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("llm request events = %d, want 1", count)
	}
}
