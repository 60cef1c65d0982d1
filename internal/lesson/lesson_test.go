package lesson

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSessionJSON_CompletedAtOmittedWhileInProgress(t *testing.T) {
	sess := &Session{
		ID:   "sess-1",
		Tone: TonePirate,
		Stages: []Stage{
			{Number: 1, Title: "Setting Sail"},
		},
	}

	data, err := json.Marshal(sess)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "completedAt") {
		t.Errorf("in-progress snapshot leaked completedAt: %s", data)
	}
}

func TestSessionJSON_CompletedAtRoundTrip(t *testing.T) {
	completedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	sess := &Session{
		ID:          "sess-2",
		Tone:        ToneWizard,
		Complete:    true,
		CompletedAt: &completedAt,
	}

	data, err := json.Marshal(sess)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Session
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completedAt) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, completedAt)
	}
}
