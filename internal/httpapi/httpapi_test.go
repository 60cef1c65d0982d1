package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/questline/internal/lesson"
	"github.com/abhisek/questline/internal/llm"
	"github.com/abhisek/questline/internal/service"
	"github.com/abhisek/questline/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memSessions struct {
	m map[string]*lesson.Session
}

func (f *memSessions) Save(_ context.Context, s *lesson.Session) error {
	b, _ := json.Marshal(s)
	var cp lesson.Session
	_ = json.Unmarshal(b, &cp)
	f.m[s.ID] = &cp
	return nil
}

func (f *memSessions) Get(_ context.Context, id string) (*lesson.Session, error) {
	s, ok := f.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	b, _ := json.Marshal(s)
	var cp lesson.Session
	_ = json.Unmarshal(b, &cp)
	return &cp, nil
}

func (f *memSessions) Delete(_ context.Context, id string) error {
	delete(f.m, id)
	return nil
}

func (f *memSessions) ListRecent(_ context.Context, _ int) ([]*lesson.Session, error) {
	var out []*lesson.Session
	for _, s := range f.m {
		out = append(out, s)
	}
	return out, nil
}

type memEvents struct{}

func (memEvents) AppendProgress(_ context.Context, _ store.ProgressEventData) error { return nil }
func (memEvents) RecordModelRequest(_ context.Context, _ llm.RequestRecord) error   { return nil }

type stubGen struct{}

func (stubGen) GenerateStages(_ context.Context, _ string, _ lesson.Tone) ([]lesson.Stage, error) {
	return []lesson.Stage{
		{Number: 1, Title: "Warmup", Blocks: []lesson.Block{
			lesson.NewExplainer(lesson.Explainer{Title: "Warmup", Content: "Read me."}),
		}},
		{Number: 2, Title: "Final Boss", Blocks: []lesson.Block{
			lesson.NewBossBattle(lesson.BossBattle{
				BossName:      "Grader",
				BossHealth:    100,
				Question:      "Pick B",
				Options:       []string{"A", "B"},
				CorrectAnswer: "B",
				XPReward:      100,
			}),
		}},
	}, nil
}

func newTestRouter() *gin.Engine {
	sessions := &memSessions{m: make(map[string]*lesson.Session)}
	svc := service.New(sessions, memEvents{}, stubGen{}, nil)
	return NewServer(svc, nil).Router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestCreateLesson(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/lessons", gin.H{
		"topic":           "fractions",
		"personalityTone": "pirate",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		SessionID    string      `json:"sessionId"`
		CurrentStage int         `json:"currentStage"`
		TotalStages  int         `json:"totalStages"`
		Tone         lesson.Tone `json:"personalityTone"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.SessionID == "" {
		t.Error("expected non-empty sessionId")
	}
	if resp.CurrentStage != 1 || resp.TotalStages != 2 {
		t.Errorf("currentStage/totalStages = %d/%d, want 1/2", resp.CurrentStage, resp.TotalStages)
	}
	if resp.Tone != lesson.TonePirate {
		t.Errorf("tone = %q, want %q", resp.Tone, lesson.TonePirate)
	}
}

func TestCreateLessonRequiresTopic(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/lessons", gin.H{"personalityTone": "coach"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetLessonNotFound(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/lessons/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestProgressFlow(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/lessons", gin.H{"topic": "fractions"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}

	// Stage 1: ungraded acknowledgement returns the updated snapshot.
	w = doJSON(t, r, http.MethodPost, "/api/lessons/"+created.SessionID+"/progress", gin.H{})
	if w.Code != http.StatusOK {
		t.Fatalf("progress 1 status = %d: %s", w.Code, w.Body.String())
	}
	var snap lesson.Session
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.CurrentStageIndex != 1 || snap.Complete {
		t.Errorf("after stage 1: index=%d complete=%v, want 1/false", snap.CurrentStageIndex, snap.Complete)
	}

	// Stage 2: graded result completes the lesson.
	w = doJSON(t, r, http.MethodPost, "/api/lessons/"+created.SessionID+"/progress",
		gin.H{"correct": true, "xp": 100})
	if w.Code != http.StatusOK {
		t.Fatalf("progress 2 status = %d: %s", w.Code, w.Body.String())
	}
	var done struct {
		IsComplete bool                  `json:"isComplete"`
		Stats      *lesson.StatsSnapshot `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &done); err != nil {
		t.Fatalf("decode completion: %v", err)
	}
	if !done.IsComplete {
		t.Fatal("expected isComplete=true")
	}
	if done.Stats == nil || done.Stats.XPEarned != 100 || done.Stats.Accuracy != 100 {
		t.Errorf("stats = %+v, want 100xp at 100%% accuracy", done.Stats)
	}
}

func TestProgressUnknownSession(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/lessons/ghost/progress", gin.H{})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
