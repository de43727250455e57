package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	authmw "github.com/tonearc/artistdna/internal/auth/middleware"
	"github.com/tonearc/artistdna/internal/cache"
	"github.com/tonearc/artistdna/internal/profile"
	"github.com/tonearc/artistdna/internal/session"
)

func doJSON(t *testing.T, h http.HandlerFunc, method, target, subject string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if subject != "" {
		req = req.WithContext(authmw.WithSubject(context.Background(), subject))
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("bad response %q: %v", rec.Body.String(), err)
	}
	return m
}

func TestStartHandler(t *testing.T) {
	store := session.NewInMemoryStore()

	rec := doJSON(t, StartHandler(store), "POST", "/profiling/start", "user-1", map[string]any{"locale": "ru"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	m := decode(t, rec)
	if m["session_id"] == "" {
		t.Fatal("no session_id")
	}
	if qs, ok := m["questions"].([]any); !ok || len(qs) != 37 {
		t.Fatalf("questions = %v", m["questions"])
	}

	rec = doJSON(t, StartHandler(store), "POST", "/profiling/start", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous start: status = %d, want 401", rec.Code)
	}
}

func TestAnswerHandlerFlow(t *testing.T) {
	store := session.NewInMemoryStore()
	results := cache.NewMemoryResultCache(time.Minute)
	sess, err := store.CreateSession(context.Background(), "user-1", "ru")
	if err != nil {
		t.Fatal(err)
	}

	// First energy answer leaves the axis uncertain, a followup comes back.
	rec := doJSON(t, AnswerHandler(store, results), "POST", "/profiling/answer", "user-1", map[string]any{
		"session_id":  sess.ID,
		"question_id": "q01_energy_drive",
		"answer_type": "scale",
		"answer_json": map[string]any{"value": 5},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	m := decode(t, rec)
	fu, ok := m["followup"].(map[string]any)
	if !ok || fu["id"] != "f01_energy_context" {
		t.Fatalf("followup = %v, want f01_energy_context", m["followup"])
	}

	// A neutral answer without rules returns no followup.
	rec = doJSON(t, AnswerHandler(store, results), "POST", "/profiling/answer", "user-1", map[string]any{
		"session_id":  sess.ID,
		"question_id": "q05_darkness_vector",
		"answer_type": "scale",
		"answer_json": map[string]any{"value": 3},
	})
	if m := decode(t, rec); m["followup"] != nil {
		t.Fatalf("followup = %v, want null", m["followup"])
	}

	rec = doJSON(t, AnswerHandler(store, results), "POST", "/profiling/answer", "user-2", map[string]any{
		"session_id":  sess.ID,
		"question_id": "q01_energy_drive",
		"answer_type": "scale",
		"answer_json": map[string]any{"value": 5},
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign session: status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, AnswerHandler(store, results), "POST", "/profiling/answer", "user-1", map[string]any{
		"session_id":  sess.ID,
		"question_id": "q01_energy_drive",
		"answer_type": "essay",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad type: status = %d, want 400", rec.Code)
	}
}

func TestAnswerHandlerInvalidatesCachedResult(t *testing.T) {
	store := session.NewInMemoryStore()
	results := cache.NewMemoryResultCache(time.Minute)
	sess, err := store.CreateSession(context.Background(), "user-1", "ru")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.FinishSession(context.Background(), sess.ID); err != nil {
		t.Fatal(err)
	}
	if err := results.Set(context.Background(), sess.ID, profile.Generated{ResultID: "r-1"}); err != nil {
		t.Fatal(err)
	}

	// Re-answering a finished session is allowed and drops the stale result.
	rec := doJSON(t, AnswerHandler(store, results), "POST", "/profiling/answer", "user-1", map[string]any{
		"session_id":  sess.ID,
		"question_id": "q01_energy_drive",
		"answer_type": "scale",
		"answer_json": map[string]any{"value": 2},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if _, err := results.Get(context.Background(), sess.ID); err != cache.ErrCacheMiss {
		t.Fatalf("cached result after re-answer: err = %v, want miss", err)
	}
}

func TestFinishAndResultHandlers(t *testing.T) {
	store := session.NewInMemoryStore()
	results := cache.NewMemoryResultCache(time.Minute)
	gen := profile.NewGenerator(store, nil, zerolog.Nop())

	sess, err := store.CreateSession(context.Background(), "user-1", "ru")
	if err != nil {
		t.Fatal(err)
	}
	err = store.UpsertAnswer(context.Background(), session.Answer{
		SessionID:  sess.ID,
		QuestionID: "q01_energy_drive",
		Type:       "scale",
		Payload:    map[string]any{"value": float64(5)},
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := doJSON(t, ResultHandler(store, results), "GET", "/profiling/result?session_id="+sess.ID, "user-1", nil)
	if m := decode(t, rec); m["status"] != "processing" {
		t.Fatalf("pre-finish status = %v, want processing", m["status"])
	}

	rec = doJSON(t, FinishHandler(store, gen, results), "POST", "/profiling/finish", "user-1", map[string]any{
		"session_id": sess.ID,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("finish status = %d body=%s", rec.Code, rec.Body.String())
	}
	m := decode(t, rec)
	if m["status"] != "ready" || m["llm_used"] != false {
		t.Fatalf("finish response: %v", m)
	}
	axes := m["axes"].(map[string]any)
	if axes["energy"] != float64(74) {
		t.Fatalf("energy = %v, want 74", axes["energy"])
	}
	resultID := m["result_id"].(string)

	rec = doJSON(t, ResultHandler(store, results), "GET", "/profiling/result?result_id="+resultID, "user-1", nil)
	m = decode(t, rec)
	if m["status"] != "ready" || m["result_id"] != resultID {
		t.Fatalf("result by id: %v", m)
	}

	rec = doJSON(t, ResultHandler(store, results), "GET", "/profiling/result?session_id="+sess.ID, "user-1", nil)
	m = decode(t, rec)
	if m["status"] != "ready" {
		t.Fatalf("result by session: %v", m)
	}

	rec = doJSON(t, ResultHandler(store, results), "GET", "/profiling/result", "user-1", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing params: status = %d, want 400", rec.Code)
	}
}

func TestFinishHandlerNoAnswers(t *testing.T) {
	store := session.NewInMemoryStore()
	results := cache.NewMemoryResultCache(time.Minute)
	gen := profile.NewGenerator(store, nil, zerolog.Nop())

	sess, _ := store.CreateSession(context.Background(), "user-1", "ru")
	rec := doJSON(t, FinishHandler(store, gen, results), "POST", "/profiling/finish", "user-1", map[string]any{
		"session_id": sess.ID,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
