package http

import (
	"encoding/json"
	"errors"
	"net/http"

	authmw "github.com/tonearc/artistdna/internal/auth/middleware"
	"github.com/tonearc/artistdna/internal/cache"
	"github.com/tonearc/artistdna/internal/profile"
	"github.com/tonearc/artistdna/internal/scoring"
	"github.com/tonearc/artistdna/internal/session"
	"github.com/tonearc/artistdna/internal/survey"
)

// QuestionsHandler returns the full core question bank. Followups are
// never listed here, they arrive one at a time from /answer.
func QuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "questions": survey.CoreQuestions})
	}
}

// StartHandler opens a profiling session for the authenticated user and
// hands back the whole question bank.
func StartHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Locale string `json:"locale"`
		}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}
		userID := authmw.SubjectFromContext(r.Context())
		if userID == "" {
			writeError(w, http.StatusUnauthorized, "no subject")
			return
		}
		if req.Locale == "" {
			req.Locale = "ru"
		}
		sess, err := store.CreateSession(r.Context(), userID, req.Locale)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "create session failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":         true,
			"session_id": sess.ID,
			"questions":  survey.CoreQuestions,
		})
	}
}

// AnswerHandler upserts one answer and returns the next followup
// question to ask, or null when nothing triggered. A finished session
// may be re-answered; the next finish call regenerates, so any cached
// result for it is stale from this point on.
func AnswerHandler(store session.Store, results cache.ResultCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID  string         `json:"session_id"`
			QuestionID string         `json:"question_id"`
			AnswerType string         `json:"answer_type"`
			AnswerJSON map[string]any `json:"answer_json"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if req.SessionID == "" || req.QuestionID == "" || req.AnswerType == "" {
			writeError(w, http.StatusBadRequest, "session_id, question_id, answer_type required")
			return
		}
		switch req.AnswerType {
		case survey.TypeScale, survey.TypeForcedChoice, survey.TypeSJT, survey.TypeOpen:
		default:
			writeError(w, http.StatusBadRequest, "unknown answer_type")
			return
		}

		sess, err := sessionForUser(r, store, req.SessionID)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		if sess.Status == session.StatusFinished {
			_ = results.Invalidate(r.Context(), req.SessionID)
		}

		payload := req.AnswerJSON
		if payload == nil {
			payload = map[string]any{}
		}
		if err := store.UpsertAnswer(r.Context(), session.Answer{
			SessionID:  req.SessionID,
			QuestionID: req.QuestionID,
			Type:       req.AnswerType,
			Payload:    payload,
		}); err != nil {
			writeError(w, http.StatusInternalServerError, "store answer failed")
			return
		}

		answers, err := store.ListAnswers(r.Context(), req.SessionID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "load answers failed")
			return
		}
		scAnswers := make([]scoring.Answer, len(answers))
		for i, a := range answers {
			scAnswers[i] = a.Scoring()
		}

		var followup any
		if q := scoring.NextFollowup(req.QuestionID, payload, scAnswers); q != nil {
			followup = q
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "followup": followup})
	}
}

// FinishHandler runs profile generation synchronously and returns the
// full result. Calling it again regenerates.
func FinishHandler(store session.Store, gen *profile.Generator, results cache.ResultCache) http.HandlerFunc {
	type finishResponse struct {
		OK     bool   `json:"ok"`
		Status string `json:"status"`
		profile.Generated
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID  string `json:"session_id"`
			StyleLevel string `json:"style_level"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if req.SessionID == "" {
			writeError(w, http.StatusBadRequest, "session_id required")
			return
		}
		if _, err := sessionForUser(r, store, req.SessionID); err != nil {
			writeSessionError(w, err)
			return
		}

		g, err := gen.Generate(r.Context(), req.SessionID, req.StyleLevel)
		if errors.Is(err, profile.ErrNoAnswers) {
			writeError(w, http.StatusBadRequest, "no answers found for session")
			return
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "status": "failed", "error": err.Error()})
			return
		}
		_ = results.Set(r.Context(), req.SessionID, g)
		writeJSON(w, http.StatusOK, finishResponse{OK: true, Status: "ready", Generated: g})
	}
}

// ResultHandler serves a stored result by result_id, or the latest one
// for a session. A session without results yet reports processing.
func ResultHandler(store session.Store, results cache.ResultCache) http.HandlerFunc {
	type resultResponse struct {
		OK     bool   `json:"ok"`
		Status string `json:"status"`
		profile.Generated
	}
	return func(w http.ResponseWriter, r *http.Request) {
		resultID := r.URL.Query().Get("result_id")
		sessionID := r.URL.Query().Get("session_id")
		if resultID == "" && sessionID == "" {
			writeError(w, http.StatusBadRequest, "result_id or session_id required")
			return
		}

		if resultID == "" {
			if g, err := results.Get(r.Context(), sessionID); err == nil {
				writeJSON(w, http.StatusOK, resultResponse{OK: true, Status: "ready", Generated: g})
				return
			}
		}

		var (
			res session.Result
			err error
		)
		if resultID != "" {
			res, err = store.ResultByID(r.Context(), resultID)
		} else {
			res, err = store.LatestResult(r.Context(), sessionID)
		}
		if errors.Is(err, session.ErrResultNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true, "status": "processing"})
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "load result failed")
			return
		}
		writeJSON(w, http.StatusOK, resultResponse{OK: true, Status: "ready", Generated: resultView(res)})
	}
}

func sessionForUser(r *http.Request, store session.Store, sessionID string) (session.Session, error) {
	sess, err := store.GetSession(r.Context(), sessionID)
	if err != nil {
		return session.Session{}, err
	}
	if sub := authmw.SubjectFromContext(r.Context()); sub != "" && sess.UserID != sub {
		return session.Session{}, session.ErrSessionNotFound
	}
	return sess, nil
}

func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeError(w, http.StatusInternalServerError, "load session failed")
}

// resultView rebuilds the finish-shaped payload from a persisted row.
func resultView(res session.Result) profile.Generated {
	recs := res.Recommendations
	if recs == nil {
		recs = map[string]any{}
	}
	raw := res.RawFeatures
	if raw == nil {
		raw = map[string]any{}
	}

	tags := []string{}
	if ts, ok := raw["tags"].([]any); ok {
		for _, t := range ts {
			if s, ok := t.(string); ok {
				tags = append(tags, s)
			}
		}
	} else if ts, ok := raw["tags"].([]string); ok {
		tags = ts
	}

	var flags scoring.RedFlags
	switch rf := raw["red_flags"].(type) {
	case scoring.RedFlags:
		flags = rf
	case map[string]any:
		if b, err := json.Marshal(rf); err == nil {
			_ = json.Unmarshal(b, &flags)
		}
	}

	llmUsed := true
	if meta, ok := recs["_meta"].(map[string]any); ok {
		if v, ok := meta["llm_used"].(bool); ok {
			llmUsed = v
		}
	}

	main := map[string]any{}
	for _, k := range []string{"music", "content", "behavior", "visual"} {
		if v, ok := recs[k]; ok {
			main[k] = v
		}
	}

	return profile.Generated{
		ResultID:        res.ID,
		Axes:            res.Axes,
		SocialAxes:      res.SocialAxes,
		Confidence:      res.Confidence,
		ProfileText:     res.ProfileText,
		ProfileShort:    stringField(recs, "_profile_short"),
		ProfileFull:     stringField(recs, "_profile_full"),
		PassportHero:    mapField(recs, "passport_hero"),
		Recommendations: main,
		Prompts:         res.Prompts,
		SocialSummary:   mapField(recs, "social_summary"),
		Tags:            tags,
		RedFlags:        flags,
		RegenCount:      res.RegenCount,
		LLMUsed:         llmUsed,
	}
}

func stringField(m map[string]any, k string) string {
	s, _ := m[k].(string)
	return s
}

func mapField(m map[string]any, k string) map[string]any {
	v, _ := m[k].(map[string]any)
	return v
}
