package session

import "github.com/tonearc/artistdna/internal/scoring"

const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

type Session struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Status     string `json:"status"` // in_progress|finished
	Locale     string `json:"locale"`
	Version    int    `json:"version"`
	StartedAt  int64  `json:"started_at"`
	FinishedAt int64  `json:"finished_at,omitempty"`
}

// Answer is one stored answer. The (SessionID, QuestionID) pair is
// unique: re-answering replaces the payload but keeps the original
// position in submission order.
type Answer struct {
	SessionID  string         `json:"session_id"`
	QuestionID string         `json:"question_id"`
	Type       string         `json:"answer_type"`
	Payload    map[string]any `json:"answer_json"`
	CreatedAt  int64          `json:"created_at"`
}

// Scoring converts the stored answer into the shape the scoring engine
// folds over.
func (a Answer) Scoring() scoring.Answer {
	return scoring.Answer{QuestionID: a.QuestionID, Type: a.Type, Payload: a.Payload}
}

// Result is one generated profile for a session. Regenerations append new
// rows; RegenCount records how many results existed before this one.
type Result struct {
	ID              string             `json:"id"`
	SessionID       string             `json:"session_id"`
	Axes            scoring.AxisScores `json:"axes"`
	SocialAxes      scoring.AxisScores `json:"social_axes"`
	Confidence      scoring.Confidence `json:"confidence"`
	ProfileText     string             `json:"profile_text"`
	Recommendations map[string]any     `json:"recommendations"`
	Prompts         map[string]any     `json:"prompts"`
	RawFeatures     map[string]any     `json:"raw_features"`
	RegenCount      int                `json:"regen_count"`
	CreatedAt       int64              `json:"created_at"`
}
