package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SQLStore implements Store over database/sql. The same statements run on
// both supported drivers ("sqlite" and "postgres"); schema is created by
// the db package.
type SQLStore struct {
	db     *sql.DB
	driver string
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) CreateSession(ctx context.Context, userID, locale string) (Session, error) {
	if locale == "" {
		locale = "ru"
	}
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    StatusInProgress,
		Locale:    locale,
		Version:   1,
		StartedAt: time.Now().Unix(),
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO sessions (id,user_id,status,locale,version,started_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		sess.ID, sess.UserID, sess.Status, sess.Locale, sess.Version, sess.StartedAt)
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *SQLStore) GetSession(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,user_id,status,locale,version,started_at,COALESCE(finished_at,0)
		FROM sessions WHERE id=$1`, id)
	var sess Session
	if err := row.Scan(&sess.ID, &sess.UserID, &sess.Status, &sess.Locale, &sess.Version, &sess.StartedAt, &sess.FinishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, err
	}
	return sess, nil
}

func (s *SQLStore) FinishSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE sessions SET status=$1, finished_at=$2 WHERE id=$3`,
		StatusFinished, time.Now().Unix(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *SQLStore) UpsertAnswer(ctx context.Context, a Answer) error {
	if a.Payload == nil {
		a.Payload = map[string]any{}
	}
	payload, err := json.Marshal(a.Payload)
	if err != nil {
		return err
	}
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}
	// seq keeps submission order; the conflict branch leaves it (and
	// created_at) untouched so a re-answer stays in place.
	_, err = s.db.ExecContext(ctx, `INSERT INTO answers (session_id,question_id,answer_type,answer_json,created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (session_id,question_id) DO UPDATE SET answer_type=EXCLUDED.answer_type, answer_json=EXCLUDED.answer_json`,
		a.SessionID, a.QuestionID, a.Type, string(payload), a.CreatedAt)
	return err
}

func (s *SQLStore) ListAnswers(ctx context.Context, sessionID string) ([]Answer, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT session_id,question_id,answer_type,answer_json,created_at
		FROM answers WHERE session_id=$1 ORDER BY seq ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Answer
	for rows.Next() {
		var a Answer
		var payload string
		if err := rows.Scan(&a.SessionID, &a.QuestionID, &a.Type, &payload, &a.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &a.Payload); err != nil {
			a.Payload = map[string]any{}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) SaveResult(ctx context.Context, r Result) (Result, error) {
	var regen int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results WHERE session_id=$1`, r.SessionID).Scan(&regen); err != nil {
		return Result{}, err
	}
	r.ID = uuid.NewString()
	r.RegenCount = regen
	r.CreatedAt = time.Now().Unix()

	axes, err := json.Marshal(r.Axes)
	if err != nil {
		return Result{}, err
	}
	social, err := json.Marshal(r.SocialAxes)
	if err != nil {
		return Result{}, err
	}
	conf, err := json.Marshal(r.Confidence)
	if err != nil {
		return Result{}, err
	}
	recs, err := json.Marshal(r.Recommendations)
	if err != nil {
		return Result{}, err
	}
	prompts, err := json.Marshal(r.Prompts)
	if err != nil {
		return Result{}, err
	}
	features, err := json.Marshal(r.RawFeatures)
	if err != nil {
		return Result{}, err
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO results
		(id,session_id,axes_json,social_axes_json,confidence_json,profile_text,recommendations_json,prompts_json,raw_features_json,regen_count,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		r.ID, r.SessionID, string(axes), string(social), string(conf), r.ProfileText,
		string(recs), string(prompts), string(features), r.RegenCount, r.CreatedAt)
	if err != nil {
		return Result{}, err
	}
	return r, nil
}

func (s *SQLStore) LatestResult(ctx context.Context, sessionID string) (Result, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,session_id,axes_json,social_axes_json,confidence_json,profile_text,recommendations_json,prompts_json,raw_features_json,regen_count,created_at
		FROM results WHERE session_id=$1 ORDER BY created_at DESC, regen_count DESC LIMIT 1`, sessionID)
	return scanResult(row)
}

func (s *SQLStore) ResultByID(ctx context.Context, id string) (Result, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,session_id,axes_json,social_axes_json,confidence_json,profile_text,recommendations_json,prompts_json,raw_features_json,regen_count,created_at
		FROM results WHERE id=$1`, id)
	return scanResult(row)
}

func scanResult(row *sql.Row) (Result, error) {
	var r Result
	var axes, social, conf, recs, prompts, features string
	err := row.Scan(&r.ID, &r.SessionID, &axes, &social, &conf, &r.ProfileText, &recs, &prompts, &features, &r.RegenCount, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Result{}, ErrResultNotFound
		}
		return Result{}, err
	}
	_ = json.Unmarshal([]byte(axes), &r.Axes)
	_ = json.Unmarshal([]byte(social), &r.SocialAxes)
	_ = json.Unmarshal([]byte(conf), &r.Confidence)
	_ = json.Unmarshal([]byte(recs), &r.Recommendations)
	_ = json.Unmarshal([]byte(prompts), &r.Prompts)
	_ = json.Unmarshal([]byte(features), &r.RawFeatures)
	return r, nil
}
