package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrResultNotFound  = errors.New("result not found")
)

// Store persists interview sessions, their answers and generated results.
// ListAnswers returns answers in submission order; UpsertAnswer replaces
// an existing answer for the same question without changing its position.
type Store interface {
	CreateSession(ctx context.Context, userID, locale string) (Session, error)
	GetSession(ctx context.Context, id string) (Session, error)
	FinishSession(ctx context.Context, id string) error

	UpsertAnswer(ctx context.Context, a Answer) error
	ListAnswers(ctx context.Context, sessionID string) ([]Answer, error)

	// SaveResult assigns ID, RegenCount and CreatedAt.
	SaveResult(ctx context.Context, r Result) (Result, error)
	LatestResult(ctx context.Context, sessionID string) (Result, error)
	ResultByID(ctx context.Context, id string) (Result, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	answers  map[string][]Answer // sessionID -> submission order
	results  map[string][]Result // sessionID -> creation order
	byResult map[string]Result
}

// NewInMemoryStore returns a Store for tests and single-process dev runs.
func NewInMemoryStore() Store {
	return &memoryStore{
		sessions: map[string]Session{},
		answers:  map[string][]Answer{},
		results:  map[string][]Result{},
		byResult: map[string]Result{},
	}
}

func (m *memoryStore) CreateSession(_ context.Context, userID, locale string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if locale == "" {
		locale = "ru"
	}
	s := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    StatusInProgress,
		Locale:    locale,
		Version:   1,
		StartedAt: time.Now().Unix(),
	}
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memoryStore) GetSession(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (m *memoryStore) FinishSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.Status = StatusFinished
	s.FinishedAt = time.Now().Unix()
	m.sessions[id] = s
	return nil
}

func (m *memoryStore) UpsertAnswer(_ context.Context, a Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[a.SessionID]; !ok {
		return ErrSessionNotFound
	}
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}
	list := m.answers[a.SessionID]
	for i := range list {
		if list[i].QuestionID == a.QuestionID {
			a.CreatedAt = list[i].CreatedAt
			list[i] = a
			return nil
		}
	}
	m.answers[a.SessionID] = append(list, a)
	return nil
}

func (m *memoryStore) ListAnswers(_ context.Context, sessionID string) ([]Answer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.answers[sessionID]
	out := make([]Answer, len(list))
	copy(out, list)
	return out, nil
}

func (m *memoryStore) SaveResult(_ context.Context, r Result) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = uuid.NewString()
	r.RegenCount = len(m.results[r.SessionID])
	r.CreatedAt = time.Now().Unix()
	m.results[r.SessionID] = append(m.results[r.SessionID], r)
	m.byResult[r.ID] = r
	return r, nil
}

func (m *memoryStore) LatestResult(_ context.Context, sessionID string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.results[sessionID]
	if len(list) == 0 {
		return Result{}, ErrResultNotFound
	}
	return list[len(list)-1], nil
}

func (m *memoryStore) ResultByID(_ context.Context, id string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.byResult[id]
	if !ok {
		return Result{}, ErrResultNotFound
	}
	return r, nil
}
