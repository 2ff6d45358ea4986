package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"seat-map/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) int

	// Sweep drops sessions idle longer than the TTL and returns how many went
	Sweep(ctx context.Context, now time.Time) int
}

// sessionRepository keeps sessions in process memory only; they do not
// survive a restart.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entity.Session
	ttl      time.Duration
	log      *zap.Logger
}

func NewSessionRepository(ttl time.Duration, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*entity.Session),
		ttl:      ttl,
		log:      log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	r.sessions[session.ID] = session

	return nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)

	return nil
}

func (r *sessionRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *sessionRepository) Sweep(ctx context.Context, now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		session.Lock()
		idle := session.IdleSince(now)
		session.Unlock()

		if idle > r.ttl {
			delete(r.sessions, id)
			removed++
			r.log.Debug("Session expired",
				zap.String("session_id", id.String()),
				zap.Duration("idle", idle),
			)
		}
	}

	return removed
}
