package memory

import (
	"context"
	"sync"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session // keyed by hashed token
}

func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*domain.Session),
	}
}

func (r *sessionRepository) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	r.sessions[stored.Token] = &stored
	return nil
}

func (r *sessionRepository) GetByToken(_ context.Context, hashedToken string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[hashedToken]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *sessionRepository) DeleteByToken(_ context.Context, hashedToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, hashedToken)
	return nil
}
