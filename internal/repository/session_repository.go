package repository

import (
	"context"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
)

// SessionRepository stores login sessions keyed by hashed token.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, hashedToken string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, hashedToken string) error
}
