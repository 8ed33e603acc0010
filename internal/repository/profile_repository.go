package repository

import (
	"context"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
)

// ProfileRepository stores animal profiles. Create assigns the next monotonic
// id and stamps CreatedAt; ids are never reused.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.Profile, error)
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
}
