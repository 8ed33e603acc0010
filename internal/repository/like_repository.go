package repository

import (
	"context"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
)

// LikeRepository is the append-only like ledger. Likes are never updated or
// deleted.
type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	// GetByProfiles looks up the like for the exact ordered (liker, liked)
	// pair, returning domain.ErrLikeNotFound when absent.
	GetByProfiles(ctx context.Context, likerID, likedID int) (*domain.Like, error)
	ListByLiker(ctx context.Context, likerID int) ([]*domain.Like, error)
}
