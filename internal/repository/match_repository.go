package repository

import (
	"context"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
)

// MatchRepository stores mutual-like matches. Create canonicalizes the pair so
// user1_id < user2_id before inserting.
type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByProfiles(ctx context.Context, user1ID, user2ID int) (*domain.Match, error)
	// GetProfileMatches returns every match the profile participates in, in
	// creation order.
	GetProfileMatches(ctx context.Context, profileID int) ([]*domain.Match, error)
}
