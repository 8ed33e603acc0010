package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	// Canonical ordering backs the unique (user1_id, user2_id) index.
	match.User1ID, match.User2ID = domain.CanonicalPair(match.User1ID, match.User2ID)

	query := `
		INSERT INTO matches (user1_id, user2_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, match.User1ID, match.User2ID).
		Scan(&match.ID, &match.CreatedAt)
}

func (r *matchRepository) GetByProfiles(ctx context.Context, user1ID, user2ID int) (*domain.Match, error) {
	user1ID, user2ID = domain.CanonicalPair(user1ID, user2ID)

	var match domain.Match
	query := `SELECT id, user1_id, user2_id, created_at FROM matches WHERE user1_id = $1 AND user2_id = $2`
	err := r.db.GetContext(ctx, &match, query, user1ID, user2ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetProfileMatches(ctx context.Context, profileID int) ([]*domain.Match, error) {
	var matches []*domain.Match
	query := `
		SELECT id, user1_id, user2_id, created_at FROM matches
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY id
	`
	err := r.db.SelectContext(ctx, &matches, query, profileID)
	return matches, err
}
