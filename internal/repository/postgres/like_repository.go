package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	query := `
		INSERT INTO likes (liker_id, liked_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, like.LikerID, like.LikedID).
		Scan(&like.ID, &like.CreatedAt)
}

func (r *likeRepository) GetByProfiles(ctx context.Context, likerID, likedID int) (*domain.Like, error) {
	var like domain.Like
	query := `
		SELECT id, liker_id, liked_id, created_at FROM likes
		WHERE liker_id = $1 AND liked_id = $2
		ORDER BY id LIMIT 1
	`
	err := r.db.GetContext(ctx, &like, query, likerID, likedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLikeNotFound
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) ListByLiker(ctx context.Context, likerID int) ([]*domain.Like, error) {
	var likes []*domain.Like
	query := `
		SELECT id, liker_id, liked_id, created_at FROM likes
		WHERE liker_id = $1
		ORDER BY id
	`
	err := r.db.SelectContext(ctx, &likes, query, likerID)
	return likes, err
}
