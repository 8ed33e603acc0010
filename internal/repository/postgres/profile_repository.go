package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

const uniqueViolation = "23505"

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (username, password, name, species, age, bio, avatar, species_preferences)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Username, profile.Password, profile.Name, profile.Species,
		profile.Age, profile.Bio, profile.Avatar, pq.Array(profile.SpeciesPreferences),
	).Scan(&profile.ID, &profile.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	query := `
		SELECT id, username, password, name, species, age, bio, avatar, species_preferences, created_at
		FROM profiles WHERE id = $1
	`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, id))
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `
		SELECT id, username, password, name, species, age, bio, avatar, species_preferences, created_at
		FROM profiles WHERE username = $1
		ORDER BY id LIMIT 1
	`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, username))
}

func (r *profileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	query := `
		SELECT id, username, password, name, species, age, bio, avatar, species_preferences, created_at
		FROM profiles ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		var profile domain.Profile
		if err := rows.Scan(
			&profile.ID, &profile.Username, &profile.Password, &profile.Name,
			&profile.Species, &profile.Age, &profile.Bio, &profile.Avatar,
			pq.Array(&profile.SpeciesPreferences), &profile.CreatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, &profile)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) scanProfile(row *sql.Row) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.ID, &profile.Username, &profile.Password, &profile.Name,
		&profile.Species, &profile.Age, &profile.Bio, &profile.Avatar,
		pq.Array(&profile.SpeciesPreferences), &profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
