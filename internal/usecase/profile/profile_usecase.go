package profile

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

// RegisterRequest represents profile registration input
type RegisterRequest struct {
	Username           string   `json:"username" binding:"required,min=2,max=50"`
	Password           string   `json:"password" binding:"required,min=6,max=100"`
	Name               string   `json:"name" binding:"required,min=1,max=100"`
	Species            string   `json:"species" binding:"required,species"`
	Age                int      `json:"age" binding:"required,min=0,max=200"`
	Bio                *string  `json:"bio" binding:"omitempty,max=500"`
	Avatar             string   `json:"avatar" binding:"required,url"`
	SpeciesPreferences []string `json:"species_preferences" binding:"required,min=1,dive,species"`
}

// Register creates a new profile with a hashed password.
func (uc *ProfileUseCase) Register(ctx context.Context, req *RegisterRequest) (*domain.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &domain.Profile{
		Username:           req.Username,
		Password:           string(hash),
		Name:               req.Name,
		Species:            req.Species,
		Age:                req.Age,
		Bio:                req.Bio,
		Avatar:             req.Avatar,
		SpeciesPreferences: req.SpeciesPreferences,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile returns a profile by id.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

// List returns all profiles in creation order.
func (uc *ProfileUseCase) List(ctx context.Context) ([]*domain.Profile, error) {
	return uc.profileRepo.List(ctx)
}
