package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
	"github.com/pawswipe/pawswipe-backend/internal/repository/memory"
)

const testSecret = "test-secret-test-secret-test-secret!"

func newAuthFixture(t *testing.T, ttl time.Duration) (*AuthUseCase, repository.ProfileRepository) {
	t.Helper()

	profileRepo := memory.NewProfileRepository()
	sessionRepo := memory.NewSessionRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	p := &domain.Profile{
		Username:           "fluffy",
		Password:           string(hash),
		Name:               "Fluffy",
		Species:            "Cat",
		Age:                2,
		Avatar:             "https://example.com/a.jpg",
		SpeciesPreferences: []string{"Dog"},
	}
	require.NoError(t, profileRepo.Create(context.Background(), p))

	return NewAuthUseCase(profileRepo, sessionRepo, testSecret, ttl), profileRepo
}

func TestLogin_Success(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	result, err := uc.Login(context.Background(), "fluffy", "password")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.True(t, result.ExpiresAt.After(time.Now()))
	require.NotNil(t, result.Profile)
	assert.Equal(t, "fluffy", result.Profile.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	_, err := uc.Login(context.Background(), "fluffy", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	_, err := uc.Login(context.Background(), "ghost", "password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	result, err := uc.Login(ctx, "fluffy", "password")
	require.NoError(t, err)

	profileID, err := uc.VerifyToken(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Profile.ID, profileID)
}

func TestVerifyToken_Garbage(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	_, err := uc.VerifyToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyToken_ExpiredToken(t *testing.T) {
	uc, _ := newAuthFixture(t, -time.Hour)
	ctx := context.Background()

	result, err := uc.Login(ctx, "fluffy", "password")
	require.NoError(t, err)

	_, err = uc.VerifyToken(ctx, result.Token)
	assert.Error(t, err)
}

func TestLogout_InvalidatesSession(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	result, err := uc.Login(ctx, "fluffy", "password")
	require.NoError(t, err)
	require.NoError(t, uc.Logout(ctx, result.Token))

	_, err = uc.VerifyToken(ctx, result.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
