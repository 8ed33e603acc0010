package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository
	jwtSecret   string
	sessionTTL  time.Duration
}

func NewAuthUseCase(
	profileRepo repository.ProfileRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	sessionTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		sessionTTL:  sessionTTL,
	}
}

// LoginResult represents a successful authentication
type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   *domain.Profile `json:"profile"`
}

// Login authenticates a profile by username and password and issues a session
// token. Unknown usernames and wrong passwords both map to
// ErrInvalidCredentials so callers cannot probe for usernames.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	profile, err := uc.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.createSession(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   profile,
	}, nil
}

// createSession issues a signed JWT and persists its hashed form.
func (uc *AuthUseCase) createSession(ctx context.Context, profileID int) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.sessionTTL)
	sessionID := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"profile_id": profileID,
		"jti":        sessionID,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	session := &domain.Session{
		ID:        sessionID,
		ProfileID: profileID,
		Token:     hashToken(tokenString),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// VerifyToken verifies a JWT and its backing session, returning the profile id.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	profileID, ok := claims["profile_id"].(float64)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	session, err := uc.sessionRepo.GetByToken(ctx, hashToken(tokenString))
	if err != nil {
		return 0, domain.ErrSessionNotFound
	}
	if session.IsExpired() {
		return 0, domain.ErrSessionExpired
	}

	return int(profileID), nil
}

// Logout invalidates the session behind the token.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenString string) error {
	return uc.sessionRepo.DeleteByToken(ctx, hashToken(tokenString))
}

// hashToken stores a SHA256 fingerprint instead of the raw token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
