// Package redisstore backs the session repository with Redis so sessions
// survive restarts and expire via TTL instead of manual pruning.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(hashedToken string) string {
	return "session:" + hashedToken
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return domain.ErrSessionExpired
	}

	if err := r.client.Set(ctx, sessionKey(session.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *sessionRepository) GetByToken(ctx context.Context, hashedToken string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, sessionKey(hashedToken)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	// Token is not serialized; the key carries it.
	session.Token = hashedToken
	return &session, nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, hashedToken string) error {
	if err := r.client.Del(ctx, sessionKey(hashedToken)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
