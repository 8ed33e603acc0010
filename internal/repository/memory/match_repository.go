package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type matchRepository struct {
	mu      sync.RWMutex
	matches map[int]*domain.Match
	nextID  int
}

func NewMatchRepository() repository.MatchRepository {
	return &matchRepository{
		matches: make(map[int]*domain.Match),
		nextID:  1,
	}
}

func (r *matchRepository) Create(_ context.Context, match *domain.Match) error {
	match.User1ID, match.User2ID = domain.CanonicalPair(match.User1ID, match.User2ID)

	r.mu.Lock()
	defer r.mu.Unlock()

	match.ID = r.nextID
	r.nextID++
	match.CreatedAt = time.Now()

	stored := *match
	r.matches[stored.ID] = &stored
	return nil
}

func (r *matchRepository) GetByProfiles(_ context.Context, user1ID, user2ID int) (*domain.Match, error) {
	user1ID, user2ID = domain.CanonicalPair(user1ID, user2ID)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for id := 1; id < r.nextID; id++ {
		if m, ok := r.matches[id]; ok && m.User1ID == user1ID && m.User2ID == user2ID {
			copied := *m
			return &copied, nil
		}
	}
	return nil, domain.ErrMatchNotFound
}

func (r *matchRepository) GetProfileMatches(_ context.Context, profileID int) ([]*domain.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*domain.Match
	for id := 1; id < r.nextID; id++ {
		if m, ok := r.matches[id]; ok && m.HasProfile(profileID) {
			copied := *m
			matches = append(matches, &copied)
		}
	}
	return matches, nil
}
