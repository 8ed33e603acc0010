package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type likeRepository struct {
	mu     sync.RWMutex
	likes  map[int]*domain.Like
	nextID int
}

func NewLikeRepository() repository.LikeRepository {
	return &likeRepository{
		likes:  make(map[int]*domain.Like),
		nextID: 1,
	}
}

func (r *likeRepository) Create(_ context.Context, like *domain.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	like.ID = r.nextID
	r.nextID++
	like.CreatedAt = time.Now()

	stored := *like
	r.likes[stored.ID] = &stored
	return nil
}

func (r *likeRepository) GetByProfiles(_ context.Context, likerID, likedID int) (*domain.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// First match by insertion order.
	for id := 1; id < r.nextID; id++ {
		if like, ok := r.likes[id]; ok && like.LikerID == likerID && like.LikedID == likedID {
			copied := *like
			return &copied, nil
		}
	}
	return nil, domain.ErrLikeNotFound
}

func (r *likeRepository) ListByLiker(_ context.Context, likerID int) ([]*domain.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var likes []*domain.Like
	for id := 1; id < r.nextID; id++ {
		if like, ok := r.likes[id]; ok && like.LikerID == likerID {
			copied := *like
			likes = append(likes, &copied)
		}
	}
	return likes, nil
}
