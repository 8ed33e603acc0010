package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

// profileRepository keeps profiles in a process-wide map. The mutex covers the
// id counter and the map write together, so no reader ever observes a profile
// with an assigned id before it is stored.
type profileRepository struct {
	mu       sync.RWMutex
	profiles map[int]*domain.Profile
	nextID   int
}

func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{
		profiles: make(map[int]*domain.Profile),
		nextID:   1,
	}
}

func (r *profileRepository) Create(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.Username == profile.Username {
			return domain.ErrUsernameTaken
		}
	}

	profile.ID = r.nextID
	r.nextID++
	profile.CreatedAt = time.Now()

	stored := *profile
	r.profiles[stored.ID] = &stored
	return nil
}

func (r *profileRepository) GetByID(_ context.Context, id int) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *profileRepository) GetByUsername(_ context.Context, username string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Linear scan in id order; first match wins.
	for id := 1; id < r.nextID; id++ {
		if profile, ok := r.profiles[id]; ok && profile.Username == username {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *profileRepository) List(_ context.Context) ([]*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*domain.Profile, 0, len(r.profiles))
	for id := 1; id < r.nextID; id++ {
		if profile, ok := r.profiles[id]; ok {
			copied := *profile
			profiles = append(profiles, &copied)
		}
	}
	return profiles, nil
}
