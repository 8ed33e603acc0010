package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type FeedUseCase struct {
	profileRepo repository.ProfileRepository
	likeRepo    repository.LikeRepository
}

func NewFeedUseCase(
	profileRepo repository.ProfileRepository,
	likeRepo repository.LikeRepository,
) *FeedUseCase {
	return &FeedUseCase{
		profileRepo: profileRepo,
		likeRepo:    likeRepo,
	}
}

// GetCandidates returns the profiles eligible to be shown to profileID, in
// creation order. A candidate qualifies when it is not the requester, its own
// species preferences include the requester's species, and the requester has
// not already liked it. Compatibility is judged from the candidate's stated
// preferences only; the requester's preference list plays no role here.
func (uc *FeedUseCase) GetCandidates(ctx context.Context, profileID int) ([]*domain.Profile, error) {
	current, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return []*domain.Profile{}, nil
		}
		return nil, fmt.Errorf("failed to get requesting profile: %w", err)
	}

	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	liked, err := uc.likeRepo.ListByLiker(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	likedIDs := make(map[int]struct{}, len(liked))
	for _, like := range liked {
		likedIDs[like.LikedID] = struct{}{}
	}

	candidates := []*domain.Profile{}
	for _, candidate := range profiles {
		if candidate.ID == profileID {
			continue
		}
		if !candidate.WantsSpecies(current.Species) {
			continue
		}
		if _, ok := likedIDs[candidate.ID]; ok {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}
