package match

import (
	"context"
	"fmt"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type MatchUseCase struct {
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
}

func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
	}
}

// MatchWithProfile pairs a match with the counterpart's full profile
type MatchWithProfile struct {
	Match          *domain.Match   `json:"match"`
	MatchedProfile *domain.Profile `json:"matched_profile"`
}

// ListMatches returns the profile's matches in creation order, each joined
// with the counterpart profile. A counterpart that no longer resolves is a
// data-integrity violation and the error propagates.
func (uc *MatchUseCase) ListMatches(ctx context.Context, profileID int) ([]*MatchWithProfile, error) {
	matches, err := uc.matchRepo.GetProfileMatches(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	result := make([]*MatchWithProfile, 0, len(matches))
	for _, m := range matches {
		otherID, ok := m.OtherProfileID(profileID)
		if !ok {
			return nil, fmt.Errorf("match %d does not include profile %d", m.ID, profileID)
		}

		counterpart, err := uc.profileRepo.GetByID(ctx, otherID)
		if err != nil {
			return nil, fmt.Errorf("match %d references missing profile %d: %w", m.ID, otherID, err)
		}

		result = append(result, &MatchWithProfile{
			Match:          m,
			MatchedProfile: counterpart,
		})
	}

	return result, nil
}
