package match

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
	"github.com/pawswipe/pawswipe-backend/internal/repository/memory"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/swipe"
)

func createProfile(t *testing.T, repo repository.ProfileRepository, username, species string, prefs ...string) *domain.Profile {
	t.Helper()
	p := &domain.Profile{
		Username:           username,
		Name:               username,
		Species:            species,
		Age:                2,
		Avatar:             "https://example.com/a.jpg",
		SpeciesPreferences: prefs,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestListMatches_JoinsCounterpart(t *testing.T) {
	profileRepo := memory.NewProfileRepository()
	likeRepo := memory.NewLikeRepository()
	matchRepo := memory.NewMatchRepository()
	swipeUC := swipe.NewSwipeUseCase(profileRepo, likeRepo, matchRepo, nil, zerolog.Nop())
	uc := NewMatchUseCase(matchRepo, profileRepo)
	ctx := context.Background()

	a := createProfile(t, profileRepo, "a", "Cat", "Dog")
	b := createProfile(t, profileRepo, "b", "Dog", "Cat")

	_, err := swipeUC.SubmitLike(ctx, a.ID, b.ID)
	require.NoError(t, err)
	_, err = swipeUC.SubmitLike(ctx, b.ID, a.ID)
	require.NoError(t, err)

	forA, err := uc.ListMatches(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, forA, 1)
	assert.Equal(t, b.ID, forA[0].MatchedProfile.ID)
	assert.Equal(t, b.Username, forA[0].MatchedProfile.Username)
	assert.Equal(t, b.SpeciesPreferences, forA[0].MatchedProfile.SpeciesPreferences)

	// The same match seen from the other side resolves to A.
	forB, err := uc.ListMatches(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, forB, 1)
	assert.Equal(t, forA[0].Match.ID, forB[0].Match.ID)
	assert.Equal(t, a.ID, forB[0].MatchedProfile.ID)
}

func TestListMatches_EmptyForUnmatchedProfile(t *testing.T) {
	profileRepo := memory.NewProfileRepository()
	matchRepo := memory.NewMatchRepository()
	uc := NewMatchUseCase(matchRepo, profileRepo)

	a := createProfile(t, profileRepo, "a", "Cat", "Dog")

	matches, err := uc.ListMatches(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestListMatches_MissingCounterpartFails(t *testing.T) {
	profileRepo := memory.NewProfileRepository()
	matchRepo := memory.NewMatchRepository()
	uc := NewMatchUseCase(matchRepo, profileRepo)
	ctx := context.Background()

	a := createProfile(t, profileRepo, "a", "Cat", "Dog")

	// A match referencing a counterpart that was never stored.
	require.NoError(t, matchRepo.Create(ctx, &domain.Match{User1ID: a.ID, User2ID: 99}))

	_, err := uc.ListMatches(ctx, a.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
