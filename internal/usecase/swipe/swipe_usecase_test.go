package swipe

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
	"github.com/pawswipe/pawswipe-backend/internal/repository/memory"
)

type fixture struct {
	uc          *SwipeUseCase
	profileRepo repository.ProfileRepository
	matchRepo   repository.MatchRepository
}

func newFixture(t *testing.T, usernames ...string) (*fixture, []int) {
	t.Helper()

	profileRepo := memory.NewProfileRepository()
	likeRepo := memory.NewLikeRepository()
	matchRepo := memory.NewMatchRepository()

	ids := make([]int, 0, len(usernames))
	for _, name := range usernames {
		p := &domain.Profile{
			Username:           name,
			Name:               name,
			Species:            "Cat",
			Age:                2,
			Avatar:             "https://example.com/a.jpg",
			SpeciesPreferences: []string{"Cat"},
		}
		require.NoError(t, profileRepo.Create(context.Background(), p))
		ids = append(ids, p.ID)
	}

	uc := NewSwipeUseCase(profileRepo, likeRepo, matchRepo, nil, zerolog.Nop())
	return &fixture{uc: uc, profileRepo: profileRepo, matchRepo: matchRepo}, ids
}

func TestSubmitLike_NoPrematureMatch(t *testing.T) {
	f, ids := newFixture(t, "a", "b")
	a, b := ids[0], ids[1]

	result, err := f.uc.SubmitLike(context.Background(), a, b)
	require.NoError(t, err)

	assert.False(t, result.IsMatch)
	assert.Nil(t, result.Match)
	assert.Nil(t, result.MatchedProfile)
	require.NotNil(t, result.Like)
	assert.Equal(t, a, result.Like.LikerID)
	assert.Equal(t, b, result.Like.LikedID)
}

func TestSubmitLike_MutualLikeCreatesMatch(t *testing.T) {
	f, ids := newFixture(t, "a", "b")
	a, b := ids[0], ids[1]
	ctx := context.Background()

	_, err := f.uc.SubmitLike(ctx, a, b)
	require.NoError(t, err)

	result, err := f.uc.SubmitLike(ctx, b, a)
	require.NoError(t, err)

	assert.True(t, result.IsMatch)
	require.NotNil(t, result.Match)
	assert.Equal(t, min(a, b), result.Match.User1ID)
	assert.Equal(t, max(a, b), result.Match.User2ID)
	require.NotNil(t, result.MatchedProfile)
	assert.Equal(t, a, result.MatchedProfile.ID)
}

func TestSubmitLike_OrderIndependence(t *testing.T) {
	for name, first := range map[string]bool{"lower id first": true, "higher id first": false} {
		t.Run(name, func(t *testing.T) {
			f, ids := newFixture(t, "a", "b")
			a, b := ids[0], ids[1]
			ctx := context.Background()

			liker1, liked1 := a, b
			if !first {
				liker1, liked1 = b, a
			}

			_, err := f.uc.SubmitLike(ctx, liker1, liked1)
			require.NoError(t, err)
			result, err := f.uc.SubmitLike(ctx, liked1, liker1)
			require.NoError(t, err)

			require.True(t, result.IsMatch)
			assert.Equal(t, min(a, b), result.Match.User1ID)
			assert.Equal(t, max(a, b), result.Match.User2ID)

			matches, err := f.matchRepo.GetProfileMatches(ctx, a)
			require.NoError(t, err)
			assert.Len(t, matches, 1)
		})
	}
}

func TestSubmitLike_RepeatLikeIsIdempotent(t *testing.T) {
	f, ids := newFixture(t, "a", "b")
	a, b := ids[0], ids[1]
	ctx := context.Background()

	first, err := f.uc.SubmitLike(ctx, a, b)
	require.NoError(t, err)

	second, err := f.uc.SubmitLike(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, first.Like.ID, second.Like.ID)
	assert.False(t, second.IsMatch)
}

func TestSubmitLike_RepeatAfterMatchReportsSameMatch(t *testing.T) {
	f, ids := newFixture(t, "a", "b")
	a, b := ids[0], ids[1]
	ctx := context.Background()

	_, err := f.uc.SubmitLike(ctx, a, b)
	require.NoError(t, err)
	matched, err := f.uc.SubmitLike(ctx, b, a)
	require.NoError(t, err)

	again, err := f.uc.SubmitLike(ctx, a, b)
	require.NoError(t, err)
	require.True(t, again.IsMatch)
	assert.Equal(t, matched.Match.ID, again.Match.ID)

	matches, err := f.matchRepo.GetProfileMatches(ctx, a)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSubmitLike_SelfLikeRejected(t *testing.T) {
	f, ids := newFixture(t, "a")

	_, err := f.uc.SubmitLike(context.Background(), ids[0], ids[0])
	assert.ErrorIs(t, err, domain.ErrCannotLikeSelf)
}

func TestSubmitLike_UnknownTargetRejected(t *testing.T) {
	f, ids := newFixture(t, "a")

	_, err := f.uc.SubmitLike(context.Background(), ids[0], 999)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestSubmitLike_ConcurrentReciprocalLikesCreateOneMatch(t *testing.T) {
	f, ids := newFixture(t, "a", "b")
	a, b := ids[0], ids[1]
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		liker, liked := a, b
		if i == 1 {
			liker, liked = b, a
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.SubmitLike(ctx, liker, liked)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	matches, err := f.matchRepo.GetProfileMatches(ctx, a)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
