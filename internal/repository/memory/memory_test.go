package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
)

func newProfile(username, species string, prefs ...string) *domain.Profile {
	return &domain.Profile{
		Username:           username,
		Password:           "hash",
		Name:               username,
		Species:            species,
		Age:                3,
		Avatar:             "https://example.com/avatar.jpg",
		SpeciesPreferences: prefs,
	}
}

func TestProfileRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	prev := 0
	for _, name := range []string{"a", "b", "c", "d"} {
		p := newProfile(name, "Cat")
		require.NoError(t, repo.Create(ctx, p))
		assert.Greater(t, p.ID, prev)
		assert.False(t, p.CreatedAt.IsZero())
		prev = p.ID
	}
}

func TestProfileRepository_UsernameUnique(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newProfile("fluffy", "Cat")))
	err := repo.Create(ctx, newProfile("fluffy", "Dog"))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// The failed insert must not burn the username lookup.
	found, err := repo.GetByUsername(ctx, "fluffy")
	require.NoError(t, err)
	assert.Equal(t, "Cat", found.Species)
}

func TestProfileRepository_GetByUsernameNotFound(t *testing.T) {
	repo := NewProfileRepository()

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileRepository_ListCreationOrder(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	names := []string{"one", "two", "three"}
	for _, n := range names {
		require.NoError(t, repo.Create(ctx, newProfile(n, "Dog")))
	}

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	for i, p := range profiles {
		assert.Equal(t, names[i], p.Username)
		assert.Equal(t, i+1, p.ID)
	}
}

func TestProfileRepository_ReturnsCopies(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	p := newProfile("fluffy", "Cat")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "fluffy", again.Name)
}

func TestLikeRepository_OrderedPairLookup(t *testing.T) {
	repo := NewLikeRepository()
	ctx := context.Background()

	like := &domain.Like{LikerID: 1, LikedID: 2}
	require.NoError(t, repo.Create(ctx, like))
	assert.Equal(t, 1, like.ID)

	found, err := repo.GetByProfiles(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, like.ID, found.ID)

	// The reverse direction is a different edge.
	_, err = repo.GetByProfiles(ctx, 2, 1)
	assert.ErrorIs(t, err, domain.ErrLikeNotFound)
}

func TestLikeRepository_ListByLiker(t *testing.T) {
	repo := NewLikeRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Like{LikerID: 1, LikedID: 2}))
	require.NoError(t, repo.Create(ctx, &domain.Like{LikerID: 2, LikedID: 1}))
	require.NoError(t, repo.Create(ctx, &domain.Like{LikerID: 1, LikedID: 3}))

	likes, err := repo.ListByLiker(ctx, 1)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, 2, likes[0].LikedID)
	assert.Equal(t, 3, likes[1].LikedID)
}

func TestMatchRepository_CanonicalOrdering(t *testing.T) {
	repo := NewMatchRepository()
	ctx := context.Background()

	match := &domain.Match{User1ID: 7, User2ID: 3}
	require.NoError(t, repo.Create(ctx, match))
	assert.Equal(t, 3, match.User1ID)
	assert.Equal(t, 7, match.User2ID)

	// Lookup succeeds regardless of argument order.
	found, err := repo.GetByProfiles(ctx, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, match.ID, found.ID)

	found, err = repo.GetByProfiles(ctx, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, match.ID, found.ID)
}

func TestMatchRepository_GetProfileMatchesCreationOrder(t *testing.T) {
	repo := NewMatchRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Match{User1ID: 1, User2ID: 2}))
	require.NoError(t, repo.Create(ctx, &domain.Match{User1ID: 3, User2ID: 4}))
	require.NoError(t, repo.Create(ctx, &domain.Match{User1ID: 1, User2ID: 5}))

	matches, err := repo.GetProfileMatches(ctx, 1)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 2, matches[0].User2ID)
	assert.Equal(t, 5, matches[1].User2ID)
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	session := &domain.Session{ID: "s1", ProfileID: 1, Token: "hashed"}
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.GetByToken(ctx, "hashed")
	require.NoError(t, err)
	assert.Equal(t, 1, found.ProfileID)

	require.NoError(t, repo.DeleteByToken(ctx, "hashed"))
	_, err = repo.GetByToken(ctx, "hashed")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
