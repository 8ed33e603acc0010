package swipe

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/infrastructure/gemini"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
)

type SwipeUseCase struct {
	profileRepo  repository.ProfileRepository
	likeRepo     repository.LikeRepository
	matchRepo    repository.MatchRepository
	geminiClient *gemini.Client
	logger       zerolog.Logger

	// pairMu serializes like-and-resolve per canonical profile pair so two
	// reciprocal likes submitted concurrently create exactly one match.
	mu     sync.Mutex
	pairMu map[[2]int]*sync.Mutex
}

func NewSwipeUseCase(
	profileRepo repository.ProfileRepository,
	likeRepo repository.LikeRepository,
	matchRepo repository.MatchRepository,
	geminiClient *gemini.Client,
	logger zerolog.Logger,
) *SwipeUseCase {
	return &SwipeUseCase{
		profileRepo:  profileRepo,
		likeRepo:     likeRepo,
		matchRepo:    matchRepo,
		geminiClient: geminiClient,
		logger:       logger,
		pairMu:       make(map[[2]int]*sync.Mutex),
	}
}

// LikeResult represents the outcome of a like submission
type LikeResult struct {
	Like           *domain.Like    `json:"like"`
	IsMatch        bool            `json:"is_match"`
	Match          *domain.Match   `json:"match,omitempty"`
	MatchedProfile *domain.Profile `json:"matched_profile,omitempty"`
	MatchBlurb     string          `json:"match_blurb,omitempty"`
}

// SubmitLike records a like from likerID to likedID and resolves the match
// state. Repeat likes for the same ordered pair are idempotent: the existing
// like is returned and the match state re-reported, nothing is appended.
func (uc *SwipeUseCase) SubmitLike(ctx context.Context, likerID, likedID int) (*LikeResult, error) {
	if likerID == likedID {
		return nil, domain.ErrCannotLikeSelf
	}

	if _, err := uc.profileRepo.GetByID(ctx, likedID); err != nil {
		return nil, err
	}

	unlock := uc.lockPair(likerID, likedID)
	defer unlock()

	like, err := uc.likeRepo.GetByProfiles(ctx, likerID, likedID)
	switch {
	case err == nil:
		// Already liked; fall through to re-report the match state.
	case errors.Is(err, domain.ErrLikeNotFound):
		like = &domain.Like{LikerID: likerID, LikedID: likedID}
		if err := uc.likeRepo.Create(ctx, like); err != nil {
			return nil, fmt.Errorf("failed to record like: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to check existing like: %w", err)
	}

	result := &LikeResult{Like: like}

	// A match exists only if the reverse edge does.
	if _, err := uc.likeRepo.GetByProfiles(ctx, likedID, likerID); err != nil {
		if errors.Is(err, domain.ErrLikeNotFound) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to check reciprocal like: %w", err)
	}

	match, err := uc.resolveMatch(ctx, likerID, likedID)
	if err != nil {
		return nil, err
	}

	matched, err := uc.profileRepo.GetByID(ctx, likedID)
	if err != nil {
		return nil, fmt.Errorf("failed to load matched profile: %w", err)
	}

	result.IsMatch = true
	result.Match = match
	result.MatchedProfile = matched

	if uc.geminiClient != nil {
		liker, err := uc.profileRepo.GetByID(ctx, likerID)
		if err == nil {
			if blurb, err := uc.geminiClient.GenerateMatchBlurb(ctx, liker, matched); err == nil {
				result.MatchBlurb = blurb
			} else {
				uc.logger.Warn().Err(err).Int("match_id", match.ID).Msg("match blurb generation failed")
			}
		}
	}

	uc.logger.Info().
		Int("match_id", match.ID).
		Int("liker_id", likerID).
		Int("liked_id", likedID).
		Msg("mutual like resolved to match")

	return result, nil
}

// resolveMatch returns the existing match for the pair or creates it. Runs
// under the pair lock.
func (uc *SwipeUseCase) resolveMatch(ctx context.Context, user1ID, user2ID int) (*domain.Match, error) {
	existing, err := uc.matchRepo.GetByProfiles(ctx, user1ID, user2ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to check existing match: %w", err)
	}

	match := &domain.Match{User1ID: user1ID, User2ID: user2ID}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

func (uc *SwipeUseCase) lockPair(a, b int) func() {
	key := [2]int{}
	key[0], key[1] = domain.CanonicalPair(a, b)

	uc.mu.Lock()
	pairLock, ok := uc.pairMu[key]
	if !ok {
		pairLock = &sync.Mutex{}
		uc.pairMu[key] = pairLock
	}
	uc.mu.Unlock()

	pairLock.Lock()
	return pairLock.Unlock
}
