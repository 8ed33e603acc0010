package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pawswipe/pawswipe-backend/internal/config"
	httpdelivery "github.com/pawswipe/pawswipe-backend/internal/delivery/http"
	"github.com/pawswipe/pawswipe-backend/internal/delivery/http/handler"
	"github.com/pawswipe/pawswipe-backend/internal/delivery/http/middleware"
	"github.com/pawswipe/pawswipe-backend/internal/infrastructure/database"
	"github.com/pawswipe/pawswipe-backend/internal/infrastructure/gemini"
	"github.com/pawswipe/pawswipe-backend/internal/infrastructure/server"
	"github.com/pawswipe/pawswipe-backend/internal/repository"
	"github.com/pawswipe/pawswipe-backend/internal/repository/memory"
	"github.com/pawswipe/pawswipe-backend/internal/repository/postgres"
	"github.com/pawswipe/pawswipe-backend/internal/repository/redisstore"
	"github.com/pawswipe/pawswipe-backend/internal/seed"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/auth"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/feed"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/match"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/profile"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/swipe"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
	Logger zerolog.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	var (
		profileRepo repository.ProfileRepository
		likeRepo    repository.LikeRepository
		matchRepo   repository.MatchRepository
		sessionRepo repository.SessionRepository
	)

	switch cfg.Storage.Backend {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		profileRepo = postgres.NewProfileRepository(db)
		likeRepo = postgres.NewLikeRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
	default:
		profileRepo = memory.NewProfileRepository()
		likeRepo = memory.NewLikeRepository()
		matchRepo = memory.NewMatchRepository()
	}

	switch cfg.Storage.SessionStore {
	case "redis":
		redisClient, err := database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		sessionRepo = redisstore.NewSessionRepository(redisClient)
	default:
		sessionRepo = memory.NewSessionRepository()
	}

	if cfg.Storage.SeedProfiles {
		if err := seed.Profiles(context.Background(), profileRepo); err != nil {
			return nil, fmt.Errorf("failed to seed profiles: %w", err)
		}
	}

	// Gemini is optional; the app runs without AI blurbs.
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialize gemini client, continuing without AI blurbs")
		} else {
			c.Gemini = geminiClient
		}
	}

	authUseCase := auth.NewAuthUseCase(
		profileRepo,
		sessionRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.SessionTTLHours)*time.Hour,
	)
	profileUseCase := profile.NewProfileUseCase(profileRepo)
	feedUseCase := feed.NewFeedUseCase(profileRepo, likeRepo)
	swipeUseCase := swipe.NewSwipeUseCase(profileRepo, likeRepo, matchRepo, c.Gemini, logger)
	matchUseCase := match.NewMatchUseCase(matchRepo, profileRepo)

	authHandler := handler.NewAuthHandler(authUseCase, profileUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase)
	likeHandler := handler.NewLikeHandler(swipeUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)

	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	router := httpdelivery.NewRouter(
		authHandler,
		profileHandler,
		feedHandler,
		likeHandler,
		matchHandler,
		authMiddleware,
	)

	c.Server = server.NewServer(&cfg.Server, router.Setup(), logger)
	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error().Err(err).Msg("error closing redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
