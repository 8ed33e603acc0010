package http

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pawswipe/pawswipe-backend/internal/delivery/http/handler"
	"github.com/pawswipe/pawswipe-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	feedHandler    *handler.FeedHandler
	likeHandler    *handler.LikeHandler
	matchHandler   *handler.MatchHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	feedHandler *handler.FeedHandler,
	likeHandler *handler.LikeHandler,
	matchHandler *handler.MatchHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		feedHandler:    feedHandler,
		likeHandler:    likeHandler,
		matchHandler:   matchHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Registration is public, everything else requires a session.
		v1.POST("/profiles", r.profileHandler.Register)

		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			protected.GET("/profiles/:id", r.profileHandler.GetProfile)
			protected.GET("/feed/candidates", r.feedHandler.GetCandidates)
			protected.POST("/likes", r.likeHandler.SubmitLike)
			protected.GET("/matches", r.matchHandler.ListMatches)
		}
	}

	return router
}

// registerValidations adds the "species" binding rule: a non-empty name made
// of letters, spaces and hyphens.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("species", func(fl validator.FieldLevel) bool {
		name := strings.TrimSpace(fl.Field().String())
		if name == "" {
			return false
		}
		for _, r := range name {
			if !unicode.IsLetter(r) && r != ' ' && r != '-' {
				return false
			}
		}
		return true
	})
}
