package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pawswipe/pawswipe-backend/internal/delivery/http/middleware"
	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/auth"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/profile"
)

type AuthHandler struct {
	authUseCase    *auth.AuthUseCase
	profileUseCase *profile.ProfileUseCase
}

func NewAuthHandler(authUseCase *auth.AuthUseCase, profileUseCase *profile.ProfileUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase:    authUseCase,
		profileUseCase: profileUseCase,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "authentication failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if after, found := strings.CutPrefix(token, "Bearer "); found {
		token = after
	}

	if err := h.authUseCase.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "logout failed"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "logged out successfully"})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	profileID := c.GetInt(middleware.ProfileIDKey)

	p, err := h.profileUseCase.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, p)
}
