package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: profileUseCase}
}

// Register handles POST /profiles
func (h *ProfileHandler) Register(c *gin.Context) {
	var req profile.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.profileUseCase.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetProfile handles GET /profiles/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
		return
	}

	p, err := h.profileUseCase.GetProfile(c.Request.Context(), id)
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
