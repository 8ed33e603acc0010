package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawswipe/pawswipe-backend/internal/delivery/http/middleware"
	"github.com/pawswipe/pawswipe-backend/internal/domain"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/swipe"
)

type LikeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
}

func NewLikeHandler(swipeUseCase *swipe.SwipeUseCase) *LikeHandler {
	return &LikeHandler{swipeUseCase: swipeUseCase}
}

// LikeRequest represents a like submission
type LikeRequest struct {
	LikedID int `json:"liked_id" binding:"required"`
}

// SubmitLike handles POST /likes
func (h *LikeHandler) SubmitLike(c *gin.Context) {
	profileID := c.GetInt(middleware.ProfileIDKey)

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.swipeUseCase.SubmitLike(c.Request.Context(), profileID, req.LikedID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotLikeSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot like own profile"})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "liked profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to submit like"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
