package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawswipe/pawswipe-backend/internal/delivery/http/middleware"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/feed"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{feedUseCase: feedUseCase}
}

// GetCandidates handles GET /feed/candidates. An empty array means the swipe
// queue is exhausted.
func (h *FeedHandler) GetCandidates(c *gin.Context) {
	profileID := c.GetInt(middleware.ProfileIDKey)

	candidates, err := h.feedUseCase.GetCandidates(c.Request.Context(), profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get candidates"})
		return
	}

	c.JSON(http.StatusOK, candidates)
}
