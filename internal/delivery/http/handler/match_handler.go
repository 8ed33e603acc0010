package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawswipe/pawswipe-backend/internal/delivery/http/middleware"
	"github.com/pawswipe/pawswipe-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// ListMatches handles GET /matches
func (h *MatchHandler) ListMatches(c *gin.Context) {
	profileID := c.GetInt(middleware.ProfileIDKey)

	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}
