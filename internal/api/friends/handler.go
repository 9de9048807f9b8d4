package friends

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"friendship-offers/internal/domain/friends"
)

type Handler struct {
	matcher *friends.Matcher
}

func NewHandler(m *friends.Matcher) *Handler {
	return &Handler{matcher: m}
}

// Match runs the welcome-screen recognition for a typed name.
func (h *Handler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		return
	}

	m, ok := h.matcher.Match(req.Name)
	if !ok {
		c.JSON(http.StatusOK, MatchResponse{Matched: false})
		return
	}
	c.JSON(http.StatusOK, MatchResponse{Matched: true, Friend: &m})
}
