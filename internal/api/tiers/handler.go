package tiers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"friendship-offers/internal/domain/tiers"
)

type Handler struct {
	catalog *tiers.Catalog
}

func NewHandler(c *tiers.Catalog) *Handler {
	return &Handler{catalog: c}
}

// List renders the tier cards for a session. The session is rebuilt
// from ?selected=7,3 (ids in selection order) on every call.
func (h *Handler) List(c *gin.Context) {
	ids, err := parseSelected(c.Query("selected"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	s := tiers.NewSession(h.catalog)
	for _, id := range ids {
		if err := s.Select(id); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
	}

	views := s.Tiers()
	unlocked := make([]int, 0, len(views))
	for _, v := range views {
		if !v.Disabled {
			unlocked = append(unlocked, v.ID)
		}
	}

	c.JSON(http.StatusOK, ListResponse{Tiers: views, Unlocked: unlocked, Selected: s.Selected()})
}

func parseSelected(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid tier id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
