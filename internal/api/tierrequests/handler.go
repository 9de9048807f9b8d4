package tierrequests

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"friendship-offers/internal/app/http/middleware"
	"friendship-offers/internal/domain/tiers"
	"friendship-offers/internal/notify"
)

type Notifier interface {
	TierRequest(ctx context.Context, r notify.TierRequest) error
}

type TierLookup interface {
	FindByName(name string) (tiers.Tier, bool)
}

type Handler struct {
	notifier Notifier
	catalog  TierLookup
	policy   notify.Policy
	log      *zap.Logger
}

func NewHandler(n Notifier, catalog TierLookup, policy notify.Policy, log *zap.Logger) *Handler {
	return &Handler{notifier: n, catalog: catalog, policy: policy, log: log}
}

// Submit emails the owner a tier request. Nothing is stored.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Tier = strings.TrimSpace(req.Tier)
	if req.Name == "" || req.Tier == "" {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Name and tier are required"})
		return
	}

	// Unknown tier names are passed on as typed.
	if strings.TrimSpace(req.Price) == "" && h.catalog != nil {
		if t, ok := h.catalog.FindByName(req.Tier); ok {
			req.Price = t.Price
		}
	}

	err := h.notifier.TierRequest(c.Request.Context(), notify.TierRequest{
		Name:    req.Name,
		Message: strings.TrimSpace(req.Message),
		Mobile:  strings.TrimSpace(req.Mobile),
		Tier:    req.Tier,
		Price:   req.Price,
	})
	if err != nil {
		h.log.Error("tier request email failed",
			zap.String("route", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("policy", h.policy.String()),
			zap.Error(err),
		)
		if h.policy == notify.DispatchStrict {
			c.JSON(http.StatusInternalServerError, Response{
				Success: false,
				Message: "Failed to submit tier request. Please try again.",
				Error:   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Message: "Tracked locally"})
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "Tier request submitted successfully!"})
}
