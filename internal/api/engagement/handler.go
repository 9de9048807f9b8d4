package engagement

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"friendship-offers/internal/app/http/middleware"
	"friendship-offers/internal/notify"
)

type Notifier interface {
	ShowMore(ctx context.Context, e notify.ShowMore) error
}

type Handler struct {
	notifier Notifier
	policy   notify.Policy
	log      *zap.Logger
}

func NewHandler(n Notifier, policy notify.Policy, log *zap.Logger) *Handler {
	return &Handler{notifier: n, policy: policy, log: log}
}

// ShowMore records that a visitor expanded a tier card. The payload is
// not validated; missing names become placeholders in the email.
func (h *Handler) ShowMore(c *gin.Context) {
	var req ShowMoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("show-more body ignored",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
	}

	err := h.notifier.ShowMore(c.Request.Context(), notify.ShowMore{
		UserName: req.UserName,
		TierName: req.TierName,
	})
	if err != nil {
		h.log.Error("show-more email failed",
			zap.String("route", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("policy", h.policy.String()),
			zap.Error(err),
		)
		if h.policy == notify.DispatchStrict {
			c.JSON(http.StatusInternalServerError, Response{
				Success: false,
				Message: "Failed to track show more",
				Error:   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Message: "Tracked locally"})
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "Show more tracked successfully!"})
}
