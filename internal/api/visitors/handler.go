package visitors

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"friendship-offers/internal/app/http/middleware"
	"friendship-offers/internal/domain/friends"
	"friendship-offers/internal/notify"
)

type Notifier interface {
	Visitor(ctx context.Context, v notify.Visitor) error
}

type FriendMatcher interface {
	Match(name string) (friends.Match, bool)
}

type Handler struct {
	notifier Notifier
	matcher  FriendMatcher
	policy   notify.Policy
	log      *zap.Logger
	now      func() time.Time
}

func NewHandler(n Notifier, m FriendMatcher, policy notify.Policy, log *zap.Logger) *Handler {
	return &Handler{notifier: n, matcher: m, policy: policy, log: log, now: time.Now}
}

// Notify tells the owner someone entered the site, and who they are if
// the name matches a known friend.
func (h *Handler) Notify(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Name is required"})
		return
	}

	event := notify.Visitor{Name: req.Name, VisitedAt: h.visitTime(req.Timestamp)}
	if h.matcher != nil {
		if m, ok := h.matcher.Match(req.Name); ok {
			event.Friend = &m
		}
	}

	if err := h.notifier.Visitor(c.Request.Context(), event); err != nil {
		h.log.Error("visitor email failed",
			zap.String("route", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("policy", h.policy.String()),
			zap.Error(err),
		)
		if h.policy == notify.DispatchStrict {
			c.JSON(http.StatusInternalServerError, Response{
				Success: false,
				Message: "Failed to send notification",
				Error:   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Message: "Tracked locally"})
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "Visitor notification sent successfully"})
}

// visitTime falls back to the server clock for a missing or unparsable
// client timestamp.
func (h *Handler) visitTime(ts string) time.Time {
	if ts = strings.TrimSpace(ts); ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			return t
		}
	}
	return h.now()
}
