package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/action"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/server/http/dto"
)

// WebhookHandler runs custom actions on behalf of the conversation engine.
type WebhookHandler struct {
	registry *action.Registry
	timeout  time.Duration
	logger   *slog.Logger
}

// NewWebhookHandler creates WebhookHandler instance.
func NewWebhookHandler(registry *action.Registry, timeout time.Duration, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{registry: registry, timeout: timeout, logger: logger}
}

// Run handles POST /webhook.
func (h *WebhookHandler) Run(c *gin.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.WebhookError{Error: "malformed request body"})
		return
	}
	if req.NextAction == "" {
		c.JSON(http.StatusBadRequest, dto.WebhookError{Error: "next_action is required"})
		return
	}

	act, ok := h.registry.Lookup(req.NextAction)
	if !ok {
		c.JSON(http.StatusNotFound, dto.WebhookError{
			Error:      fmt.Sprintf("No registered action found for name '%s'.", req.NextAction),
			ActionName: req.NextAction,
		})
		return
	}

	// Trackers from older engine versions carry the sender only at the
	// top level.
	if req.Tracker.SenderID == "" {
		req.Tracker.SenderID = req.SenderID
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	var dispatcher rasa.Dispatcher
	events := act.Run(ctx, &req.Tracker, &dispatcher)
	if events == nil {
		events = []rasa.Event{}
	}
	responses := dispatcher.Responses()

	h.logger.Info("action completed",
		slog.String("action", req.NextAction),
		slog.String("sender", req.Tracker.SenderID),
		slog.Int("events", len(events)),
		slog.Int("responses", len(responses)),
	)

	c.JSON(http.StatusOK, dto.WebhookResponse{Events: events, Responses: responses})
}
