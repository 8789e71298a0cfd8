package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/action"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/server/http/dto"
)

// HealthHandler serves liveness and introspection endpoints.
type HealthHandler struct {
	registry *action.Registry
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(registry *action.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Status handles GET /health.
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Actions handles GET /actions.
func (h *HealthHandler) Actions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ActionListResponse{Actions: h.registry.Names()})
}
