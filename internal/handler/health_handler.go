package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jayantx07/Education-Point/internal/models"
	"github.com/Jayantx07/Education-Point/pkg/response"
)

type healthChecker interface {
	Check(ctx context.Context) models.HealthStatus
}

// HealthHandler exposes liveness endpoints.
type HealthHandler struct {
	checker healthChecker
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(checker healthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health godoc
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.checker.Check(c.Request.Context())
	code := http.StatusOK
	if !status.Database.Connected {
		code = http.StatusServiceUnavailable
	}
	response.JSON(c, code, status)
}

// Root answers the bare host with a plain text banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Education Point API is running...")
}
