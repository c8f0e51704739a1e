package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/grievance-portal/grievance-api/internal/errors"
	"go.uber.org/zap"
)

// HealthHandler reports whether the service can reach its database
type HealthHandler struct {
	ping func(ctx context.Context) error
	log  *zap.SugaredLogger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(ping func(ctx context.Context) error, log *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

// Health answers 200 when the database responds and 503 otherwise
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		h.log.Errorw("health check failed", "error", err)
		apierrors.ServiceUnavailable(c, "Database unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
