package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grievance-portal/grievance-api/internal/dto"
	"github.com/grievance-portal/grievance-api/internal/services"
)

// StatsHandler serves the public landing page statistics
type StatsHandler struct {
	dashboardService *services.DashboardService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(dashboardService *services.DashboardService) *StatsHandler {
	return &StatsHandler{dashboardService: dashboardService}
}

// GetPublicStats returns the landing page statistics
func (h *StatsHandler) GetPublicStats(c *gin.Context) {
	resolved, err := h.dashboardService.ResolvedCount(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicStats(resolved))
}
