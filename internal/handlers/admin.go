package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grievance-portal/grievance-api/internal/dto"
	"github.com/grievance-portal/grievance-api/internal/services"
)

// AdminHandler serves the admin dashboard routes
type AdminHandler struct {
	complaintService *services.ComplaintService
	dashboardService *services.DashboardService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(complaintService *services.ComplaintService, dashboardService *services.DashboardService) *AdminHandler {
	return &AdminHandler{
		complaintService: complaintService,
		dashboardService: dashboardService,
	}
}

// ListComplaints lists every complaint with its submitter
func (h *AdminHandler) ListComplaints(c *gin.Context) {
	complaints, err := h.complaintService.ListAllComplaints(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminComplaintDTOs(complaints))
}

// GetStats returns the dashboard cards
func (h *AdminHandler) GetStats(c *gin.Context) {
	counts, err := h.dashboardService.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardCards(counts.Total, counts.Pending, counts.InProgress, counts.Resolved))
}

// UpdateStatus changes the status of the complaint whose tracking identifier is :id
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	type UpdateStatusRequest struct {
		Status       string  `json:"status" binding:"required"`
		AdminComment *string `json:"admin_comment"`
	}

	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.complaintService.UpdateStatus(c.Request.Context(), services.UpdateStatusInput{
		ComplaintID:  c.Param("id"),
		Status:       req.Status,
		AdminComment: req.AdminComment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Complaint status updated successfully",
	})
}
