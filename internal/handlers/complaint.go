package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/grievance-portal/grievance-api/internal/dto"
	apierrors "github.com/grievance-portal/grievance-api/internal/errors"
	"github.com/grievance-portal/grievance-api/internal/middleware"
	"github.com/grievance-portal/grievance-api/internal/services"
)

// ComplaintHandler serves the citizen-facing complaint routes.
type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

// NewComplaintHandler creates a new ComplaintHandler
func NewComplaintHandler(complaintService *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
	}
}

// CreateComplaint files a complaint, anonymously when no identity is attached
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	type CreateComplaintRequest struct {
		Title       string `json:"title" binding:"required,max=255"`
		Category    string `json:"category" binding:"required,max=100"`
		Description string `json:"description" binding:"required"`
		Priority    string `json:"priority" binding:"required"`
	}

	var req CreateComplaintRequest
	if err := bindJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	submitter, _ := middleware.GetIdentity(c)
	complaint, err := h.complaintService.CreateComplaint(c.Request.Context(), services.CreateComplaintInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Priority:    req.Priority,
		Submitter:   submitter,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateComplaintResponse{ComplaintID: complaint.ComplaintID})
}

// GetComplaint looks a complaint up by its tracking identifier
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaint, err := h.complaintService.GetComplaint(c.Request.Context(), c.Param("complaintId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToComplaintDTO(*complaint))
}

// ListUserComplaints lists the complaints a user has filed
func (h *ComplaintHandler) ListUserComplaints(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	requester, _ := middleware.GetIdentity(c)
	complaints, err := h.complaintService.ListUserComplaints(c.Request.Context(), requester, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToComplaintDTOs(complaints))
}
