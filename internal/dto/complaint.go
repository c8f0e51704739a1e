package dto

import (
	"time"

	"github.com/grievance-portal/grievance-api/internal/constants"
	"github.com/grievance-portal/grievance-api/internal/models"
)

// ComplaintDTO represents a complaint in API responses
type ComplaintDTO struct {
	ID           uint64                   `json:"id"`
	ComplaintID  string                   `json:"complaintId"`
	UserID       *uint64                  `json:"user_id"`
	Title        string                   `json:"title"`
	Category     string                   `json:"category"`
	Description  string                   `json:"description"`
	Priority     models.ComplaintPriority `json:"priority"`
	Status       models.ComplaintStatus   `json:"status"`
	AdminComment *string                  `json:"admin_comment"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// AdminComplaintDTO is a complaint with the name of whoever submitted it
type AdminComplaintDTO struct {
	ComplaintDTO
	SubmittedBy string `json:"submittedBy"`
}

// CreateComplaintResponse carries the tracking identifier of a new complaint
type CreateComplaintResponse struct {
	ComplaintID string `json:"complaintId"`
}

// ToComplaintDTO converts a complaint model to DTO
func ToComplaintDTO(complaint models.Complaint) ComplaintDTO {
	return ComplaintDTO{
		ID:           complaint.ID,
		ComplaintID:  complaint.ComplaintID,
		UserID:       complaint.UserID,
		Title:        complaint.Title,
		Category:     complaint.Category,
		Description:  complaint.Description,
		Priority:     complaint.Priority,
		Status:       complaint.Status,
		AdminComment: complaint.AdminComment,
		CreatedAt:    complaint.CreatedAt,
		UpdatedAt:    complaint.UpdatedAt,
	}
}

// ToComplaintDTOs converts a slice of complaints, never returning nil
func ToComplaintDTOs(complaints []models.Complaint) []ComplaintDTO {
	out := make([]ComplaintDTO, len(complaints))
	for i, complaint := range complaints {
		out[i] = ToComplaintDTO(complaint)
	}
	return out
}

// ToAdminComplaintDTOs converts complaints whose User has been preloaded
func ToAdminComplaintDTOs(complaints []models.Complaint) []AdminComplaintDTO {
	out := make([]AdminComplaintDTO, len(complaints))
	for i, complaint := range complaints {
		submittedBy := constants.AnonymousSubmitter
		if complaint.User != nil {
			submittedBy = complaint.User.Name
		}
		out[i] = AdminComplaintDTO{
			ComplaintDTO: ToComplaintDTO(complaint),
			SubmittedBy:  submittedBy,
		}
	}
	return out
}
