package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grievance-portal/grievance-api/internal/auth"
	"github.com/grievance-portal/grievance-api/internal/models"
	"github.com/grievance-portal/grievance-api/internal/repository"
	"github.com/grievance-portal/grievance-api/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired       = validationError("title is required")
	ErrCategoryRequired    = validationError("category is required")
	ErrDescriptionRequired = validationError("description is required")
	ErrPriorityRequired    = validationError("priority is required")
	ErrInvalidPriority     = validationError("priority must be one of low, medium, high, urgent")
	ErrStatusRequired      = validationError("status is required")
	ErrInvalidStatus       = validationError("status must be one of pending, in-progress, resolved, escalated")
	ErrComplaintNotFound   = fmt.Errorf("%w: complaint not found", ErrNotFound)
	ErrComplaintsForbidden = fmt.Errorf("%w: you may only view your own complaints", ErrForbidden)
	ErrNotAuthenticated    = fmt.Errorf("%w: authorization token missing", ErrUnauthenticated)
)

// maxComplaintIDAttempts bounds retries when a generated identifier collides
// with an existing row.
const maxComplaintIDAttempts = 3

// ComplaintService handles complaint business logic
type ComplaintService struct {
	complaintRepo repository.ComplaintRepository
	log           *zap.SugaredLogger
	newID         func() (string, error)
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(complaintRepo repository.ComplaintRepository, log *zap.SugaredLogger) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		log:           log,
		newID:         utils.GenerateComplaintID,
	}
}

// CreateComplaintInput represents input for creating a complaint
type CreateComplaintInput struct {
	Title       string
	Category    string
	Description string
	Priority    string
	// Submitter is nil for anonymous submissions.
	Submitter *auth.Identity
}

// UpdateStatusInput represents input for an admin status change
type UpdateStatusInput struct {
	ComplaintID  string
	Status       string
	AdminComment *string
}

// CreateComplaint validates and stores a complaint and returns its public identifier
func (s *ComplaintService) CreateComplaint(ctx context.Context, input CreateComplaintInput) (*models.Complaint, error) {
	complaint, err := buildComplaint(input)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		id, err := s.newID()
		if err != nil {
			s.log.Errorw("failed to generate complaint id", "error", err)
			return nil, ErrInternal
		}
		complaint.ComplaintID = id

		err = s.complaintRepo.Create(ctx, complaint)
		if err == nil {
			return complaint, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < maxComplaintIDAttempts {
			s.log.Warnw("complaint id collision, regenerating", "complaint_id", id, "attempt", attempt)
			continue
		}
		s.log.Errorw("failed to create complaint", "error", err)
		return nil, ErrInternal
	}
}

func buildComplaint(input CreateComplaintInput) (*models.Complaint, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, ErrCategoryRequired
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if strings.TrimSpace(input.Priority) == "" {
		return nil, ErrPriorityRequired
	}
	priority, ok := models.ParseComplaintPriority(input.Priority)
	if !ok {
		return nil, ErrInvalidPriority
	}

	complaint := &models.Complaint{
		Title:       title,
		Category:    category,
		Description: description,
		Priority:    priority,
		Status:      models.ComplaintStatusPending,
	}
	if input.Submitter != nil {
		userID := input.Submitter.UserID
		complaint.UserID = &userID
	}
	return complaint, nil
}

// GetComplaint returns a complaint by its public identifier. It is
// deliberately unauthenticated: the identifier is the tracking credential.
func (s *ComplaintService) GetComplaint(ctx context.Context, complaintID string) (*models.Complaint, error) {
	complaintID = strings.TrimSpace(complaintID)
	if complaintID == "" {
		return nil, ErrComplaintNotFound
	}

	complaint, err := s.complaintRepo.FindByComplaintID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		s.log.Errorw("failed to find complaint", "error", err, "complaint_id", complaintID)
		return nil, ErrInternal
	}
	return complaint, nil
}

// ListUserComplaints returns the complaints of userID. The requester must be
// that user or an admin.
func (s *ComplaintService) ListUserComplaints(ctx context.Context, requester *auth.Identity, userID uint64) ([]models.Complaint, error) {
	if requester == nil {
		return nil, ErrNotAuthenticated
	}
	if requester.UserID != userID && !requester.IsAdmin() {
		return nil, ErrComplaintsForbidden
	}

	complaints, err := s.complaintRepo.ListByUserID(ctx, userID)
	if err != nil {
		s.log.Errorw("failed to list user complaints", "error", err, "user_id", userID)
		return nil, ErrInternal
	}
	return complaints, nil
}

// ListAllComplaints returns every complaint with its submitter loaded
func (s *ComplaintService) ListAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	complaints, err := s.complaintRepo.ListAll(ctx)
	if err != nil {
		s.log.Errorw("failed to list complaints", "error", err)
		return nil, ErrInternal
	}
	return complaints, nil
}

// UpdateStatus sets the status and admin comment of a complaint
func (s *ComplaintService) UpdateStatus(ctx context.Context, input UpdateStatusInput) error {
	if strings.TrimSpace(input.Status) == "" {
		return ErrStatusRequired
	}
	status, ok := models.ParseComplaintStatus(input.Status)
	if !ok {
		return ErrInvalidStatus
	}

	rows, err := s.complaintRepo.UpdateStatus(ctx, strings.TrimSpace(input.ComplaintID), status, input.AdminComment)
	if err != nil {
		s.log.Errorw("failed to update complaint status", "error", err, "complaint_id", input.ComplaintID)
		return ErrInternal
	}
	if rows == 0 {
		return ErrComplaintNotFound
	}

	s.log.Infow("complaint status updated", "complaint_id", input.ComplaintID, "status", status)
	return nil
}
