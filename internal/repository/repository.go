package repository

import (
	"context"

	"github.com/grievance-portal/grievance-api/internal/models"
)

// ComplaintRepository defines the interface for complaint data access
type ComplaintRepository interface {
	// Create inserts a new complaint
	Create(ctx context.Context, complaint *models.Complaint) error

	// FindByComplaintID finds a complaint by its public identifier
	FindByComplaintID(ctx context.Context, complaintID string) (*models.Complaint, error)

	// ListByUserID lists complaints submitted by a user, newest first
	ListByUserID(ctx context.Context, userID uint64) ([]models.Complaint, error)

	// ListAll lists every complaint with its submitter preloaded, newest first
	ListAll(ctx context.Context) ([]models.Complaint, error)

	// UpdateStatus sets status and admin comment and returns the affected row count
	UpdateStatus(ctx context.Context, complaintID string, status models.ComplaintStatus, adminComment *string) (int64, error)

	// Count counts all complaints
	Count(ctx context.Context) (int64, error)

	// CountByStatus counts complaints in the given status
	CountByStatus(ctx context.Context, status models.ComplaintStatus) (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
