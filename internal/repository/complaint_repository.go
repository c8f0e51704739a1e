package repository

import (
	"context"

	"github.com/grievance-portal/grievance-api/internal/database"
	"github.com/grievance-portal/grievance-api/internal/models"
	"gorm.io/gorm"
)

// GormComplaintRepository is a GORM implementation of ComplaintRepository
type GormComplaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &GormComplaintRepository{db: db}
}

// Create inserts a new complaint
func (r *GormComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// FindByComplaintID finds a complaint by its public identifier
func (r *GormComplaintRepository) FindByComplaintID(ctx context.Context, complaintID string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.db.WithContext(ctx).Where("complaint_id = ?", complaintID).First(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListByUserID lists complaints submitted by a user, newest first
func (r *GormComplaintRepository) ListByUserID(ctx context.Context, userID uint64) ([]models.Complaint, error) {
	complaints := []models.Complaint{}
	if err := r.db.WithContext(ctx).
		Scopes(database.Newest("complaints")).
		Where("user_id = ?", userID).
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// ListAll lists every complaint with its submitter preloaded, newest first
func (r *GormComplaintRepository) ListAll(ctx context.Context) ([]models.Complaint, error) {
	complaints := []models.Complaint{}
	if err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(database.Newest("complaints")).
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// UpdateStatus sets status and admin comment in one statement
func (r *GormComplaintRepository) UpdateStatus(ctx context.Context, complaintID string, status models.ComplaintStatus, adminComment *string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("complaint_id = ?", complaintID).
		Updates(map[string]interface{}{
			"status":        status,
			"admin_comment": adminComment,
		})
	return result.RowsAffected, result.Error
}

// Count counts all complaints
func (r *GormComplaintRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Complaint{}).Count(&count).Error
	return count, err
}

// CountByStatus counts complaints in the given status
func (r *GormComplaintRepository) CountByStatus(ctx context.Context, status models.ComplaintStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
