package services

import (
	"context"
	"testing"

	"github.com/grievance-portal/grievance-api/internal/database"
	"github.com/grievance-portal/grievance-api/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

var testLogger = zap.NewNop().Sugar()

// mockComplaintRepository is a testify mock of repository.ComplaintRepository.
type mockComplaintRepository struct {
	mock.Mock
}

func (m *mockComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *mockComplaintRepository) FindByComplaintID(ctx context.Context, complaintID string) (*models.Complaint, error) {
	args := m.Called(ctx, complaintID)
	c, _ := args.Get(0).(*models.Complaint)
	return c, args.Error(1)
}

func (m *mockComplaintRepository) ListByUserID(ctx context.Context, userID uint64) ([]models.Complaint, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).([]models.Complaint)
	return c, args.Error(1)
}

func (m *mockComplaintRepository) ListAll(ctx context.Context) ([]models.Complaint, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]models.Complaint)
	return c, args.Error(1)
}

func (m *mockComplaintRepository) UpdateStatus(ctx context.Context, complaintID string, status models.ComplaintStatus, adminComment *string) (int64, error) {
	args := m.Called(ctx, complaintID, status, adminComment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockComplaintRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockComplaintRepository) CountByStatus(ctx context.Context, status models.ComplaintStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}
