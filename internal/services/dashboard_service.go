package services

import (
	"context"

	"github.com/grievance-portal/grievance-api/internal/models"
	"github.com/grievance-portal/grievance-api/internal/repository"
	"go.uber.org/zap"
)

// DashboardCounts summarises complaints for the admin dashboard.
//
// Each count is its own query with no shared snapshot, so under concurrent
// writes the four values can disagree slightly with one another.
type DashboardCounts struct {
	Total      int64
	Pending    int64
	InProgress int64
	Resolved   int64
}

// DashboardService aggregates complaint counts
type DashboardService struct {
	complaintRepo repository.ComplaintRepository
	log           *zap.SugaredLogger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(complaintRepo repository.ComplaintRepository, log *zap.SugaredLogger) *DashboardService {
	return &DashboardService{
		complaintRepo: complaintRepo,
		log:           log,
	}
}

// Counts returns the total and per-status complaint counts
func (s *DashboardService) Counts(ctx context.Context) (*DashboardCounts, error) {
	total, err := s.complaintRepo.Count(ctx)
	if err != nil {
		s.log.Errorw("failed to count complaints", "error", err)
		return nil, ErrInternal
	}

	counts := &DashboardCounts{Total: total}
	byStatus := []struct {
		status models.ComplaintStatus
		dst    *int64
	}{
		{models.ComplaintStatusPending, &counts.Pending},
		{models.ComplaintStatusInProgress, &counts.InProgress},
		{models.ComplaintStatusResolved, &counts.Resolved},
	}
	for _, q := range byStatus {
		n, err := s.complaintRepo.CountByStatus(ctx, q.status)
		if err != nil {
			s.log.Errorw("failed to count complaints by status", "error", err, "status", q.status)
			return nil, ErrInternal
		}
		*q.dst = n
	}

	return counts, nil
}

// ResolvedCount returns the number of resolved complaints for the public landing page
func (s *DashboardService) ResolvedCount(ctx context.Context) (int64, error) {
	n, err := s.complaintRepo.CountByStatus(ctx, models.ComplaintStatusResolved)
	if err != nil {
		s.log.Errorw("failed to count resolved complaints", "error", err)
		return 0, ErrInternal
	}
	return n, nil
}
