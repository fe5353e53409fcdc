package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tunde/campusfound/internal/app/models"
	"github.com/tunde/campusfound/internal/app/models/dto"
	"github.com/tunde/campusfound/internal/app/repositories"
)

const (
	landingSampleSize   = 6
	dashboardStripSize  = 5
	unverifiedBatchSize = 20
)

// DashboardService aggregates counts and recent items for the landing page,
// the student dashboard, the my-reports summary and the admin dashboard.
type DashboardService struct {
	itemRepo *repositories.ItemRepository
	logger   zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(itemRepo *repositories.ItemRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Landing returns the public landing aggregates: overall counts plus a small
// random sample of items.
func (s *DashboardService) Landing(ctx context.Context) (*dto.LandingResponse, error) {
	counts, err := s.itemRepo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	sample, err := s.itemRepo.RandomSample(ctx, landingSampleSize)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &dto.LandingResponse{
		TotalReports:  total,
		FoundCount:    counts[models.StatusFound],
		ReturnedCount: counts[models.StatusReturned],
		Sample:        dto.FromItems(sample),
	}, nil
}

// StudentDashboard builds the per-user dashboard for userID. Every count is
// scoped to the user's own reports: active reports are those still lost or
// found, pending claims are found reports nobody has claimed yet, and resolved
// cases are reports that reached returned status.
func (s *DashboardService) StudentDashboard(ctx context.Context, userID int64) (*dto.StudentDashboardResponse, error) {
	counts, err := s.itemRepo.StatusCountsForReporter(ctx, userID)
	if err != nil {
		return nil, err
	}

	pendingClaims, err := s.itemRepo.CountPendingClaimsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	recentlyFound, err := s.itemRepo.RecentFoundExcluding(ctx, userID, dashboardStripSize)
	if err != nil {
		return nil, err
	}

	userRecent, err := s.itemRepo.RecentByReporter(ctx, userID, dashboardStripSize)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboardResponse{
		ActiveReports:   counts[models.StatusLost] + counts[models.StatusFound],
		ItemsFound:      counts[models.StatusFound],
		PendingClaims:   pendingClaims,
		ResolvedCases:   counts[models.StatusReturned],
		RecentlyFound:   dto.FromItems(recentlyFound),
		UserRecentItems: dto.FromItems(userRecent),
	}, nil
}

// MyReports summarizes everything userID has reported. The full list is
// returned unpaginated; a single user's reports stay small.
func (s *DashboardService) MyReports(ctx context.Context, userID int64) (*dto.MyReportsResponse, error) {
	items, err := s.itemRepo.ListByReporter(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.itemRepo.StatusCountsForReporter(ctx, userID)
	if err != nil {
		return nil, err
	}

	countByStatus := make(map[string]int64, len(counts))
	var total int64
	for status, count := range counts {
		countByStatus[string(status)] = count
		total += count
	}

	return &dto.MyReportsResponse{
		TotalReports:  total,
		CountByStatus: countByStatus,
		Items:         dto.FromItems(items),
		Categories:    dto.CategoryNames(),
	}, nil
}

// AdminDashboard builds the administrator dashboard: global counts plus the
// oldest unverified reports awaiting attestation.
func (s *DashboardService) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	counts, err := s.itemRepo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	unverified, err := s.itemRepo.ListUnverified(ctx, unverifiedBatchSize)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &dto.AdminDashboardResponse{
		TotalReports:    total,
		LostCount:       counts[models.StatusLost],
		FoundCount:      counts[models.StatusFound],
		ReturnedCount:   counts[models.StatusReturned],
		UnverifiedItems: dto.FromItems(unverified),
	}, nil
}
