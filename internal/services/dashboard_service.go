package services

import (
	"context"
	"fmt"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/stats"
)

// DashboardService gathers the rows behind the dashboard and hands them to
// the stats package.
type DashboardService struct {
	members     repository.TenantRepository[models.Member]
	cells       repository.TenantRepository[models.Cell]
	events      repository.TenantRepository[models.Event]
	cellRepo    repository.CellRepository
	financeRepo repository.FinanceRepository
	now         func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	members repository.TenantRepository[models.Member],
	cells repository.TenantRepository[models.Cell],
	events repository.TenantRepository[models.Event],
	cellRepo repository.CellRepository,
	financeRepo repository.FinanceRepository,
) *DashboardService {
	return &DashboardService{
		members:     members,
		cells:       cells,
		events:      events,
		cellRepo:    cellRepo,
		financeRepo: financeRepo,
		now:         time.Now,
	}
}

// WithClock replaces the time source.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// Dashboard computes the dashboard of the church at the current time.
func (s *DashboardService) Dashboard(ctx context.Context, churchID uint64) (*stats.Dashboard, error) {
	now := s.now()
	month, week := stats.MonthOf(now), stats.WeekOf(now)

	members, _, err := s.members.List(ctx, churchID, repository.ListOptions{IncludeInactive: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	cells, _, err := s.cells.List(ctx, churchID, repository.ListOptions{IncludeInactive: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list cells: %w", err)
	}

	// The current week may start in the previous month.
	from := month.From
	if week.From.Before(from) {
		from = week.From
	}
	to := month.To
	if week.To.After(to) {
		to = week.To
	}
	reports, err := s.cellRepo.ListReports(ctx, churchID, 0, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	transactions, err := s.financeRepo.TransactionsBetween(ctx, churchID, month.From, month.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	events, _, err := s.events.List(ctx, churchID, repository.ListOptions{Order: "event_date ASC"})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	dashboard := stats.BuildDashboard(stats.DashboardInput{
		Members:      members,
		Cells:        cells,
		Reports:      reports,
		Transactions: transactions,
		Events:       events,
	}, now)
	return &dashboard, nil
}
