package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/stats"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrCellNotFound    = errors.New("cell not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrRosterNotInCell = errors.New("roster includes members outside the cell")
	ErrRosterOverlap   = errors.New("a member cannot be both present and absent")
	ErrNegativeCount   = errors.New("counts cannot be negative")
	ErrReportNotFound  = errors.New("report not found")
)

// CellService handles cell membership and meeting reports.
type CellService struct {
	cells   repository.TenantRepository[models.Cell]
	members repository.TenantRepository[models.Member]
	repo    repository.CellRepository
	now     func() time.Time
}

// NewCellService creates a new CellService.
func NewCellService(cells repository.TenantRepository[models.Cell], members repository.TenantRepository[models.Member], repo repository.CellRepository) *CellService {
	return &CellService{
		cells:   cells,
		members: members,
		repo:    repo,
		now:     time.Now,
	}
}

func (s *CellService) findCell(ctx context.Context, churchID, cellID uint64) (*models.Cell, error) {
	cell, err := s.cells.FindByID(ctx, churchID, cellID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCellNotFound
		}
		return nil, fmt.Errorf("failed to find cell: %w", err)
	}
	return cell, nil
}

// AddMember puts a member in a cell. Adding an existing member is a no-op.
func (s *CellService) AddMember(ctx context.Context, churchID, cellID, memberID uint64) error {
	if _, err := s.findCell(ctx, churchID, cellID); err != nil {
		return err
	}
	if _, err := s.members.FindByID(ctx, churchID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to find member: %w", err)
	}

	cm := &models.CellMember{
		TenantModel: models.TenantModel{ChurchID: churchID},
		CellID:      cellID,
		MemberID:    memberID,
		JoinedAt:    s.now(),
	}
	if err := s.repo.AddMember(ctx, cm); err != nil {
		return fmt.Errorf("failed to add member to cell: %w", err)
	}
	return nil
}

// RemoveMember takes a member out of a cell.
func (s *CellService) RemoveMember(ctx context.Context, churchID, cellID, memberID uint64) error {
	if err := s.repo.RemoveMember(ctx, churchID, cellID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to remove member from cell: %w", err)
	}
	return nil
}

// ListMembers lists the members of a cell.
func (s *CellService) ListMembers(ctx context.Context, churchID, cellID uint64) ([]models.CellMember, error) {
	if _, err := s.findCell(ctx, churchID, cellID); err != nil {
		return nil, err
	}
	members, err := s.repo.ListMembers(ctx, churchID, cellID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cell members: %w", err)
	}
	return members, nil
}

// SubmitReportInput is one meeting report with its presence roster.
type SubmitReportInput struct {
	ReportDate  datatypes.Date
	Present     []uint64
	Absent      []uint64
	Visitors    int
	Conversions int
	Offering    models.Money
	Notes       string
	SubmittedBy *uint64
}

// SubmitReport stores a meeting report. Attendance is derived from the
// roster: present members plus visitors.
func (s *CellService) SubmitReport(ctx context.Context, churchID, cellID uint64, input SubmitReportInput) (*models.CellReport, error) {
	if input.Visitors < 0 || input.Conversions < 0 {
		return nil, ErrNegativeCount
	}
	if _, err := s.findCell(ctx, churchID, cellID); err != nil {
		return nil, err
	}

	present, absent := unique(input.Present), unique(input.Absent)
	for id := range present.set {
		if absent.has(id) {
			return nil, ErrRosterOverlap
		}
	}

	cellMembers, err := s.repo.MemberIDs(ctx, churchID, cellID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cell members: %w", err)
	}
	inCell := make(map[uint64]bool, len(cellMembers))
	for _, id := range cellMembers {
		inCell[id] = true
	}

	roster := make([]models.CellReportAttendance, 0, len(present.ids)+len(absent.ids))
	for _, id := range present.ids {
		if !inCell[id] {
			return nil, ErrRosterNotInCell
		}
		roster = append(roster, models.CellReportAttendance{MemberID: id, Present: true})
	}
	for _, id := range absent.ids {
		if !inCell[id] {
			return nil, ErrRosterNotInCell
		}
		roster = append(roster, models.CellReportAttendance{MemberID: id, Present: false})
	}

	report := &models.CellReport{
		TenantModel:    models.TenantModel{ChurchID: churchID},
		CellID:         cellID,
		ReportDate:     input.ReportDate,
		Attendance:     stats.Attendance(len(present.ids), input.Visitors),
		MembersPresent: len(present.ids),
		Visitors:       input.Visitors,
		Conversions:    input.Conversions,
		Offering:       input.Offering,
		Notes:          input.Notes,
		SubmittedBy:    input.SubmittedBy,
		Roster:         roster,
	}
	if err := s.repo.CreateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

// ListReports lists the reports of a cell, newest first.
func (s *CellService) ListReports(ctx context.Context, churchID, cellID uint64) ([]models.CellReport, error) {
	if _, err := s.findCell(ctx, churchID, cellID); err != nil {
		return nil, err
	}
	reports, err := s.repo.ListReports(ctx, churchID, cellID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// DeleteReport removes a report and its roster.
func (s *CellService) DeleteReport(ctx context.Context, churchID, reportID uint64) error {
	if err := s.repo.DeleteReport(ctx, churchID, reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// Overview aggregates the reports of every active cell in [from, to).
// Nil bounds leave that side open.
func (s *CellService) Overview(ctx context.Context, churchID uint64, from, to *time.Time) ([]stats.CellTotals, error) {
	summaries, err := s.repo.Summaries(ctx, churchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cells: %w", err)
	}
	reports, err := s.repo.ListReports(ctx, churchID, 0, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	refs := make([]stats.CellRef, len(summaries))
	for i, row := range summaries {
		refs[i] = stats.CellRef{ID: row.ID, Name: row.Name, LeaderName: row.LeaderName}
	}
	return stats.CellOverview(refs, reports), nil
}

type idSet struct {
	ids []uint64
	set map[uint64]bool
}

func (s idSet) has(id uint64) bool { return s.set[id] }

// unique drops repeated ids, keeping first-seen order.
func unique(ids []uint64) idSet {
	out := idSet{set: make(map[uint64]bool, len(ids))}
	for _, id := range ids {
		if out.set[id] {
			continue
		}
		out.set[id] = true
		out.ids = append(out.ids, id)
	}
	return out
}
