package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/stats"
	"gorm.io/gorm"
)

// ErrNoLinkedMember is returned when a profile has no member record.
var ErrNoLinkedMember = errors.New("profile is not linked to a member")

// PortalService builds the member-facing view of the church.
type PortalService struct {
	members       repository.TenantRepository[models.Member]
	cells         repository.TenantRepository[models.Cell]
	enrollments   repository.TenantRepository[models.CourseStudent]
	events        repository.TenantRepository[models.Event]
	announcements repository.TenantRepository[models.Announcement]
	cellRepo      repository.CellRepository
	ministryRepo  repository.MinistryRepository
	now           func() time.Time
}

// PortalRepositories groups the repositories the portal reads from.
type PortalRepositories struct {
	Members       repository.TenantRepository[models.Member]
	Cells         repository.TenantRepository[models.Cell]
	Enrollments   repository.TenantRepository[models.CourseStudent]
	Events        repository.TenantRepository[models.Event]
	Announcements repository.TenantRepository[models.Announcement]
	CellRepo      repository.CellRepository
	MinistryRepo  repository.MinistryRepository
}

// NewPortalService creates a new PortalService.
func NewPortalService(repos PortalRepositories) *PortalService {
	return &PortalService{
		members:       repos.Members,
		cells:         repos.Cells,
		enrollments:   repos.Enrollments,
		events:        repos.Events,
		announcements: repos.Announcements,
		cellRepo:      repos.CellRepo,
		ministryRepo:  repos.MinistryRepo,
		now:           time.Now,
	}
}

// WithClock replaces the time source.
func (s *PortalService) WithClock(now func() time.Time) *PortalService {
	s.now = now
	return s
}

// PortalView is everything a member sees about their own participation.
type PortalView struct {
	Member         models.Member                  `json:"member"`
	Cells          []models.Cell                  `json:"cells"`
	Schedules      []repository.MemberScheduleRow `json:"schedules"`
	Enrollments    []models.CourseStudent         `json:"enrollments"`
	UpcomingEvents []models.Event                 `json:"upcoming_events"`
	Announcements  []models.Announcement          `json:"announcements"`
}

// ForSession builds the portal of the member linked to the session profile.
func (s *PortalService) ForSession(ctx context.Context, session *models.SessionContext) (*PortalView, error) {
	if session.Profile.MemberID == nil {
		return nil, ErrNoLinkedMember
	}
	churchID := session.ChurchID()
	memberID := *session.Profile.MemberID
	now := s.now()

	member, err := s.members.FindByID(ctx, churchID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoLinkedMember
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	view := &PortalView{Member: *member, Cells: []models.Cell{}}

	cellIDs, err := s.cellRepo.CellIDsForMember(ctx, churchID, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cells: %w", err)
	}
	for _, id := range cellIDs {
		cell, err := s.cells.FindByID(ctx, churchID, id, "Leader")
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to find cell: %w", err)
		}
		if cell.IsActive {
			view.Cells = append(view.Cells, *cell)
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	view.Schedules, err = s.ministryRepo.UpcomingSchedulesForMember(ctx, churchID, memberID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	view.Enrollments, _, err = s.enrollments.List(ctx, churchID, repository.ListOptions{
		Filters: map[string]interface{}{"member_id": memberID},
		Order:   "enrolled_at DESC",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	events, _, err := s.events.List(ctx, churchID, repository.ListOptions{Order: "event_date ASC"})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	view.UpcomingEvents = stats.UpcomingEvents(events, now, constants.UpcomingEventsWindow, constants.MaxUpcomingEvents)

	announcements, _, err := s.announcements.List(ctx, churchID, repository.ListOptions{Order: "published_at DESC"})
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	view.Announcements = []models.Announcement{}
	for _, a := range announcements {
		if a.Visible(now) {
			view.Announcements = append(view.Announcements, a)
		}
	}

	return view, nil
}
