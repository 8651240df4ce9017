package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrVolunteerNotFound = errors.New("volunteer assignment not found")
)

// MinistryService manages volunteer assignments on ministry schedules.
type MinistryService struct {
	schedules repository.TenantRepository[models.MinistrySchedule]
	members   repository.TenantRepository[models.Member]
	repo      repository.MinistryRepository
}

// NewMinistryService creates a new MinistryService.
func NewMinistryService(schedules repository.TenantRepository[models.MinistrySchedule], members repository.TenantRepository[models.Member], repo repository.MinistryRepository) *MinistryService {
	return &MinistryService{
		schedules: schedules,
		members:   members,
		repo:      repo,
	}
}

func (s *MinistryService) checkSchedule(ctx context.Context, churchID, scheduleID uint64) error {
	if _, err := s.schedules.FindByID(ctx, churchID, scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return fmt.Errorf("failed to find schedule: %w", err)
	}
	return nil
}

// AddVolunteer assigns a member to a schedule with a role.
func (s *MinistryService) AddVolunteer(ctx context.Context, churchID, scheduleID, memberID uint64, role string) (*models.ScheduleVolunteer, error) {
	if err := s.checkSchedule(ctx, churchID, scheduleID); err != nil {
		return nil, err
	}
	if _, err := s.members.FindByID(ctx, churchID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	v := &models.ScheduleVolunteer{
		TenantModel: models.TenantModel{ChurchID: churchID},
		ScheduleID:  scheduleID,
		MemberID:    memberID,
		Role:        role,
	}
	if err := s.repo.AddScheduleVolunteer(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to add volunteer: %w", err)
	}
	return v, nil
}

// SetConfirmed records whether the volunteer confirmed the assignment.
func (s *MinistryService) SetConfirmed(ctx context.Context, churchID, scheduleID, volunteerID uint64, confirmed bool) error {
	if err := s.repo.SetVolunteerConfirmed(ctx, churchID, scheduleID, volunteerID, confirmed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVolunteerNotFound
		}
		return fmt.Errorf("failed to update volunteer: %w", err)
	}
	return nil
}

// RemoveVolunteer deletes an assignment.
func (s *MinistryService) RemoveVolunteer(ctx context.Context, churchID, scheduleID, volunteerID uint64) error {
	if err := s.repo.RemoveScheduleVolunteer(ctx, churchID, scheduleID, volunteerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVolunteerNotFound
		}
		return fmt.Errorf("failed to remove volunteer: %w", err)
	}
	return nil
}

// ListVolunteers lists the assignments of a schedule with member names.
func (s *MinistryService) ListVolunteers(ctx context.Context, churchID, scheduleID uint64) ([]repository.ScheduleVolunteerRow, error) {
	if err := s.checkSchedule(ctx, churchID, scheduleID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListScheduleVolunteers(ctx, churchID, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	return rows, nil
}
