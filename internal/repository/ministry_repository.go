package repository

import (
	"context"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMinistryRepository is a GORM implementation of MinistryRepository
type GormMinistryRepository struct {
	db *gorm.DB
}

// NewMinistryRepository creates a new MinistryRepository
func NewMinistryRepository(db *gorm.DB) MinistryRepository {
	return &GormMinistryRepository{db: db}
}

// AddScheduleVolunteer assigns a member to a schedule
func (r *GormMinistryRepository) AddScheduleVolunteer(ctx context.Context, v *models.ScheduleVolunteer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
}

// SetVolunteerConfirmed updates the confirmed flag of an assignment
func (r *GormMinistryRepository) SetVolunteerConfirmed(ctx context.Context, churchID, scheduleID, volunteerID uint64, confirmed bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.ScheduleVolunteer{}).
		Where("church_id = ? AND schedule_id = ? AND id = ?", churchID, scheduleID, volunteerID).
		Update("confirmed", confirmed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveScheduleVolunteer removes an assignment
func (r *GormMinistryRepository) RemoveScheduleVolunteer(ctx context.Context, churchID, scheduleID, volunteerID uint64) error {
	result := r.db.WithContext(ctx).
		Where("church_id = ? AND schedule_id = ?", churchID, scheduleID).
		Delete(&models.ScheduleVolunteer{}, volunteerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListScheduleVolunteers lists assignments of a schedule with member names
func (r *GormMinistryRepository) ListScheduleVolunteers(ctx context.Context, churchID, scheduleID uint64) ([]ScheduleVolunteerRow, error) {
	rows := []ScheduleVolunteerRow{}
	err := r.db.WithContext(ctx).
		Table("schedule_volunteers").
		Select("schedule_volunteers.id, schedule_volunteers.schedule_id, schedule_volunteers.member_id, members.full_name AS member_name, schedule_volunteers.role, schedule_volunteers.confirmed").
		Joins("LEFT JOIN members ON members.id = schedule_volunteers.member_id AND members.church_id = schedule_volunteers.church_id").
		Where("schedule_volunteers.church_id = ? AND schedule_volunteers.schedule_id = ?", churchID, scheduleID).
		Order("members.full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if err := validateRows(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// UpcomingSchedulesForMember lists schedules from a date on where the member volunteers
func (r *GormMinistryRepository) UpcomingSchedulesForMember(ctx context.Context, churchID, memberID uint64, from time.Time) ([]MemberScheduleRow, error) {
	rows := []MemberScheduleRow{}
	err := r.db.WithContext(ctx).
		Table("schedule_volunteers").
		Select("ministry_schedules.id AS schedule_id, ministry_schedules.ministry_id, ministries.name AS ministry_name, ministry_schedules.title, ministry_schedules.scheduled_date, schedule_volunteers.role, schedule_volunteers.confirmed").
		Joins("JOIN ministry_schedules ON ministry_schedules.id = schedule_volunteers.schedule_id AND ministry_schedules.church_id = schedule_volunteers.church_id").
		Joins("LEFT JOIN ministries ON ministries.id = ministry_schedules.ministry_id AND ministries.church_id = ministry_schedules.church_id").
		Where("schedule_volunteers.church_id = ? AND schedule_volunteers.member_id = ?", churchID, memberID).
		Where("ministry_schedules.scheduled_date >= ?", from).
		Order("ministry_schedules.scheduled_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if err := validateRows(rows); err != nil {
		return nil, err
	}
	return rows, nil
}
