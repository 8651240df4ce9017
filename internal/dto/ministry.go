package dto

import (
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
)

type CreateMinistryRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description"`
	LeaderID    *uint64 `json:"leader_id"`
}

func (r *CreateMinistryRequest) Build() (*models.Ministry, error) {
	return &models.Ministry{
		Name:        trimmed(r.Name),
		Description: r.Description,
		LeaderID:    ref(r.LeaderID),
	}, nil
}

type UpdateMinistryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	LeaderID    *uint64 `json:"leader_id"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdateMinistryRequest) Apply(m *models.Ministry) error {
	setTrimmed(&m.Name, r.Name)
	set(&m.Description, r.Description)
	setRef(&m.LeaderID, r.LeaderID)
	set(&m.IsActive, r.IsActive)
	return nil
}

type CreateMinistryVolunteerRequest struct {
	MinistryID uint64 `json:"ministry_id" binding:"required"`
	MemberID   uint64 `json:"member_id" binding:"required"`
	Role       string `json:"role" binding:"max=60"`
}

func (r *CreateMinistryVolunteerRequest) Build() (*models.MinistryVolunteer, error) {
	return &models.MinistryVolunteer{
		MinistryID: r.MinistryID,
		MemberID:   r.MemberID,
		Role:       trimmed(r.Role),
	}, nil
}

type UpdateMinistryVolunteerRequest struct {
	Role *string `json:"role" binding:"omitempty,max=60"`
}

func (r *UpdateMinistryVolunteerRequest) Apply(v *models.MinistryVolunteer) error {
	setTrimmed(&v.Role, r.Role)
	return nil
}

type CreateMinistryScheduleRequest struct {
	MinistryID    uint64 `json:"ministry_id" binding:"required"`
	Title         string `json:"title" binding:"required,max=255"`
	ScheduledDate string `json:"scheduled_date" binding:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" binding:"omitempty,datetime=15:04"`
	Notes         string `json:"notes"`
}

func (r *CreateMinistryScheduleRequest) Build() (*models.MinistrySchedule, error) {
	date, err := ParseDate(r.ScheduledDate)
	if err != nil {
		return nil, err
	}
	return &models.MinistrySchedule{
		MinistryID:    r.MinistryID,
		Title:         trimmed(r.Title),
		ScheduledDate: date,
		StartTime:     r.StartTime,
		Notes:         r.Notes,
	}, nil
}

type UpdateMinistryScheduleRequest struct {
	Title         *string `json:"title" binding:"omitempty,min=1,max=255"`
	ScheduledDate *string `json:"scheduled_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime     *string `json:"start_time" binding:"omitempty,datetime=15:04"`
	Notes         *string `json:"notes"`
}

func (r *UpdateMinistryScheduleRequest) Apply(s *models.MinistrySchedule) error {
	setTrimmed(&s.Title, r.Title)
	set(&s.StartTime, r.StartTime)
	set(&s.Notes, r.Notes)
	return patchRequiredDate(&s.ScheduledDate, r.ScheduledDate)
}

type AddScheduleVolunteerRequest struct {
	MemberID uint64 `json:"member_id" binding:"required"`
	Role     string `json:"role" binding:"max=60"`
}

type ConfirmVolunteerRequest struct {
	Confirmed *bool `json:"confirmed" binding:"required"`
}
