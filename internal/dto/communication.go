package dto

import (
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
)

type CreateReminderRequest struct {
	ProfileID   *uint64   `json:"profile_id"`
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

func (r *CreateReminderRequest) Build() (*models.Reminder, error) {
	return &models.Reminder{
		ProfileID:   ref(r.ProfileID),
		Title:       trimmed(r.Title),
		Description: r.Description,
		DueDate:     r.DueDate,
	}, nil
}

type UpdateReminderRequest struct {
	ProfileID   *uint64    `json:"profile_id"`
	Title       *string    `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	IsDone      *bool      `json:"is_done"`
}

func (r *UpdateReminderRequest) Apply(rem *models.Reminder) error {
	setRef(&rem.ProfileID, r.ProfileID)
	setTrimmed(&rem.Title, r.Title)
	set(&rem.Description, r.Description)
	set(&rem.DueDate, r.DueDate)
	set(&rem.IsDone, r.IsDone)
	return nil
}

type CreateAnnouncementRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Content     string     `json:"content" binding:"required"`
	PublishedAt *time.Time `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

func (r *CreateAnnouncementRequest) Build() (*models.Announcement, error) {
	return &models.Announcement{
		Title:       trimmed(r.Title),
		Content:     r.Content,
		PublishedAt: r.PublishedAt,
		ExpiresAt:   r.ExpiresAt,
	}, nil
}

type UpdateAnnouncementRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=255"`
	Content     *string    `json:"content" binding:"omitempty,min=1"`
	PublishedAt *time.Time `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

func (r *UpdateAnnouncementRequest) Apply(a *models.Announcement) error {
	setTrimmed(&a.Title, r.Title)
	set(&a.Content, r.Content)
	if r.PublishedAt != nil {
		a.PublishedAt = r.PublishedAt
	}
	if r.ExpiresAt != nil {
		a.ExpiresAt = r.ExpiresAt
	}
	return nil
}

type DraftAnnouncementRequest struct {
	Topic string `json:"topic" binding:"required,max=2000"`
}

type CreatePrayerRequest struct {
	MemberID      *uint64 `json:"member_id"`
	RequesterName string  `json:"requester_name" binding:"required_without=MemberID,max=255"`
	Request       string  `json:"request" binding:"required"`
	IsPrivate     bool    `json:"is_private"`
}

func (r *CreatePrayerRequest) Build() (*models.PrayerRequest, error) {
	return &models.PrayerRequest{
		MemberID:      ref(r.MemberID),
		RequesterName: trimmed(r.RequesterName),
		Request:       trimmed(r.Request),
		IsPrivate:     r.IsPrivate,
	}, nil
}

type UpdatePrayerRequest struct {
	Request   *string `json:"request" binding:"omitempty,min=1"`
	IsPrivate *bool   `json:"is_private"`
	Status    *string `json:"status" binding:"omitempty,oneof=open praying answered"`
}

func (r *UpdatePrayerRequest) Apply(p *models.PrayerRequest) error {
	setTrimmed(&p.Request, r.Request)
	set(&p.IsPrivate, r.IsPrivate)
	set(&p.Status, r.Status)
	return nil
}
