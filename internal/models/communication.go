package models

import (
	"time"
)

type Reminder struct {
	TenantModel
	ProfileID   *uint64   `gorm:"index" json:"profile_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"not null;index" json:"due_date"`
	IsDone      bool      `gorm:"not null;default:false" json:"is_done"`
}

type Announcement struct {
	TenantModel
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	PublishedAt *time.Time `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CreatedBy   *uint64    `json:"created_by"`
}

// Visible reports whether the announcement is published and not expired at now.
func (a *Announcement) Visible(now time.Time) bool {
	if a.PublishedAt == nil || a.PublishedAt.After(now) {
		return false
	}
	return a.ExpiresAt == nil || a.ExpiresAt.After(now)
}

type PrayerRequest struct {
	TenantModel
	MemberID      *uint64 `json:"member_id"`
	RequesterName string  `gorm:"type:varchar(255)" json:"requester_name"`
	Request       string  `gorm:"type:text;not null" json:"request"`
	IsPrivate     bool    `gorm:"not null;default:false" json:"is_private"`
	Status        string  `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
}
