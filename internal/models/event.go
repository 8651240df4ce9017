package models

import (
	"time"
)

type Event struct {
	TenantModel
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	EventDate   time.Time  `gorm:"not null;index" json:"event_date"`
	EndDate     *time.Time `json:"end_date"`
	Location    string     `gorm:"type:varchar(255)" json:"location"`
	Capacity    *int       `json:"capacity"`
}

// Registration statuses.
const (
	RegistrationConfirmed = "confirmed"
	RegistrationCancelled = "cancelled"
	RegistrationWaitlist  = "waitlist"
)

type EventRegistration struct {
	TenantModel
	EventID    uint64  `gorm:"not null;index" json:"event_id"`
	MemberID   *uint64 `json:"member_id"`
	GuestName  string  `gorm:"type:varchar(255)" json:"guest_name"`
	GuestEmail string  `gorm:"type:varchar(255)" json:"guest_email"`
	Status     string  `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
}
