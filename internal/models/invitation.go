package models

import (
	"time"
)

type InvitationState string

const (
	InvitationValid   InvitationState = "valid"
	InvitationExpired InvitationState = "expired"
	InvitationUsed    InvitationState = "used"
)

// Invitation is a single-use, time-limited signup credential.
type Invitation struct {
	TenantModel
	Email     string     `gorm:"type:varchar(255);not null" json:"email"`
	Role      Role       `gorm:"type:varchar(20);not null" json:"role"`
	Token     string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedBy uint64     `gorm:"not null" json:"created_by"`
}

// State evaluates the invitation at now. Expiry is checked lazily.
func (i *Invitation) State(now time.Time) InvitationState {
	if i.UsedAt != nil {
		return InvitationUsed
	}
	if !now.Before(i.ExpiresAt) {
		return InvitationExpired
	}
	return InvitationValid
}
