package models

import (
	"time"

	"gorm.io/gorm"
)

type ChurchPlan string

const (
	PlanFree    ChurchPlan = "free"
	PlanBasic   ChurchPlan = "basic"
	PlanPremium ChurchPlan = "premium"
)

// Church is the tenant root. Every other row references it.
type Church struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string         `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	Plan        ChurchPlan     `gorm:"type:varchar(20);not null;default:'free'" json:"plan"`
	MemberLimit int            `gorm:"not null;default:0" json:"member_limit"`
	Email       string         `gorm:"type:varchar(255)" json:"email"`
	Phone       string         `gorm:"type:varchar(40)" json:"phone"`
	Address     string         `gorm:"type:text" json:"address"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Congregation is a satellite congregation of a church.
type Congregation struct {
	TenantModel
	Activatable
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Address  string  `gorm:"type:text" json:"address"`
	PastorID *uint64 `json:"pastor_id"`
}
