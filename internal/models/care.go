package models

import (
	"gorm.io/datatypes"
)

// ConsolidationRecord tracks the follow-up of a new convert or visitor.
type ConsolidationRecord struct {
	TenantModel
	MemberID       uint64          `gorm:"not null;index" json:"member_id"`
	ConsolidatorID *uint64         `json:"consolidator_id"`
	Status         string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ContactDate    *datatypes.Date `json:"contact_date"`
	Notes          string          `gorm:"type:text" json:"notes"`
}

type Discipleship struct {
	TenantModel
	DisciplerID uint64          `gorm:"not null;index" json:"discipler_id"`
	DiscipleID  uint64          `gorm:"not null;index" json:"disciple_id"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	StartDate   *datatypes.Date `json:"start_date"`
	Notes       string          `gorm:"type:text" json:"notes"`
}

type PastoralVisit struct {
	TenantModel
	MemberID  *uint64        `json:"member_id"`
	PastorID  *uint64        `json:"pastor_id"`
	VisitDate datatypes.Date `gorm:"not null;index" json:"visit_date"`
	Reason    string         `gorm:"type:varchar(255)" json:"reason"`
	Notes     string         `gorm:"type:text" json:"notes"`
}

type PastoralCounseling struct {
	TenantModel
	MemberID       uint64         `gorm:"not null;index" json:"member_id"`
	CounselorID    *uint64        `json:"counselor_id"`
	SessionDate    datatypes.Date `gorm:"not null;index" json:"session_date"`
	Topic          string         `gorm:"type:varchar(255)" json:"topic"`
	Notes          string         `gorm:"type:text" json:"notes"`
	IsConfidential bool           `gorm:"not null;default:true" json:"is_confidential"`
}

func (PastoralCounseling) TableName() string { return "pastoral_counseling" }
