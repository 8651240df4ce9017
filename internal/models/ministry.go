package models

import (
	"gorm.io/datatypes"
)

type Ministry struct {
	TenantModel
	Activatable
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	LeaderID    *uint64 `json:"leader_id"`
}

type MinistryVolunteer struct {
	TenantModel
	MinistryID uint64 `gorm:"not null;index" json:"ministry_id"`
	MemberID   uint64 `gorm:"not null" json:"member_id"`
	Role       string `gorm:"type:varchar(60)" json:"role"`
}

type MinistrySchedule struct {
	TenantModel
	MinistryID    uint64         `gorm:"not null;index" json:"ministry_id"`
	Title         string         `gorm:"type:varchar(255);not null" json:"title"`
	ScheduledDate datatypes.Date `gorm:"not null;index" json:"scheduled_date"`
	StartTime     string         `gorm:"type:varchar(10)" json:"start_time"`
	Notes         string         `gorm:"type:text" json:"notes"`

	Volunteers []ScheduleVolunteer `gorm:"foreignKey:ScheduleID" json:"volunteers,omitempty"`
}

type ScheduleVolunteer struct {
	TenantModel
	ScheduleID uint64 `gorm:"not null;index" json:"schedule_id"`
	MemberID   uint64 `gorm:"not null" json:"member_id"`
	Role       string `gorm:"type:varchar(60)" json:"role"`
	Confirmed  bool   `gorm:"not null;default:false" json:"confirmed"`
}
