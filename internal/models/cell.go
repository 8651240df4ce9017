package models

import (
	"time"

	"gorm.io/datatypes"
)

type Cell struct {
	TenantModel
	Activatable
	Name           string  `gorm:"type:varchar(255);not null" json:"name"`
	Description    string  `gorm:"type:text" json:"description"`
	LeaderID       *uint64 `json:"leader_id"`
	SupervisorID   *uint64 `json:"supervisor_id"`
	CongregationID *uint64 `json:"congregation_id"`
	Host           string  `gorm:"type:varchar(255)" json:"host"`
	Address        string  `gorm:"type:text" json:"address"`
	MeetingDay     string  `gorm:"type:varchar(20)" json:"meeting_day"`
	MeetingTime    string  `gorm:"type:varchar(10)" json:"meeting_time"`

	Leader     *Member `gorm:"foreignKey:LeaderID" json:"leader,omitempty"`
	Supervisor *Member `gorm:"foreignKey:SupervisorID" json:"supervisor,omitempty"`
}

type CellMember struct {
	TenantModel
	CellID   uint64    `gorm:"not null;uniqueIndex:idx_cell_members_cell_member" json:"cell_id"`
	MemberID uint64    `gorm:"not null;uniqueIndex:idx_cell_members_cell_member" json:"member_id"`
	JoinedAt time.Time `json:"joined_at"`

	Member Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

// CellReport is the log of one cell meeting.
// Attendance is always MembersPresent + Visitors.
type CellReport struct {
	TenantModel
	CellID         uint64         `gorm:"not null;index" json:"cell_id"`
	ReportDate     datatypes.Date `gorm:"not null;index" json:"report_date"`
	Attendance     int            `gorm:"not null;default:0" json:"attendance"`
	MembersPresent int            `gorm:"not null;default:0" json:"members_present"`
	Visitors       int            `gorm:"not null;default:0" json:"visitors"`
	Conversions    int            `gorm:"not null;default:0" json:"conversions"`
	Offering       Money          `gorm:"not null;default:0" json:"offering"`
	Notes          string         `gorm:"type:text" json:"notes"`
	SubmittedBy    *uint64        `json:"submitted_by"`

	Roster []CellReportAttendance `gorm:"foreignKey:ReportID" json:"roster,omitempty"`
}

// CellReportAttendance is one row of the presence roster of a report.
type CellReportAttendance struct {
	TenantModel
	ReportID uint64 `gorm:"not null;index" json:"report_id"`
	MemberID uint64 `gorm:"not null" json:"member_id"`
	Present  bool   `gorm:"not null" json:"present"`
}

type CellVisitor struct {
	TenantModel
	CellID    uint64         `gorm:"not null;index" json:"cell_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string         `gorm:"type:varchar(40)" json:"phone"`
	VisitDate datatypes.Date `gorm:"not null" json:"visit_date"`
	InvitedBy *uint64        `json:"invited_by"`
	Converted bool           `gorm:"not null;default:false" json:"converted"`
	Notes     string         `gorm:"type:text" json:"notes"`
}

type CellPrayerRequest struct {
	TenantModel
	CellID   uint64  `gorm:"not null;index" json:"cell_id"`
	MemberID *uint64 `json:"member_id"`
	Request  string  `gorm:"type:text;not null" json:"request"`
	Status   string  `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
}

type CellPastoralCare struct {
	TenantModel
	CellID   uint64         `gorm:"not null;index" json:"cell_id"`
	MemberID uint64         `gorm:"not null" json:"member_id"`
	CareDate datatypes.Date `gorm:"not null" json:"care_date"`
	CareType string         `gorm:"type:varchar(40)" json:"care_type"`
	Notes    string         `gorm:"type:text" json:"notes"`
}

func (CellPastoralCare) TableName() string { return "cell_pastoral_care" }

type CellLeadershipDevelopment struct {
	TenantModel
	CellID    uint64          `gorm:"not null;index" json:"cell_id"`
	MemberID  uint64          `gorm:"not null" json:"member_id"`
	Stage     string          `gorm:"type:varchar(40);not null" json:"stage"`
	StartDate *datatypes.Date `json:"start_date"`
	Notes     string          `gorm:"type:text" json:"notes"`
}

func (CellLeadershipDevelopment) TableName() string { return "cell_leadership_development" }
