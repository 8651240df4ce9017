package dto

import (
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/stats"
)

type CreateCellRequest struct {
	Name           string  `json:"name" binding:"required,max=255"`
	Description    string  `json:"description"`
	LeaderID       *uint64 `json:"leader_id"`
	SupervisorID   *uint64 `json:"supervisor_id"`
	CongregationID *uint64 `json:"congregation_id"`
	Host           string  `json:"host" binding:"max=255"`
	Address        string  `json:"address"`
	MeetingDay     string  `json:"meeting_day" binding:"max=20"`
	MeetingTime    string  `json:"meeting_time" binding:"omitempty,datetime=15:04"`
}

func (r *CreateCellRequest) Build() (*models.Cell, error) {
	return &models.Cell{
		Name:           trimmed(r.Name),
		Description:    r.Description,
		LeaderID:       ref(r.LeaderID),
		SupervisorID:   ref(r.SupervisorID),
		CongregationID: ref(r.CongregationID),
		Host:           trimmed(r.Host),
		Address:        r.Address,
		MeetingDay:     r.MeetingDay,
		MeetingTime:    r.MeetingTime,
	}, nil
}

type UpdateCellRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description    *string `json:"description"`
	LeaderID       *uint64 `json:"leader_id"`
	SupervisorID   *uint64 `json:"supervisor_id"`
	CongregationID *uint64 `json:"congregation_id"`
	Host           *string `json:"host" binding:"omitempty,max=255"`
	Address        *string `json:"address"`
	MeetingDay     *string `json:"meeting_day" binding:"omitempty,max=20"`
	MeetingTime    *string `json:"meeting_time" binding:"omitempty,datetime=15:04"`
	IsActive       *bool   `json:"is_active"`
}

func (r *UpdateCellRequest) Apply(c *models.Cell) error {
	setTrimmed(&c.Name, r.Name)
	set(&c.Description, r.Description)
	setRef(&c.LeaderID, r.LeaderID)
	setRef(&c.SupervisorID, r.SupervisorID)
	setRef(&c.CongregationID, r.CongregationID)
	setTrimmed(&c.Host, r.Host)
	set(&c.Address, r.Address)
	set(&c.MeetingDay, r.MeetingDay)
	set(&c.MeetingTime, r.MeetingTime)
	set(&c.IsActive, r.IsActive)
	return nil
}

// CellDTO is a cell with the display status of its leader.
type CellDTO struct {
	models.Cell
	LeaderStatus string `json:"leader_status"`
}

// ToCellDTO expects the Leader association to be preloaded.
func ToCellDTO(c *models.Cell) CellDTO {
	var leaderName *string
	if c.Leader != nil && c.Leader.IsActive {
		leaderName = &c.Leader.FullName
	}
	return CellDTO{Cell: *c, LeaderStatus: stats.LeaderStatus(leaderName)}
}

type AddCellMemberRequest struct {
	MemberID uint64 `json:"member_id" binding:"required"`
}

// SubmitCellReportRequest is a meeting report with its presence roster.
type SubmitCellReportRequest struct {
	ReportDate       string       `json:"report_date" binding:"required,datetime=2006-01-02"`
	PresentMemberIDs []uint64     `json:"present_member_ids"`
	AbsentMemberIDs  []uint64     `json:"absent_member_ids"`
	Visitors         int          `json:"visitors" binding:"gte=0"`
	Conversions      int          `json:"conversions" binding:"gte=0"`
	Offering         models.Money `json:"offering" binding:"gte=0"`
	Notes            string       `json:"notes"`
}

type CreateCellVisitorRequest struct {
	CellID    uint64  `json:"cell_id" binding:"required"`
	Name      string  `json:"name" binding:"required,max=255"`
	Phone     string  `json:"phone" binding:"max=40"`
	VisitDate string  `json:"visit_date" binding:"required,datetime=2006-01-02"`
	InvitedBy *uint64 `json:"invited_by"`
	Converted bool    `json:"converted"`
	Notes     string  `json:"notes"`
}

func (r *CreateCellVisitorRequest) Build() (*models.CellVisitor, error) {
	date, err := ParseDate(r.VisitDate)
	if err != nil {
		return nil, err
	}
	return &models.CellVisitor{
		CellID:    r.CellID,
		Name:      trimmed(r.Name),
		Phone:     trimmed(r.Phone),
		VisitDate: date,
		InvitedBy: ref(r.InvitedBy),
		Converted: r.Converted,
		Notes:     r.Notes,
	}, nil
}

type UpdateCellVisitorRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=40"`
	VisitDate *string `json:"visit_date" binding:"omitempty,datetime=2006-01-02"`
	InvitedBy *uint64 `json:"invited_by"`
	Converted *bool   `json:"converted"`
	Notes     *string `json:"notes"`
}

func (r *UpdateCellVisitorRequest) Apply(v *models.CellVisitor) error {
	setTrimmed(&v.Name, r.Name)
	setTrimmed(&v.Phone, r.Phone)
	setRef(&v.InvitedBy, r.InvitedBy)
	set(&v.Converted, r.Converted)
	set(&v.Notes, r.Notes)
	return patchRequiredDate(&v.VisitDate, r.VisitDate)
}

type CreateCellPrayerRequest struct {
	CellID   uint64  `json:"cell_id" binding:"required"`
	MemberID *uint64 `json:"member_id"`
	Request  string  `json:"request" binding:"required"`
	Status   string  `json:"status" binding:"omitempty,oneof=open answered closed"`
}

func (r *CreateCellPrayerRequest) Build() (*models.CellPrayerRequest, error) {
	return &models.CellPrayerRequest{
		CellID:   r.CellID,
		MemberID: ref(r.MemberID),
		Request:  trimmed(r.Request),
		Status:   r.Status,
	}, nil
}

type UpdateCellPrayerRequest struct {
	MemberID *uint64 `json:"member_id"`
	Request  *string `json:"request" binding:"omitempty,min=1"`
	Status   *string `json:"status" binding:"omitempty,oneof=open answered closed"`
}

func (r *UpdateCellPrayerRequest) Apply(p *models.CellPrayerRequest) error {
	setRef(&p.MemberID, r.MemberID)
	setTrimmed(&p.Request, r.Request)
	set(&p.Status, r.Status)
	return nil
}

type CreateCellPastoralCareRequest struct {
	CellID   uint64 `json:"cell_id" binding:"required"`
	MemberID uint64 `json:"member_id" binding:"required"`
	CareDate string `json:"care_date" binding:"required,datetime=2006-01-02"`
	CareType string `json:"care_type" binding:"max=40"`
	Notes    string `json:"notes"`
}

func (r *CreateCellPastoralCareRequest) Build() (*models.CellPastoralCare, error) {
	date, err := ParseDate(r.CareDate)
	if err != nil {
		return nil, err
	}
	return &models.CellPastoralCare{
		CellID:   r.CellID,
		MemberID: r.MemberID,
		CareDate: date,
		CareType: r.CareType,
		Notes:    r.Notes,
	}, nil
}

type UpdateCellPastoralCareRequest struct {
	CareDate *string `json:"care_date" binding:"omitempty,datetime=2006-01-02"`
	CareType *string `json:"care_type" binding:"omitempty,max=40"`
	Notes    *string `json:"notes"`
}

func (r *UpdateCellPastoralCareRequest) Apply(p *models.CellPastoralCare) error {
	set(&p.CareType, r.CareType)
	set(&p.Notes, r.Notes)
	return patchRequiredDate(&p.CareDate, r.CareDate)
}

type CreateLeadershipDevelopmentRequest struct {
	CellID    uint64  `json:"cell_id" binding:"required"`
	MemberID  uint64  `json:"member_id" binding:"required"`
	Stage     string  `json:"stage" binding:"required,max=40"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	Notes     string  `json:"notes"`
}

func (r *CreateLeadershipDevelopmentRequest) Build() (*models.CellLeadershipDevelopment, error) {
	start, err := optionalDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	return &models.CellLeadershipDevelopment{
		CellID:    r.CellID,
		MemberID:  r.MemberID,
		Stage:     trimmed(r.Stage),
		StartDate: start,
		Notes:     r.Notes,
	}, nil
}

type UpdateLeadershipDevelopmentRequest struct {
	Stage     *string `json:"stage" binding:"omitempty,min=1,max=40"`
	StartDate *string `json:"start_date"`
	Notes     *string `json:"notes"`
}

func (r *UpdateLeadershipDevelopmentRequest) Apply(l *models.CellLeadershipDevelopment) error {
	setTrimmed(&l.Stage, r.Stage)
	set(&l.Notes, r.Notes)
	return patchDate(&l.StartDate, r.StartDate)
}
