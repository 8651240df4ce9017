package dto

import (
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
)

type CreateConsolidationRequest struct {
	MemberID       uint64  `json:"member_id" binding:"required"`
	ConsolidatorID *uint64 `json:"consolidator_id"`
	Status         string  `json:"status" binding:"omitempty,oneof=pending contacted integrated lost"`
	ContactDate    *string `json:"contact_date" binding:"omitempty,datetime=2006-01-02"`
	Notes          string  `json:"notes"`
}

func (r *CreateConsolidationRequest) Build() (*models.ConsolidationRecord, error) {
	contact, err := optionalDate(r.ContactDate)
	if err != nil {
		return nil, err
	}
	return &models.ConsolidationRecord{
		MemberID:       r.MemberID,
		ConsolidatorID: ref(r.ConsolidatorID),
		Status:         r.Status,
		ContactDate:    contact,
		Notes:          r.Notes,
	}, nil
}

type UpdateConsolidationRequest struct {
	ConsolidatorID *uint64 `json:"consolidator_id"`
	Status         *string `json:"status" binding:"omitempty,oneof=pending contacted integrated lost"`
	ContactDate    *string `json:"contact_date"`
	Notes          *string `json:"notes"`
}

func (r *UpdateConsolidationRequest) Apply(c *models.ConsolidationRecord) error {
	setRef(&c.ConsolidatorID, r.ConsolidatorID)
	set(&c.Status, r.Status)
	set(&c.Notes, r.Notes)
	return patchDate(&c.ContactDate, r.ContactDate)
}

type CreateDiscipleshipRequest struct {
	DisciplerID uint64  `json:"discipler_id" binding:"required"`
	DiscipleID  uint64  `json:"disciple_id" binding:"required,nefield=DisciplerID"`
	Status      string  `json:"status" binding:"omitempty,oneof=active completed paused"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	Notes       string  `json:"notes"`
}

func (r *CreateDiscipleshipRequest) Build() (*models.Discipleship, error) {
	start, err := optionalDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	return &models.Discipleship{
		DisciplerID: r.DisciplerID,
		DiscipleID:  r.DiscipleID,
		Status:      r.Status,
		StartDate:   start,
		Notes:       r.Notes,
	}, nil
}

type UpdateDiscipleshipRequest struct {
	Status    *string `json:"status" binding:"omitempty,oneof=active completed paused"`
	StartDate *string `json:"start_date"`
	Notes     *string `json:"notes"`
}

func (r *UpdateDiscipleshipRequest) Apply(d *models.Discipleship) error {
	set(&d.Status, r.Status)
	set(&d.Notes, r.Notes)
	return patchDate(&d.StartDate, r.StartDate)
}

type CreatePastoralVisitRequest struct {
	MemberID  *uint64 `json:"member_id"`
	PastorID  *uint64 `json:"pastor_id"`
	VisitDate string  `json:"visit_date" binding:"required,datetime=2006-01-02"`
	Reason    string  `json:"reason" binding:"max=255"`
	Notes     string  `json:"notes"`
}

func (r *CreatePastoralVisitRequest) Build() (*models.PastoralVisit, error) {
	date, err := ParseDate(r.VisitDate)
	if err != nil {
		return nil, err
	}
	return &models.PastoralVisit{
		MemberID:  ref(r.MemberID),
		PastorID:  ref(r.PastorID),
		VisitDate: date,
		Reason:    trimmed(r.Reason),
		Notes:     r.Notes,
	}, nil
}

type UpdatePastoralVisitRequest struct {
	MemberID  *uint64 `json:"member_id"`
	PastorID  *uint64 `json:"pastor_id"`
	VisitDate *string `json:"visit_date" binding:"omitempty,datetime=2006-01-02"`
	Reason    *string `json:"reason" binding:"omitempty,max=255"`
	Notes     *string `json:"notes"`
}

func (r *UpdatePastoralVisitRequest) Apply(v *models.PastoralVisit) error {
	setRef(&v.MemberID, r.MemberID)
	setRef(&v.PastorID, r.PastorID)
	setTrimmed(&v.Reason, r.Reason)
	set(&v.Notes, r.Notes)
	return patchRequiredDate(&v.VisitDate, r.VisitDate)
}

type CreateCounselingRequest struct {
	MemberID       uint64  `json:"member_id" binding:"required"`
	CounselorID    *uint64 `json:"counselor_id"`
	SessionDate    string  `json:"session_date" binding:"required,datetime=2006-01-02"`
	Topic          string  `json:"topic" binding:"max=255"`
	Notes          string  `json:"notes"`
	IsConfidential *bool   `json:"is_confidential"`
}

func (r *CreateCounselingRequest) Build() (*models.PastoralCounseling, error) {
	date, err := ParseDate(r.SessionDate)
	if err != nil {
		return nil, err
	}
	c := &models.PastoralCounseling{
		MemberID:       r.MemberID,
		CounselorID:    ref(r.CounselorID),
		SessionDate:    date,
		Topic:          trimmed(r.Topic),
		Notes:          r.Notes,
		IsConfidential: true,
	}
	set(&c.IsConfidential, r.IsConfidential)
	return c, nil
}

type UpdateCounselingRequest struct {
	CounselorID    *uint64 `json:"counselor_id"`
	SessionDate    *string `json:"session_date" binding:"omitempty,datetime=2006-01-02"`
	Topic          *string `json:"topic" binding:"omitempty,max=255"`
	Notes          *string `json:"notes"`
	IsConfidential *bool   `json:"is_confidential"`
}

func (r *UpdateCounselingRequest) Apply(c *models.PastoralCounseling) error {
	setRef(&c.CounselorID, r.CounselorID)
	setTrimmed(&c.Topic, r.Topic)
	set(&c.Notes, r.Notes)
	set(&c.IsConfidential, r.IsConfidential)
	return patchRequiredDate(&c.SessionDate, r.SessionDate)
}
