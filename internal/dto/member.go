package dto

import (
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
)

type CreateMemberRequest struct {
	FullName        string  `json:"full_name" binding:"required,max=255"`
	Email           string  `json:"email" binding:"omitempty,email,max=255"`
	Phone           string  `json:"phone" binding:"max=40"`
	BirthDate       *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Gender          string  `json:"gender" binding:"max=20"`
	MaritalStatus   string  `json:"marital_status" binding:"max=20"`
	Address         string  `json:"address"`
	SpiritualStatus string  `json:"spiritual_status" binding:"omitempty,oneof=visitante novo_convertido membro lider discipulador"`
	ConversionDate  *string `json:"conversion_date" binding:"omitempty,datetime=2006-01-02"`
	BaptismDate     *string `json:"baptism_date" binding:"omitempty,datetime=2006-01-02"`
	CongregationID  *uint64 `json:"congregation_id"`
	Notes           string  `json:"notes"`
}

func (r *CreateMemberRequest) Build() (*models.Member, error) {
	m := &models.Member{
		FullName:        trimmed(r.FullName),
		Email:           trimmed(r.Email),
		Phone:           trimmed(r.Phone),
		Gender:          r.Gender,
		MaritalStatus:   r.MaritalStatus,
		Address:         r.Address,
		SpiritualStatus: models.SpiritualStatus(r.SpiritualStatus),
		CongregationID:  ref(r.CongregationID),
		Notes:           r.Notes,
	}
	if m.SpiritualStatus == "" {
		m.SpiritualStatus = models.StatusVisitor
	}

	var err error
	if m.BirthDate, err = optionalDate(r.BirthDate); err != nil {
		return nil, err
	}
	if m.ConversionDate, err = optionalDate(r.ConversionDate); err != nil {
		return nil, err
	}
	if m.BaptismDate, err = optionalDate(r.BaptismDate); err != nil {
		return nil, err
	}
	return m, nil
}

type UpdateMemberRequest struct {
	FullName        *string `json:"full_name" binding:"omitempty,min=1,max=255"`
	Email           *string `json:"email" binding:"omitempty,email,max=255"`
	Phone           *string `json:"phone" binding:"omitempty,max=40"`
	BirthDate       *string `json:"birth_date"`
	Gender          *string `json:"gender" binding:"omitempty,max=20"`
	MaritalStatus   *string `json:"marital_status" binding:"omitempty,max=20"`
	Address         *string `json:"address"`
	SpiritualStatus *string `json:"spiritual_status" binding:"omitempty,oneof=visitante novo_convertido membro lider discipulador"`
	ConversionDate  *string `json:"conversion_date"`
	BaptismDate     *string `json:"baptism_date"`
	CongregationID  *uint64 `json:"congregation_id"`
	Notes           *string `json:"notes"`
	IsActive        *bool   `json:"is_active"`
}

func (r *UpdateMemberRequest) Apply(m *models.Member) error {
	setTrimmed(&m.FullName, r.FullName)
	setTrimmed(&m.Email, r.Email)
	setTrimmed(&m.Phone, r.Phone)
	set(&m.Gender, r.Gender)
	set(&m.MaritalStatus, r.MaritalStatus)
	set(&m.Address, r.Address)
	if r.SpiritualStatus != nil {
		m.SpiritualStatus = models.SpiritualStatus(*r.SpiritualStatus)
	}
	setRef(&m.CongregationID, r.CongregationID)
	set(&m.Notes, r.Notes)
	set(&m.IsActive, r.IsActive)

	if err := patchDate(&m.BirthDate, r.BirthDate); err != nil {
		return err
	}
	if err := patchDate(&m.ConversionDate, r.ConversionDate); err != nil {
		return err
	}
	return patchDate(&m.BaptismDate, r.BaptismDate)
}

type CreateCongregationRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Address  string  `json:"address"`
	PastorID *uint64 `json:"pastor_id"`
}

func (r *CreateCongregationRequest) Build() (*models.Congregation, error) {
	return &models.Congregation{
		Name:     trimmed(r.Name),
		Address:  r.Address,
		PastorID: ref(r.PastorID),
	}, nil
}

type UpdateCongregationRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Address  *string `json:"address"`
	PastorID *uint64 `json:"pastor_id"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateCongregationRequest) Apply(c *models.Congregation) error {
	setTrimmed(&c.Name, r.Name)
	set(&c.Address, r.Address)
	setRef(&c.PastorID, r.PastorID)
	set(&c.IsActive, r.IsActive)
	return nil
}
