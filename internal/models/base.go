package models

import (
	"time"
)

// TenantModel is embedded by every row that belongs to a church.
type TenantModel struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ChurchID  uint64    `gorm:"not null;index" json:"church_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *TenantModel) GetID() uint64 { return m.ID }

func (m *TenantModel) GetChurchID() uint64 { return m.ChurchID }

func (m *TenantModel) SetChurchID(id uint64) { m.ChurchID = id }

// TenantRecord is implemented by pointers to models embedding TenantModel.
type TenantRecord interface {
	GetID() uint64
	GetChurchID() uint64
	SetChurchID(id uint64)
}

// Activatable marks rows that are soft-deleted through an is_active flag.
type Activatable struct {
	IsActive bool `gorm:"not null;default:true;index" json:"is_active"`
}

func (a *Activatable) Active() bool { return a.IsActive }

func (a *Activatable) SetActive(active bool) { a.IsActive = active }

// SoftDeletable is implemented by rows embedding Activatable.
type SoftDeletable interface {
	Active() bool
	SetActive(active bool)
}
