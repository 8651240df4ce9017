package models

import (
	"gorm.io/datatypes"
)

// SpiritualStatus is an ordered classification. The order is informative
// only; any transition between statuses is allowed.
type SpiritualStatus string

const (
	StatusVisitor    SpiritualStatus = "visitante"
	StatusNewConvert SpiritualStatus = "novo_convertido"
	StatusMember     SpiritualStatus = "membro"
	StatusLeader     SpiritualStatus = "lider"
	StatusDiscipler  SpiritualStatus = "discipulador"
)

// SpiritualStatuses is ordered from visitor to discipler.
var SpiritualStatuses = []SpiritualStatus{
	StatusVisitor,
	StatusNewConvert,
	StatusMember,
	StatusLeader,
	StatusDiscipler,
}

// Rank returns the position of s in SpiritualStatuses, or -1.
func (s SpiritualStatus) Rank() int {
	for i, status := range SpiritualStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

type Member struct {
	TenantModel
	Activatable
	FullName        string          `gorm:"type:varchar(255);not null;index" json:"full_name"`
	Email           string          `gorm:"type:varchar(255)" json:"email"`
	Phone           string          `gorm:"type:varchar(40)" json:"phone"`
	BirthDate       *datatypes.Date `json:"birth_date"`
	Gender          string          `gorm:"type:varchar(20)" json:"gender"`
	MaritalStatus   string          `gorm:"type:varchar(20)" json:"marital_status"`
	Address         string          `gorm:"type:text" json:"address"`
	SpiritualStatus SpiritualStatus `gorm:"type:varchar(30);not null;default:'visitante'" json:"spiritual_status"`
	ConversionDate  *datatypes.Date `json:"conversion_date"`
	BaptismDate     *datatypes.Date `json:"baptism_date"`
	CongregationID  *uint64         `json:"congregation_id"`
	Notes           string          `gorm:"type:text" json:"notes"`
}
