package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RolePastor    Role = "pastor"
	RoleSecretary Role = "secretario"
	RoleTreasurer Role = "tesoureiro"
	RoleLeader    Role = "lider"
	RoleMember    Role = "membro"
)

// AllRoles lists every assignable role.
var AllRoles = []Role{RoleAdmin, RolePastor, RoleSecretary, RoleTreasurer, RoleLeader, RoleMember}

func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Profile is a login identity inside one church.
type Profile struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	ChurchID     uint64         `gorm:"not null;index" json:"church_id"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName     string         `gorm:"type:varchar(255);not null" json:"full_name"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	MemberID     *uint64        `json:"member_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Church Church `gorm:"foreignKey:ChurchID" json:"-"`
}

// UserRole assigns a role to a profile within a church.
type UserRole struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ProfileID uint64    `gorm:"not null;uniqueIndex:idx_user_roles_profile_church" json:"profile_id"`
	ChurchID  uint64    `gorm:"not null;uniqueIndex:idx_user_roles_profile_church" json:"church_id"`
	Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionContext is the authenticated profile, its church and its role.
// It is resolved once per request and passed down explicitly.
type SessionContext struct {
	Profile Profile `json:"profile"`
	Church  Church  `json:"church"`
	Role    Role    `json:"role"`
}

func (s *SessionContext) ChurchID() uint64 { return s.Church.ID }

func (s *SessionContext) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
