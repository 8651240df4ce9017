package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"gorm.io/gorm"
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateChurch is returned when creating the church fails inside the signup transaction.
	ErrCreateChurch = errors.New("profile repository: create church failed")
	// ErrCreateProfile is returned when creating the profile fails inside a provisioning transaction.
	ErrCreateProfile = errors.New("profile repository: create profile failed")
	// ErrCreateRole is returned when assigning the role fails inside a provisioning transaction.
	ErrCreateRole = errors.New("profile repository: create role failed")
)

// ProfileWithRole is a profile joined with its role in the church.
type ProfileWithRole struct {
	models.Profile
	Role models.Role `json:"role"`
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// CreateWithChurch creates a church, its admin profile and the admin role atomically.
func (r *GormProfileRepository) CreateWithChurch(ctx context.Context, church *models.Church, profile *models.Profile, role *models.UserRole) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(church).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateChurch, err)
		}

		profile.ChurchID = church.ID
		if err := tx.Omit("Church").Create(profile).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProfile, err)
		}

		role.ProfileID = profile.ID
		role.ChurchID = church.ID
		if err := tx.Create(role).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateRole, err)
		}

		return nil
	})
}

// FindByID finds a profile by ID
func (r *GormProfileRepository) FindByID(ctx context.Context, id uint64) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Preload("Church").First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByEmail finds a profile by email
func (r *GormProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindRole finds the role of a profile within a church
func (r *GormProfileRepository) FindRole(ctx context.Context, profileID, churchID uint64) (*models.UserRole, error) {
	var role models.UserRole
	if err := r.db.WithContext(ctx).
		Where("profile_id = ? AND church_id = ?", profileID, churchID).
		First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// ListByChurch lists the profiles of a church with their roles
func (r *GormProfileRepository) ListByChurch(ctx context.Context, churchID uint64) ([]ProfileWithRole, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Where("church_id = ?", churchID).
		Order("full_name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}

	var roles []models.UserRole
	if err := r.db.WithContext(ctx).
		Where("church_id = ?", churchID).
		Find(&roles).Error; err != nil {
		return nil, err
	}

	byProfile := make(map[uint64]models.Role, len(roles))
	for _, role := range roles {
		byProfile[role.ProfileID] = role.Role
	}

	result := make([]ProfileWithRole, len(profiles))
	for i, p := range profiles {
		result[i] = ProfileWithRole{Profile: p, Role: byProfile[p.ID]}
	}
	return result, nil
}

// UpdateRole changes the role of a profile within a church
func (r *GormProfileRepository) UpdateRole(ctx context.Context, profileID, churchID uint64, role models.Role) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("profile_id = ? AND church_id = ?", profileID, churchID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LinkMember links a profile to a member record
func (r *GormProfileRepository) LinkMember(ctx context.Context, profileID, churchID uint64, memberID *uint64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ? AND church_id = ?", profileID, churchID).
		Updates(map[string]interface{}{"member_id": memberID, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
