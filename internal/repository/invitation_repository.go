package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"gorm.io/gorm"
)

// GormInvitationRepository is a GORM implementation of InvitationRepository
type GormInvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new InvitationRepository
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &GormInvitationRepository{db: db}
}

// Create stores a new invitation
func (r *GormInvitationRepository) Create(ctx context.Context, inv *models.Invitation) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

// FindByToken finds an invitation by its token, across churches
func (r *GormInvitationRepository) FindByToken(ctx context.Context, token string) (*models.Invitation, error) {
	var inv models.Invitation
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindByID finds an invitation of a church
func (r *GormInvitationRepository) FindByID(ctx context.Context, churchID, id uint64) (*models.Invitation, error) {
	var inv models.Invitation
	if err := r.db.WithContext(ctx).
		Where("church_id = ?", churchID).
		First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListByChurch lists invitations of a church, newest first
func (r *GormInvitationRepository) ListByChurch(ctx context.Context, churchID uint64) ([]models.Invitation, error) {
	invitations := []models.Invitation{}
	if err := r.db.WithContext(ctx).
		Where("church_id = ?", churchID).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

// Delete removes an invitation
func (r *GormInvitationRepository) Delete(ctx context.Context, churchID, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("church_id = ?", churchID).
		Delete(&models.Invitation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Redeem creates the invited profile and its role and marks the invitation
// used. The mark-used update is conditional on used_at still being NULL so
// that two concurrent redemptions cannot both succeed.
func (r *GormInvitationRepository) Redeem(ctx context.Context, inv *models.Invitation, profile *models.Profile, usedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Invitation{}).
			Where("id = ? AND used_at IS NULL", inv.ID).
			Updates(map[string]interface{}{"used_at": usedAt, "updated_at": usedAt})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInvitationAlreadyUsed
		}

		profile.ChurchID = inv.ChurchID
		if err := tx.Omit("Church").Create(profile).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProfile, err)
		}

		role := &models.UserRole{
			ProfileID: profile.ID,
			ChurchID:  inv.ChurchID,
			Role:      inv.Role,
		}
		if err := tx.Create(role).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateRole, err)
		}

		inv.UsedAt = &usedAt
		return nil
	})
}
