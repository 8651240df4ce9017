package repository

import (
	"context"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"gorm.io/gorm"
)

// GormChurchRepository is a GORM implementation of ChurchRepository
type GormChurchRepository struct {
	db *gorm.DB
}

// NewChurchRepository creates a new ChurchRepository
func NewChurchRepository(db *gorm.DB) ChurchRepository {
	return &GormChurchRepository{db: db}
}

// FindByID finds a church by ID
func (r *GormChurchRepository) FindByID(ctx context.Context, id uint64) (*models.Church, error) {
	var church models.Church
	if err := r.db.WithContext(ctx).First(&church, id).Error; err != nil {
		return nil, err
	}
	return &church, nil
}

// SlugExists reports whether a church already uses slug
func (r *GormChurchRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&models.Church{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// Update updates a church
func (r *GormChurchRepository) Update(ctx context.Context, church *models.Church) error {
	return r.db.WithContext(ctx).Save(church).Error
}

// CountActiveMembers counts active members of the church
func (r *GormChurchRepository) CountActiveMembers(ctx context.Context, churchID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("church_id = ? AND is_active = ?", churchID, true).
		Count(&count).Error
	return count, err
}
