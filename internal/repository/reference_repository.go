package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormReferenceRepository is a GORM implementation of ReferenceRepository
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a new ReferenceRepository
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &GormReferenceRepository{db: db}
}

// Exists reports whether table has a row id owned by the church.
// table must be a name chosen by the caller, never user input.
func (r *GormReferenceRepository) Exists(ctx context.Context, churchID uint64, table string, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table(table).
		Where("church_id = ? AND id = ?", churchID, id).
		Count(&count).Error
	return count > 0, err
}
