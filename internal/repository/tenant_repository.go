package repository

import (
	"context"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/database"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTenantRepository is a GORM implementation of TenantRepository.
// PT is the pointer type of T, which must embed models.TenantModel.
type GormTenantRepository[T any, PT interface {
	*T
	models.TenantRecord
}] struct {
	db *gorm.DB
}

// NewTenantRepository creates a new TenantRepository for T
func NewTenantRepository[T any, PT interface {
	*T
	models.TenantRecord
}](db *gorm.DB) TenantRepository[T] {
	return &GormTenantRepository[T, PT]{db: db}
}

func softDeletable[T any]() bool {
	_, ok := any(new(T)).(models.SoftDeletable)
	return ok
}

// Create inserts row for the church
func (r *GormTenantRepository[T, PT]) Create(ctx context.Context, churchID uint64, row *T) error {
	PT(row).SetChurchID(churchID)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

// FindByID finds a row of the church by ID with optional preloading
func (r *GormTenantRepository[T, PT]) FindByID(ctx context.Context, churchID, id uint64, preload ...string) (*T, error) {
	var row T
	query := r.db.WithContext(ctx).Scopes(database.ForChurch(churchID))

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List retrieves rows of the church with filtering and pagination
func (r *GormTenantRepository[T, PT]) List(ctx context.Context, churchID uint64, opts ListOptions) ([]T, int64, error) {
	rows := []T{}

	query := r.db.WithContext(ctx).Model(new(T)).Scopes(database.ForChurch(churchID))
	if len(opts.Filters) > 0 {
		query = query.Where(opts.Filters)
	}
	if softDeletable[T]() && !opts.IncludeInactive {
		query = query.Scopes(database.ActiveOnly)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query
	if opts.Order != "" {
		listQuery = listQuery.Order(opts.Order)
	} else {
		listQuery = listQuery.Order("id DESC")
	}
	if opts.Limit > 0 {
		listQuery = listQuery.Scopes(database.Paginate(opts.Offset, opts.Limit))
	}
	for _, p := range opts.Preload {
		listQuery = listQuery.Preload(p)
	}

	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Update writes every column of row except its identity, its tenant and omit
func (r *GormTenantRepository[T, PT]) Update(ctx context.Context, churchID uint64, row *T, omit ...string) error {
	if PT(row).GetChurchID() != churchID {
		return gorm.ErrRecordNotFound
	}

	result := r.db.WithContext(ctx).
		Model(row).
		Where("church_id = ?", churchID).
		Select("*").
		Omit(append([]string{"id", "church_id", "created_at", clause.Associations}, omit...)...).
		Updates(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a row permanently
func (r *GormTenantRepository[T, PT]) Delete(ctx context.Context, churchID, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("church_id = ?", churchID).
		Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate clears the is_active flag of a row
func (r *GormTenantRepository[T, PT]) Deactivate(ctx context.Context, churchID, id uint64) error {
	result := r.db.WithContext(ctx).
		Model(new(T)).
		Where("church_id = ? AND id = ?", churchID, id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count counts rows of the church matching filters
func (r *GormTenantRepository[T, PT]) Count(ctx context.Context, churchID uint64, filters map[string]interface{}) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(new(T)).Scopes(database.ForChurch(churchID))
	if len(filters) > 0 {
		query = query.Where(filters)
	}
	err := query.Count(&count).Error
	return count, err
}
