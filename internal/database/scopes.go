package database

import (
	"gorm.io/gorm"
)

// Paginate applies pagination to a GORM query
func Paginate(offset, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(limit)
	}
}

// ForChurch restricts a query to one tenant.
func ForChurch(churchID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("church_id = ?", churchID)
	}
}

// ActiveOnly excludes soft-deleted rows.
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
