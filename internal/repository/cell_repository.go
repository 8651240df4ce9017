package repository

import (
	"context"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCellRepository is a GORM implementation of CellRepository
type GormCellRepository struct {
	db *gorm.DB
}

// NewCellRepository creates a new CellRepository
func NewCellRepository(db *gorm.DB) CellRepository {
	return &GormCellRepository{db: db}
}

// AddMember adds a member to a cell; adding twice is a no-op
func (r *GormCellRepository) AddMember(ctx context.Context, member *models.CellMember) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cell_id"}, {Name: "member_id"}},
			DoNothing: true,
		}).
		Create(member).Error
}

// RemoveMember removes a member from a cell
func (r *GormCellRepository) RemoveMember(ctx context.Context, churchID, cellID, memberID uint64) error {
	result := r.db.WithContext(ctx).
		Where("church_id = ? AND cell_id = ? AND member_id = ?", churchID, cellID, memberID).
		Delete(&models.CellMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListMembers lists the members of a cell
func (r *GormCellRepository) ListMembers(ctx context.Context, churchID, cellID uint64) ([]models.CellMember, error) {
	members := []models.CellMember{}
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Where("church_id = ? AND cell_id = ?", churchID, cellID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// MemberIDs returns the member IDs of a cell
func (r *GormCellRepository) MemberIDs(ctx context.Context, churchID, cellID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&models.CellMember{}).
		Where("church_id = ? AND cell_id = ?", churchID, cellID).
		Pluck("member_id", &ids).Error
	return ids, err
}

// CellIDsForMember returns the cells a member belongs to
func (r *GormCellRepository) CellIDsForMember(ctx context.Context, churchID, memberID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&models.CellMember{}).
		Where("church_id = ? AND member_id = ?", churchID, memberID).
		Pluck("cell_id", &ids).Error
	return ids, err
}

// CreateReport stores a report together with its roster
func (r *GormCellRepository) CreateReport(ctx context.Context, report *models.CellReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roster := report.Roster
		if err := tx.Omit(clause.Associations).Create(report).Error; err != nil {
			return err
		}

		if len(roster) == 0 {
			return nil
		}
		for i := range roster {
			roster[i].ReportID = report.ID
			roster[i].ChurchID = report.ChurchID
		}
		if err := tx.Create(&roster).Error; err != nil {
			return err
		}
		report.Roster = roster
		return nil
	})
}

// DeleteReport removes a report together with its roster
func (r *GormCellRepository) DeleteReport(ctx context.Context, churchID, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("church_id = ?", churchID).Delete(&models.CellReport{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("church_id = ? AND report_id = ?", churchID, id).
			Delete(&models.CellReportAttendance{}).Error
	})
}

// ListReports lists reports newest first
func (r *GormCellRepository) ListReports(ctx context.Context, churchID, cellID uint64, from, to *time.Time) ([]models.CellReport, error) {
	reports := []models.CellReport{}
	query := r.db.WithContext(ctx).Where("church_id = ?", churchID)
	if cellID != 0 {
		query = query.Where("cell_id = ?", cellID).Preload("Roster")
	}
	if from != nil {
		query = query.Where("report_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("report_date < ?", *to)
	}

	if err := query.Order("report_date DESC, id DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Summaries lists every active cell with its leader name and member count
func (r *GormCellRepository) Summaries(ctx context.Context, churchID uint64) ([]CellSummaryRow, error) {
	rows := []CellSummaryRow{}
	memberCount := r.db.Model(&models.CellMember{}).
		Select("COUNT(*)").
		Where("cell_members.cell_id = cells.id")

	err := r.db.WithContext(ctx).
		Table("cells").
		Select("cells.id, cells.name, cells.leader_id, cells.is_active, leaders.full_name AS leader_name, (?) AS member_count", memberCount).
		Joins("LEFT JOIN members leaders ON leaders.id = cells.leader_id AND leaders.church_id = cells.church_id").
		Where("cells.church_id = ? AND cells.is_active = ?", churchID, true).
		Order("cells.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if err := validateRows(rows); err != nil {
		return nil, err
	}
	return rows, nil
}
