package repository

import (
	"context"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFinanceRepository is a GORM implementation of FinanceRepository
type GormFinanceRepository struct {
	db *gorm.DB
}

// NewFinanceRepository creates a new FinanceRepository
func NewFinanceRepository(db *gorm.DB) FinanceRepository {
	return &GormFinanceRepository{db: db}
}

// CreateTransaction inserts a transaction and applies it to its account and campaign
func (r *GormFinanceRepository) CreateTransaction(ctx context.Context, t *models.FinancialTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(t).Error; err != nil {
			return err
		}
		return applyTransaction(tx, t, 1)
	})
}

// DeleteTransaction removes a transaction and reverts its effect
func (r *GormFinanceRepository) DeleteTransaction(ctx context.Context, churchID, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t models.FinancialTransaction
		if err := tx.Where("church_id = ?", churchID).First(&t, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.FinancialTransaction{}, t.ID).Error; err != nil {
			return err
		}
		return applyTransaction(tx, &t, -1)
	})
}

// TransactionsBetween lists transactions in [from, to), newest first
func (r *GormFinanceRepository) TransactionsBetween(ctx context.Context, churchID uint64, from, to time.Time) ([]models.FinancialTransaction, error) {
	transactions := []models.FinancialTransaction{}
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("church_id = ? AND transaction_date >= ? AND transaction_date < ?", churchID, from, to).
		Order("transaction_date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// applyTransaction adds sign*amount to the account balance and, for income
// linked to a campaign, to the campaign total.
func applyTransaction(tx *gorm.DB, t *models.FinancialTransaction, sign int64) error {
	if t.AccountID != nil {
		delta := int64(t.SignedAmount()) * sign
		result := tx.Model(&models.FinancialAccount{}).
			Where("church_id = ? AND id = ?", t.ChurchID, *t.AccountID).
			Update("current_balance", gorm.Expr("current_balance + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
	}

	if t.CampaignID != nil && t.Type == models.TransactionIncome {
		delta := int64(t.Amount) * sign
		result := tx.Model(&models.FinancialCampaign{}).
			Where("church_id = ? AND id = ?", t.ChurchID, *t.CampaignID).
			Update("current_amount", gorm.Expr("current_amount + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}
