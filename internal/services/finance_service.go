package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/stats"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInvalidTransaction    = errors.New("transaction type must be income or expense")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryTypeMismatch  = errors.New("category type does not match transaction type")
	ErrAccountNotFound       = errors.New("account not found")
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrInactiveFinanceTarget = errors.New("account or campaign is inactive")
)

// FinanceService records ledger transactions and builds the monthly overview.
type FinanceService struct {
	categories repository.TenantRepository[models.FinancialCategory]
	accounts   repository.TenantRepository[models.FinancialAccount]
	campaigns  repository.TenantRepository[models.FinancialCampaign]
	repo       repository.FinanceRepository
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(
	categories repository.TenantRepository[models.FinancialCategory],
	accounts repository.TenantRepository[models.FinancialAccount],
	campaigns repository.TenantRepository[models.FinancialCampaign],
	repo repository.FinanceRepository,
) *FinanceService {
	return &FinanceService{
		categories: categories,
		accounts:   accounts,
		campaigns:  campaigns,
		repo:       repo,
	}
}

// RecordTransaction stores t and applies it to its account and campaign.
func (s *FinanceService) RecordTransaction(ctx context.Context, churchID uint64, t *models.FinancialTransaction) error {
	if t.Type != models.TransactionIncome && t.Type != models.TransactionExpense {
		return ErrInvalidTransaction
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}

	if t.CategoryID != nil {
		category, err := s.categories.FindByID(ctx, churchID, *t.CategoryID)
		if err != nil {
			return notFoundAs(err, ErrCategoryNotFound)
		}
		if category.Type != t.Type {
			return ErrCategoryTypeMismatch
		}
	}
	if t.AccountID != nil {
		account, err := s.accounts.FindByID(ctx, churchID, *t.AccountID)
		if err != nil {
			return notFoundAs(err, ErrAccountNotFound)
		}
		if !account.IsActive {
			return ErrInactiveFinanceTarget
		}
	}
	if t.CampaignID != nil {
		campaign, err := s.campaigns.FindByID(ctx, churchID, *t.CampaignID)
		if err != nil {
			return notFoundAs(err, ErrCampaignNotFound)
		}
		if !campaign.IsActive {
			return ErrInactiveFinanceTarget
		}
	}

	t.ChurchID = churchID
	if err := s.repo.CreateTransaction(ctx, t); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes a transaction and reverts its balance effects.
func (s *FinanceService) DeleteTransaction(ctx context.Context, churchID, id uint64) error {
	if err := s.repo.DeleteTransaction(ctx, churchID, id); err != nil {
		return notFoundAs(err, ErrTransactionNotFound)
	}
	return nil
}

// Overview summarizes the ledger for the month window w.
func (s *FinanceService) Overview(ctx context.Context, churchID uint64, w stats.Window) (*stats.FinanceOverview, error) {
	transactions, err := s.repo.TransactionsBetween(ctx, churchID, w.From, w.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	campaigns, _, err := s.campaigns.List(ctx, churchID, repository.ListOptions{Order: "name ASC"})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	overview := stats.BuildFinanceOverview(transactions, campaigns, w)
	return &overview, nil
}

func notFoundAs(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
