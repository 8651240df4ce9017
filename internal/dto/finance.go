package dto

import (
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
)

type CreateFinancialCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Type string `json:"type" binding:"required,oneof=income expense"`
}

func (r *CreateFinancialCategoryRequest) Build() (*models.FinancialCategory, error) {
	return &models.FinancialCategory{
		Name: trimmed(r.Name),
		Type: models.TransactionType(r.Type),
	}, nil
}

// UpdateFinancialCategoryRequest renames a category. Its type is fixed.
type UpdateFinancialCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=255"`
}

func (r *UpdateFinancialCategoryRequest) Apply(c *models.FinancialCategory) error {
	setTrimmed(&c.Name, r.Name)
	return nil
}

type CreateFinancialAccountRequest struct {
	Name           string       `json:"name" binding:"required,max=255"`
	AccountType    string       `json:"account_type" binding:"max=40"`
	InitialBalance models.Money `json:"initial_balance"`
}

func (r *CreateFinancialAccountRequest) Build() (*models.FinancialAccount, error) {
	return &models.FinancialAccount{
		Name:           trimmed(r.Name),
		AccountType:    r.AccountType,
		InitialBalance: r.InitialBalance,
	}, nil
}

type UpdateFinancialAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	AccountType *string `json:"account_type" binding:"omitempty,max=40"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdateFinancialAccountRequest) Apply(a *models.FinancialAccount) error {
	setTrimmed(&a.Name, r.Name)
	set(&a.AccountType, r.AccountType)
	set(&a.IsActive, r.IsActive)
	return nil
}

type CreateFinancialCampaignRequest struct {
	Name        string       `json:"name" binding:"required,max=255"`
	Description string       `json:"description"`
	GoalAmount  models.Money `json:"goal_amount" binding:"gte=0"`
	StartDate   *string      `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string      `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *CreateFinancialCampaignRequest) Build() (*models.FinancialCampaign, error) {
	c := &models.FinancialCampaign{
		Name:        trimmed(r.Name),
		Description: r.Description,
		GoalAmount:  r.GoalAmount,
	}
	var err error
	if c.StartDate, err = optionalDate(r.StartDate); err != nil {
		return nil, err
	}
	if c.EndDate, err = optionalDate(r.EndDate); err != nil {
		return nil, err
	}
	return c, nil
}

type UpdateFinancialCampaignRequest struct {
	Name        *string       `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string       `json:"description"`
	GoalAmount  *models.Money `json:"goal_amount" binding:"omitempty,gte=0"`
	StartDate   *string       `json:"start_date"`
	EndDate     *string       `json:"end_date"`
	IsActive    *bool         `json:"is_active"`
}

func (r *UpdateFinancialCampaignRequest) Apply(c *models.FinancialCampaign) error {
	setTrimmed(&c.Name, r.Name)
	set(&c.Description, r.Description)
	set(&c.GoalAmount, r.GoalAmount)
	set(&c.IsActive, r.IsActive)
	if err := patchDate(&c.StartDate, r.StartDate); err != nil {
		return err
	}
	return patchDate(&c.EndDate, r.EndDate)
}

type CreateFinancialTransactionRequest struct {
	Type            string       `json:"type" binding:"required,oneof=income expense"`
	Amount          models.Money `json:"amount" binding:"required,gt=0"`
	CategoryID      *uint64      `json:"category_id"`
	AccountID       *uint64      `json:"account_id"`
	CampaignID      *uint64      `json:"campaign_id"`
	MemberID        *uint64      `json:"member_id"`
	TransactionDate string       `json:"transaction_date" binding:"required,datetime=2006-01-02"`
	Description     string       `json:"description"`
	PaymentMethod   string       `json:"payment_method" binding:"max=40"`
}

func (r *CreateFinancialTransactionRequest) Build() (*models.FinancialTransaction, error) {
	date, err := ParseDate(r.TransactionDate)
	if err != nil {
		return nil, err
	}
	return &models.FinancialTransaction{
		Type:            models.TransactionType(r.Type),
		Amount:          r.Amount,
		CategoryID:      ref(r.CategoryID),
		AccountID:       ref(r.AccountID),
		CampaignID:      ref(r.CampaignID),
		MemberID:        ref(r.MemberID),
		TransactionDate: date,
		Description:     r.Description,
		PaymentMethod:   r.PaymentMethod,
	}, nil
}

// UpdateFinancialTransactionRequest edits the descriptive fields only.
// Amount, type, category, account and campaign are fixed once recorded;
// delete and record again to change them.
type UpdateFinancialTransactionRequest struct {
	MemberID        *uint64 `json:"member_id"`
	TransactionDate *string `json:"transaction_date" binding:"omitempty,datetime=2006-01-02"`
	Description     *string `json:"description"`
	PaymentMethod   *string `json:"payment_method" binding:"omitempty,max=40"`
}

func (r *UpdateFinancialTransactionRequest) Apply(t *models.FinancialTransaction) error {
	setRef(&t.MemberID, r.MemberID)
	set(&t.Description, r.Description)
	set(&t.PaymentMethod, r.PaymentMethod)
	return patchRequiredDate(&t.TransactionDate, r.TransactionDate)
}
