package models

import (
	"gorm.io/datatypes"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type FinancialCategory struct {
	TenantModel
	Name string          `gorm:"type:varchar(255);not null" json:"name"`
	Type TransactionType `gorm:"type:varchar(20);not null" json:"type"`
}

// FinancialAccount keeps a running balance adjusted by every transaction.
type FinancialAccount struct {
	TenantModel
	Activatable
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	AccountType    string `gorm:"type:varchar(40)" json:"account_type"`
	InitialBalance Money  `gorm:"not null;default:0" json:"initial_balance"`
	CurrentBalance Money  `gorm:"not null;default:0" json:"current_balance"`
}

type FinancialCampaign struct {
	TenantModel
	Activatable
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	GoalAmount    Money           `gorm:"not null;default:0" json:"goal_amount"`
	CurrentAmount Money           `gorm:"not null;default:0" json:"current_amount"`
	StartDate     *datatypes.Date `json:"start_date"`
	EndDate       *datatypes.Date `json:"end_date"`
}

type FinancialTransaction struct {
	TenantModel
	Type            TransactionType `gorm:"type:varchar(20);not null;index" json:"type"`
	Amount          Money           `gorm:"not null" json:"amount"`
	CategoryID      *uint64         `json:"category_id"`
	AccountID       *uint64         `json:"account_id"`
	CampaignID      *uint64         `json:"campaign_id"`
	MemberID        *uint64         `json:"member_id"`
	TransactionDate datatypes.Date  `gorm:"not null;index" json:"transaction_date"`
	Description     string          `gorm:"type:text" json:"description"`
	PaymentMethod   string          `gorm:"type:varchar(40)" json:"payment_method"`

	Category *FinancialCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// SignedAmount is positive for income and negative for expense.
func (t *FinancialTransaction) SignedAmount() Money {
	if t.Type == TransactionExpense {
		return -t.Amount
	}
	return t.Amount
}
