package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction represents a single budget entry (income or expense)
// recorded by a user.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description  string          `gorm:"type:text" json:"description"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	Type         string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Category     string          `gorm:"type:varchar(100);not null" json:"category"`
	CategoryIcon string          `gorm:"type:varchar(20)" json:"category_icon,omitempty"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.Date.IsZero() {
		t.Date = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Category == "" {
		return errors.New("transaction category is required")
	}

	return nil
}

// IsIncome returns true if the transaction adds to the budget
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// TransactionTypeTotal contains the aggregate sum of amounts for one
// transaction type across a user's records.
type TransactionTypeTotal struct {
	Type        string          `json:"type"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int64           `json:"count"`
}

// CategorySpending contains the aggregate sum of amounts grouped by
// (category, type) across a user's records.
type CategorySpending struct {
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int64           `json:"count"`
}
