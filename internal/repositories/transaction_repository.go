package repositories

import (
	"errors"
	"fmt"

	"budget-assistant/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetRecentByUserID retrieves the user's most recent transactions,
// newest first
func (r *transactionRepository) GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// GetTotalsByType calculates the sum of amounts grouped by transaction
// type (income/expense) for one user
func (r *transactionRepository) GetTotalsByType(userID uuid.UUID) ([]models.TransactionTypeTotal, error) {
	var totals []models.TransactionTypeTotal
	if err := r.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) as total_amount, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get transaction totals: %w", err)
	}
	return totals, nil
}

// GetSpendingByCategory calculates the sum of amounts grouped by
// (category, type) for one user
func (r *transactionRepository) GetSpendingByCategory(userID uuid.UUID) ([]models.CategorySpending, error) {
	var spending []models.CategorySpending
	if err := r.db.Model(&models.Transaction{}).
		Select("category, type, COALESCE(SUM(amount), 0) as total_amount, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("category, type").
		Order("category, type").
		Scan(&spending).Error; err != nil {
		return nil, fmt.Errorf("failed to get category spending: %w", err)
	}
	return spending, nil
}
