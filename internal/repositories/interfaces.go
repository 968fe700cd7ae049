package repositories

import (
	"budget-assistant/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface handles persistence for users
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateLastLogin(user *models.User) error
}

// TransactionRepositoryInterface handles persistence for budget transactions.
// Every query is scoped to a single user; that scoping is the access
// control boundary for the assistant and must never be bypassed.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error)
	GetTotalsByType(userID uuid.UUID) ([]models.TransactionTypeTotal, error)
	GetSpendingByCategory(userID uuid.UUID) ([]models.CategorySpending, error)
}

// CategoryRepositoryInterface handles persistence for user categories
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
}

// HistoryRepositoryInterface handles persistence for aggregated
// month/year history rows
type HistoryRepositoryInterface interface {
	UpsertMonthHistory(history *models.MonthHistory) error
	UpsertYearHistory(history *models.YearHistory) error
	GetMonthHistory(userID uuid.UUID, month, year int) ([]models.MonthHistory, error)
	GetYearHistory(userID uuid.UUID, year int) ([]models.YearHistory, error)
}

// SettingsRepositoryInterface handles persistence for user settings
type SettingsRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.UserSettings, error)
	Upsert(settings *models.UserSettings) error
}
