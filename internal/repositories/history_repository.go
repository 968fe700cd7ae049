package repositories

import (
	"fmt"

	"budget-assistant/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// historyRepository implements HistoryRepositoryInterface
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) HistoryRepositoryInterface {
	return &historyRepository{
		db: db,
	}
}

// UpsertMonthHistory inserts or replaces the per-day aggregate row
// identified by (user, day, month, year)
func (r *historyRepository) UpsertMonthHistory(history *models.MonthHistory) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "day"}, {Name: "month"}, {Name: "year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"income", "expense"}),
	}).Create(history).Error
	if err != nil {
		return fmt.Errorf("failed to upsert month history: %w", err)
	}
	return nil
}

// UpsertYearHistory inserts or replaces the per-month aggregate row
// identified by (user, month, year)
func (r *historyRepository) UpsertYearHistory(history *models.YearHistory) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "month"}, {Name: "year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"income", "expense"}),
	}).Create(history).Error
	if err != nil {
		return fmt.Errorf("failed to upsert year history: %w", err)
	}
	return nil
}

// GetMonthHistory retrieves the per-day rows of one calendar month
func (r *historyRepository) GetMonthHistory(userID uuid.UUID, month, year int) ([]models.MonthHistory, error) {
	var history []models.MonthHistory
	if err := r.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("day").
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to get month history: %w", err)
	}
	return history, nil
}

// GetYearHistory retrieves the per-month rows of one calendar year
func (r *historyRepository) GetYearHistory(userID uuid.UUID, year int) ([]models.YearHistory, error) {
	var history []models.YearHistory
	if err := r.db.Where("user_id = ? AND year = ?", userID, year).
		Order("month").
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to get year history: %w", err)
	}
	return history, nil
}
