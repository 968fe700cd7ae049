package repositories

import (
	"errors"
	"fmt"

	"budget-assistant/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSettingsNotFound = errors.New("user settings not found")
)

// settingsRepository implements SettingsRepositoryInterface
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepositoryInterface {
	return &settingsRepository{
		db: db,
	}
}

// GetByUserID retrieves settings for a user
func (r *settingsRepository) GetByUserID(userID uuid.UUID) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := r.db.First(&settings, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return &settings, nil
}

// Upsert creates or updates the settings row for a user
func (r *settingsRepository) Upsert(settings *models.UserSettings) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"currency"}),
	}).Create(settings).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user settings: %w", err)
	}
	return nil
}
