package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCurrency = "USD"

// UserSettings holds per-user preferences. Currently only the display
// currency, which the assistant includes in answers about amounts.
type UserSettings struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Currency string    `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
}

func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	return s.Validate()
}

// Validate validates the settings fields
func (s *UserSettings) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	return nil
}

// TableName returns the table name for UserSettings
func (s *UserSettings) TableName() string {
	return "user_settings"
}
