package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a user-defined spending or income bucket. Transactions
// reference categories by name rather than by foreign key so deleting
// a category never invalidates historical records.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name_type" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name_type" json:"name"`
	Icon      string    `gorm:"type:varchar(20)" json:"icon,omitempty"`
	Type      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_categories_user_name_type" json:"type"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if c.Name == "" {
		return errors.New("category name is required")
	}

	if !IsValidTransactionType(c.Type) {
		return ErrInvalidTransactionType
	}

	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}
