package repositories

import (
	"fmt"

	"budget-assistant/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if isDuplicateKeyError(err) {
			// Idempotent by name/type: the seeder and the UI may both
			// try to create the same category
			return nil
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByUserID retrieves all categories belonging to a user
func (r *categoryRepository) GetByUserID(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).
		Order("name").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}
