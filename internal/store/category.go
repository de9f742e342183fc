package store

import (
	"context"

	"github.com/expense-guard/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCategories returns the categories matching the filter ordered by name.
func (s *Gorm) ListCategories(ctx context.Context, filter CategoryFilter) ([]models.Category, error) {
	q := s.db.WithContext(ctx).Order("name ASC")

	if filter.Name != "" {
		q = q.Where("name = ?", filter.Name)
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ? OR description LIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// GetCategory returns the category.
func (s *Gorm) GetCategory(ctx context.Context, id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	return category, err
}

// CreateCategory persists a new category and assigns its ID.
func (s *Gorm) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

// UpdateCategory overwrites name and description of an existing category.
func (s *Gorm) UpdateCategory(ctx context.Context, category *models.Category) error {
	return s.transaction(ctx, func(tx *gorm.DB) error {
		var existing models.Category
		err := tx.Where("id = ?", category.ID).First(&existing).Error
		if err != nil {
			return err
		}

		category.CreatedAt = existing.CreatedAt
		return tx.Save(category).Error
	})
}

// DeleteCategory deletes the category together with its budgets.
// Expenses of the category are kept and detached from it.
func (s *Gorm) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.transaction(ctx, func(tx *gorm.DB) error {
		var category models.Category
		err := tx.Where("id = ?", id).First(&category).Error
		if err != nil {
			return err
		}

		err = tx.Model(&models.Expense{}).Where("category_id = ?", id).Update("category_id", nil).Error
		if err != nil {
			return err
		}

		err = tx.Where("category_id = ?", id).Delete(&models.Budget{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
}
