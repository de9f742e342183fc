package store

import (
	"context"
	"errors"

	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetsByMonth returns all budgets of the month with their category,
// ordered by category name.
func (s *Gorm) BudgetsByMonth(ctx context.Context, month types.Month) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.WithContext(ctx).
		Joins("Category").
		Where("budgets.month = ?", month).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "Category", Name: "name"}}).
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// FindBudget returns the budget for the category and month. The boolean
// reports whether such a budget exists.
func (s *Gorm) FindBudget(ctx context.Context, categoryID uuid.UUID, month types.Month) (models.Budget, bool, error) {
	var budget models.Budget
	err := s.db.WithContext(ctx).
		Joins("Category").
		Where("budgets.category_id = ? AND budgets.month = ?", categoryID, month).
		First(&budget).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Budget{}, false, nil
	}

	if err != nil {
		return models.Budget{}, false, err
	}

	return budget, true, nil
}

// GetBudget returns the budget with its category.
func (s *Gorm) GetBudget(ctx context.Context, id uuid.UUID) (models.Budget, error) {
	var budget models.Budget
	err := s.db.WithContext(ctx).
		Joins("Category").
		Where("budgets.id = ?", id).
		First(&budget).Error

	return budget, err
}

// UpsertBudget inserts the budget or, if a budget for the same category and
// month exists, updates its limit. The existing ID is kept.
//
// On return, budget holds the stored row.
func (s *Gorm) UpsertBudget(ctx context.Context, budget *models.Budget) error {
	return s.transaction(ctx, func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
		}).Create(budget).Error
		if err != nil {
			return err
		}

		// A fresh value is needed, gorm adds the primary key of the
		// destination to the conditions
		var stored models.Budget
		err = tx.Joins("Category").
			Where("budgets.category_id = ? AND budgets.month = ?", budget.CategoryID, budget.Month).
			First(&stored).Error
		if err != nil {
			return err
		}

		*budget = stored
		return nil
	})
}

// DeleteBudget deletes the budget permanently.
func (s *Gorm) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Budget{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return models.NotFound(models.Budget{})
	}

	return nil
}
