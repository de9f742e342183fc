package store

import (
	"context"

	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/money"
	"github.com/expense-guard/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// spentCents sums the amounts of the joined expenses in integer cents.
//
// Summing cents keeps the result exact on databases that store
// DECIMAL columns with floating point affinity.
const spentCents = "COALESCE(SUM(CAST(ROUND(expenses.amount * 100) AS BIGINT)), 0)"

// inMonth restricts expenses.date to a month. Both arguments are the
// first instant of the month and the first instant of the following month.
const inMonth = "expenses.date >= date(?) AND expenses.date < date(?)"

// SumByCategoryAndMonth returns the total amount of all expenses of the
// category with a date in the month. Without expenses, the total is zero.
func (s *Gorm) SumByCategoryAndMonth(ctx context.Context, categoryID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	var cents int64
	err := s.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select(spentCents).
		Where("expenses.category_id = ?", categoryID).
		Where(inMonth, month.Start(), month.End()).
		Scan(&cents).Error
	if err != nil {
		return decimal.Zero, err
	}

	return money.FromCents(cents), nil
}

// SummaryByMonth returns the spend of every category in the month,
// including categories without any expenses.
//
// The result is ordered by the total, highest first, and by name for
// categories with the same total.
func (s *Gorm) SummaryByMonth(ctx context.Context, month types.Month) ([]CategoryTotal, error) {
	var rows []struct {
		CategoryID   uuid.UUID
		CategoryName string
		TotalCents   int64
	}

	err := s.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("categories.id AS category_id, categories.name AS category_name, "+spentCents+" AS total_cents").
		Joins("LEFT JOIN expenses ON expenses.category_id = categories.id AND "+inMonth, month.Start(), month.End()).
		Group("categories.id, categories.name").
		Order("total_cents DESC, categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, CategoryTotal{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Total:        money.FromCents(row.TotalCents),
		})
	}

	return totals, nil
}

// ListExpenses returns the expenses matching the filter with their category,
// newest first.
func (s *Gorm) ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error) {
	q := s.db.WithContext(ctx).
		Joins("Category").
		Order("expenses.date DESC, expenses.created_at DESC")

	if !filter.Month.IsZero() {
		q = q.Where(inMonth, filter.Month.Start(), filter.Month.End())
	}

	if filter.CategoryID != uuid.Nil {
		q = q.Where("expenses.category_id = ?", filter.CategoryID)
	}

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// GetExpense returns the expense with its category.
func (s *Gorm) GetExpense(ctx context.Context, id uuid.UUID) (models.Expense, error) {
	var expense models.Expense
	err := s.db.WithContext(ctx).
		Joins("Category").
		Where("expenses.id = ?", id).
		First(&expense).Error

	return expense, err
}

// CreateExpense persists a new expense and assigns its ID.
func (s *Gorm) CreateExpense(ctx context.Context, expense *models.Expense) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(expense).Error
	if err != nil {
		return err
	}

	return s.loadCategory(ctx, expense)
}

// UpdateExpense overwrites all user editable fields of an existing expense.
func (s *Gorm) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		var existing models.Expense
		err := tx.Where("id = ?", expense.ID).First(&existing).Error
		if err != nil {
			return err
		}

		expense.CreatedAt = existing.CreatedAt
		return tx.Omit(clause.Associations).Save(expense).Error
	})
	if err != nil {
		return err
	}

	return s.loadCategory(ctx, expense)
}

// DeleteExpense deletes the expense permanently.
func (s *Gorm) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return models.NotFound(models.Expense{})
	}

	return nil
}

// loadCategory sets the category of the expense for responses.
func (s *Gorm) loadCategory(ctx context.Context, expense *models.Expense) error {
	expense.Category = nil
	if expense.CategoryID == nil {
		return nil
	}

	var category models.Category
	err := s.db.WithContext(ctx).Where("id = ?", *expense.CategoryID).First(&category).Error
	if err != nil {
		return err
	}

	expense.Category = &category
	return nil
}
