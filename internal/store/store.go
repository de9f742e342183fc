// Package store implements persistence for expenses, budgets and categories.
//
// All aggregations run in the database as single statements so that a sum
// never observes a partially applied write.
package store

import (
	"context"

	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseStore persists expenses and computes spend totals.
type ExpenseStore interface {
	SumByCategoryAndMonth(ctx context.Context, categoryID uuid.UUID, month types.Month) (decimal.Decimal, error)
	SummaryByMonth(ctx context.Context, month types.Month) ([]CategoryTotal, error)
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error)
	GetExpense(ctx context.Context, id uuid.UUID) (models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

// BudgetStore persists budgets.
type BudgetStore interface {
	BudgetsByMonth(ctx context.Context, month types.Month) ([]models.Budget, error)
	FindBudget(ctx context.Context, categoryID uuid.UUID, month types.Month) (models.Budget, bool, error)
	GetBudget(ctx context.Context, id uuid.UUID) (models.Budget, error)
	UpsertBudget(ctx context.Context, budget *models.Budget) error
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

// CategoryStore persists categories.
type CategoryStore interface {
	ListCategories(ctx context.Context, filter CategoryFilter) ([]models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// CategoryTotal is the spend of one category in a month.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}

// ExpenseFilter restricts the expenses returned by ListExpenses.
// Zero values do not filter.
type ExpenseFilter struct {
	Month      types.Month
	CategoryID uuid.UUID
}

// CategoryFilter restricts the categories returned by ListCategories.
// Zero values do not filter.
type CategoryFilter struct {
	Name   string
	Search string
}

// Gorm implements all stores on a gorm database handle.
type Gorm struct {
	db *gorm.DB
}

var (
	_ ExpenseStore  = (*Gorm)(nil)
	_ BudgetStore   = (*Gorm)(nil)
	_ CategoryStore = (*Gorm)(nil)
)

// New returns the stores for the database.
func New(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// DeleteAll permanently deletes all resources in one transaction.
func (s *Gorm) DeleteAll(ctx context.Context) error {
	// Foreign keys are checked during cleanup,
	// add new models *before* any of the models
	// they reference
	resources := []any{
		models.Expense{},
		models.Budget{},
		models.Category{},
	}

	return s.transaction(ctx, func(tx *gorm.DB) error {
		for _, model := range resources {
			err := tx.Where("true").Delete(&model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// transaction runs fn in a transaction that is rolled back if fn
// returns an error.
//
// The connection errors returned when starting a transaction do not
// pass through the gorm callbacks and are translated here.
func (s *Gorm) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error().Msgf("%T: %v", tx.Error, tx.Error.Error())
		return models.ErrGeneral
	}

	err := fn(tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Ping verifies that the database is reachable.
func (s *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
