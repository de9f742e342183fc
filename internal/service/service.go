// Package service implements budget aggregation and alerting for expenses.
package service

import (
	"context"
	"fmt"

	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/store"
	"github.com/expense-guard/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is the entry point for all operations on expenses, budgets
// and categories.
//
// It holds no state besides the stores and is safe for concurrent use
// as long as the stores are.
type Service struct {
	expenses   store.ExpenseStore
	budgets    store.BudgetStore
	categories store.CategoryStore
	aggregator Aggregator
}

// New returns a Service working on the stores.
func New(expenses store.ExpenseStore, budgets store.BudgetStore, categories store.CategoryStore) *Service {
	return &Service{
		expenses:   expenses,
		budgets:    budgets,
		categories: categories,
		aggregator: NewAggregator(expenses),
	}
}

// CategorySummary is the spend of one category in a month.
type CategorySummary struct {
	CategoryID   uuid.UUID
	CategoryName string
	TotalSpent   decimal.Decimal
}

// SaveExpense creates the expense and checks the budget of its category
// for the month of the expense date.
//
// If the expense was saved but the check failed, the expense is returned
// together with an error wrapping ErrAlertCheckFailed.
func (s *Service) SaveExpense(ctx context.Context, draft ExpenseDraft) (models.Expense, Alert, error) {
	if err := draft.validate(true); err != nil {
		return models.Expense{}, NoAlert, err
	}

	if _, err := s.categories.GetCategory(ctx, *draft.CategoryID); err != nil {
		return models.Expense{}, NoAlert, err
	}

	expense := draft.model()
	if err := s.expenses.CreateExpense(ctx, &expense); err != nil {
		return models.Expense{}, NoAlert, err
	}

	alert, err := s.expenseAlert(ctx, expense)
	if err != nil {
		return expense, NoAlert, err
	}

	return expense, alert, nil
}

// UpdateExpense overwrites the expense with the draft and checks the budget
// for the updated category and month.
//
// Expenses detached from their category by a category deletion can be updated
// without setting a category.
func (s *Service) UpdateExpense(ctx context.Context, id uuid.UUID, draft ExpenseDraft) (models.Expense, Alert, error) {
	if err := draft.validate(false); err != nil {
		return models.Expense{}, NoAlert, err
	}

	if draft.CategoryID != nil && *draft.CategoryID != uuid.Nil {
		if _, err := s.categories.GetCategory(ctx, *draft.CategoryID); err != nil {
			return models.Expense{}, NoAlert, err
		}
	}

	expense := draft.model()
	expense.ID = id
	if err := s.expenses.UpdateExpense(ctx, &expense); err != nil {
		return models.Expense{}, NoAlert, err
	}

	alert, err := s.expenseAlert(ctx, expense)
	if err != nil {
		return expense, NoAlert, err
	}

	return expense, alert, nil
}

func (s *Service) expenseAlert(ctx context.Context, expense models.Expense) (Alert, error) {
	if expense.CategoryID == nil {
		return NoAlert, nil
	}

	alert, err := s.CheckBudget(ctx, *expense.CategoryID, expense.Month())
	if err != nil {
		return NoAlert, fmt.Errorf("%w: %w", ErrAlertCheckFailed, err)
	}

	return alert, nil
}

// DeleteExpense deletes the expense.
func (s *Service) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.expenses.DeleteExpense(ctx, id)
}

// Expense returns a single expense.
func (s *Service) Expense(ctx context.Context, id uuid.UUID) (models.Expense, error) {
	return s.expenses.GetExpense(ctx, id)
}

// Expenses returns the expenses matching the filter, newest first.
func (s *Service) Expenses(ctx context.Context, filter store.ExpenseFilter) ([]models.Expense, error) {
	return s.expenses.ListExpenses(ctx, filter)
}

// ExpensesForMonth returns all expenses of the month, newest first.
func (s *Service) ExpensesForMonth(ctx context.Context, month types.Month) ([]models.Expense, error) {
	if month.IsZero() {
		return nil, invalid(errMonthNotSet)
	}

	return s.expenses.ListExpenses(ctx, store.ExpenseFilter{Month: month})
}

// BudgetsForMonth returns all budgets of the month with the amount spent.
//
// The spent amounts are taken from the monthly summary so that both
// always report the same totals.
func (s *Service) BudgetsForMonth(ctx context.Context, month types.Month) ([]BudgetView, error) {
	if month.IsZero() {
		return nil, invalid(errMonthNotSet)
	}

	budgets, err := s.budgets.BudgetsByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	summary, err := s.MonthlyCategorySummary(ctx, month)
	if err != nil {
		return nil, err
	}

	spent := make(map[uuid.UUID]decimal.Decimal, len(summary))
	for _, row := range summary {
		spent[row.CategoryID] = row.TotalSpent
	}

	views := make([]BudgetView, 0, len(budgets))
	for _, budget := range budgets {
		total, ok := spent[budget.CategoryID]
		if !ok {
			total = decimal.Zero
		}
		views = append(views, newView(budget, total))
	}

	return views, nil
}

// SaveBudget creates the budget for the category and month of the draft or,
// if it exists, updates its limit.
func (s *Service) SaveBudget(ctx context.Context, draft BudgetDraft) (models.Budget, error) {
	if err := draft.validate(); err != nil {
		return models.Budget{}, err
	}

	if _, err := s.categories.GetCategory(ctx, draft.CategoryID); err != nil {
		return models.Budget{}, err
	}

	budget := draft.model()
	if err := s.budgets.UpsertBudget(ctx, &budget); err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// Budget returns a single budget with the amount spent in its category
// and month.
func (s *Service) Budget(ctx context.Context, id uuid.UUID) (BudgetView, error) {
	budget, err := s.budgets.GetBudget(ctx, id)
	if err != nil {
		return BudgetView{}, err
	}

	spent, err := s.aggregator.ComputeSpend(ctx, budget.CategoryID, budget.Month)
	if err != nil {
		return BudgetView{}, err
	}

	return newView(budget, spent), nil
}

// DeleteBudget deletes the budget.
func (s *Service) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	return s.budgets.DeleteBudget(ctx, id)
}

// MonthlyCategorySummary returns the spend of every category in the month,
// ordered by total spent descending and category name ascending.
// Categories without expenses are included with a total of zero.
func (s *Service) MonthlyCategorySummary(ctx context.Context, month types.Month) ([]CategorySummary, error) {
	if month.IsZero() {
		return nil, invalid(errMonthNotSet)
	}

	totals, err := s.expenses.SummaryByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	summary := make([]CategorySummary, 0, len(totals))
	for _, total := range totals {
		summary = append(summary, CategorySummary{
			CategoryID:   total.CategoryID,
			CategoryName: total.CategoryName,
			TotalSpent:   total.Total,
		})
	}

	return summary, nil
}

// CheckBudget classifies the budget of the category for the month.
//
// Without a budget, no alert is raised. Store errors are returned,
// never reported as NoAlert.
func (s *Service) CheckBudget(ctx context.Context, categoryID uuid.UUID, month types.Month) (Alert, error) {
	if categoryID == uuid.Nil {
		return NoAlert, invalid(errCategoryNotSet)
	}

	if month.IsZero() {
		return NoAlert, invalid(errMonthNotSet)
	}

	budget, ok, err := s.budgets.FindBudget(ctx, categoryID, month)
	if err != nil {
		return NoAlert, err
	}

	if !ok {
		return NoAlert, nil
	}

	spent, err := s.aggregator.ComputeSpend(ctx, categoryID, month)
	if err != nil {
		return NoAlert, err
	}

	return newAlert(newView(budget, spent)), nil
}

// Categories returns the categories matching the filter ordered by name.
func (s *Service) Categories(ctx context.Context, filter store.CategoryFilter) ([]models.Category, error) {
	return s.categories.ListCategories(ctx, filter)
}

// Category returns a single category.
func (s *Service) Category(ctx context.Context, id uuid.UUID) (models.Category, error) {
	return s.categories.GetCategory(ctx, id)
}

// CreateCategory creates a category.
func (s *Service) CreateCategory(ctx context.Context, draft CategoryDraft) (models.Category, error) {
	if err := draft.validate(); err != nil {
		return models.Category{}, err
	}

	category := draft.model()
	if err := s.categories.CreateCategory(ctx, &category); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// UpdateCategory overwrites name and description of the category.
func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, draft CategoryDraft) (models.Category, error) {
	if err := draft.validate(); err != nil {
		return models.Category{}, err
	}

	category := draft.model()
	category.ID = id
	if err := s.categories.UpdateCategory(ctx, &category); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// DeleteCategory deletes the category and its budgets. Its expenses are kept
// without a category.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.categories.DeleteCategory(ctx, id)
}
