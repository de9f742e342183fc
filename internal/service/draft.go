package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/money"
	"github.com/expense-guard/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseDraft holds the user editable values of an expense.
type ExpenseDraft struct {
	CategoryID  *uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Notes       string
}

func (d ExpenseDraft) validate(requireCategory bool) error {
	if requireCategory && (d.CategoryID == nil || *d.CategoryID == uuid.Nil) {
		return invalid(errCategoryNotSet)
	}

	if strings.TrimSpace(d.Description) == "" {
		return invalid(errDescriptionEmpty)
	}

	if !money.Normalize(d.Amount).IsPositive() {
		return invalid(errAmountNotPositive)
	}

	if d.Date.IsZero() {
		return invalid(errDateNotSet)
	}

	return nil
}

func (d ExpenseDraft) model() models.Expense {
	categoryID := d.CategoryID
	if categoryID != nil && *categoryID == uuid.Nil {
		categoryID = nil
	}

	return models.Expense{
		CategoryID:  categoryID,
		Description: d.Description,
		Amount:      d.Amount,
		Date:        models.Date(d.Date),
		Notes:       d.Notes,
	}
}

// BudgetDraft holds the values of a budget. Budgets are identified by
// category and month, saving a draft always upserts on that pair.
type BudgetDraft struct {
	CategoryID  uuid.UUID
	Month       types.Month
	LimitAmount decimal.Decimal
}

func (d BudgetDraft) validate() error {
	if d.CategoryID == uuid.Nil {
		return invalid(errCategoryNotSet)
	}

	if d.Month.IsZero() {
		return invalid(errMonthNotSet)
	}

	if !money.Normalize(d.LimitAmount).IsPositive() {
		return invalid(errLimitNotPositive)
	}

	return nil
}

func (d BudgetDraft) model() models.Budget {
	return models.Budget{
		CategoryID:  d.CategoryID,
		Month:       d.Month,
		LimitAmount: d.LimitAmount,
	}
}

// CategoryDraft holds the user editable values of a category.
type CategoryDraft struct {
	Name        string
	Description string
}

func (d CategoryDraft) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid(errCategoryNameEmpty)
	}

	return nil
}

func (d CategoryDraft) model() models.Category {
	return models.Category{
		Name:        strings.TrimSpace(d.Name),
		Description: d.Description,
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
