package models

import (
	"strings"
	"time"

	"github.com/expense-guard/backend/internal/money"
	"github.com/expense-guard/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending record.
//
// The category is optional since deleting a category detaches
// its expenses instead of deleting them.
type Expense struct {
	DefaultModel
	CategoryID  *uuid.UUID      `json:"categoryId" gorm:"index"`
	Category    *Category       `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(14,2);not null"`
	Date        time.Time       `json:"date" gorm:"index;not null"`
	Notes       string          `json:"notes"`
}

func (e Expense) Self() string {
	return "Expense"
}

// Month returns the month the expense belongs to.
func (e Expense) Month() types.Month {
	return types.MonthOf(e.Date)
}

// CategoryName returns the name of the category if it has been loaded.
func (e Expense) CategoryName() string {
	if e.Category == nil {
		return ""
	}

	return e.Category.Name
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Notes = strings.TrimSpace(e.Notes)
	e.Amount = money.Normalize(e.Amount)
	e.Date = Date(e.Date)

	return nil
}

func (e *Expense) AfterFind(tx *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return e.DefaultModel.AfterFind(tx)
}

// Date truncates a time to midnight UTC of its calendar date.
//
// The calendar date is taken in the location of the time so that
// 2024-06-30T23:30:00-05:00 stays on June 30.
func Date(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
