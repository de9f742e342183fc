package models

import (
	"github.com/expense-guard/backend/internal/money"
	"github.com/expense-guard/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending limit for one category in one month.
//
// There is at most one budget per category and month.
type Budget struct {
	DefaultModel
	CategoryID  uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:budget_category_month;not null"`
	Category    Category        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Month       types.Month     `json:"month" gorm:"uniqueIndex:budget_category_month;not null"`
	LimitAmount decimal.Decimal `json:"limitAmount" gorm:"type:DECIMAL(14,2);not null"`
}

func (b Budget) Self() string {
	return "Budget"
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.LimitAmount = money.Normalize(b.LimitAmount)
	return nil
}
