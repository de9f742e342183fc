package service

import (
	"context"

	"github.com/expense-guard/backend/internal/store"
	"github.com/expense-guard/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregator computes spend totals from the expense store.
//
// Totals are read from the store on every call and never cached.
type Aggregator struct {
	expenses store.ExpenseStore
}

// NewAggregator returns an Aggregator reading from the store.
func NewAggregator(expenses store.ExpenseStore) Aggregator {
	return Aggregator{expenses: expenses}
}

// ComputeSpend returns the total spent in the category during the month.
func (a Aggregator) ComputeSpend(ctx context.Context, categoryID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	return a.expenses.SumByCategoryAndMonth(ctx, categoryID, month)
}
