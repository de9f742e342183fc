package service

import (
	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/money"
	"github.com/shopspring/decimal"
)

// BudgetState is the usage level of a budget.
type BudgetState string

const (
	StateOK        BudgetState = "OK"
	StateNearLimit BudgetState = "NEAR_LIMIT"
	StateExceeded  BudgetState = "EXCEEDED"
)

var (
	nearLimitPercent = decimal.NewFromInt(80)
	exceededPercent  = decimal.NewFromInt(100)
)

// BudgetView pairs a budget with the amount spent in its category and month.
//
// All values are derived from the limit and the spent amount on every call.
type BudgetView struct {
	Budget       models.Budget
	CategoryName string
	Spent        decimal.Decimal
}

// Remaining returns the amount left until the limit is reached.
// It is negative when the budget is exceeded.
func (v BudgetView) Remaining() decimal.Decimal {
	return v.Budget.LimitAmount.Sub(v.Spent)
}

// UsagePercent returns spent / limit rounded half-up to 4 places, times 100.
// For a zero limit, the usage is zero.
func (v BudgetView) UsagePercent() decimal.Decimal {
	return money.Percent(v.Spent, v.Budget.LimitAmount)
}

// Overage returns the amount spent over the limit, zero if the limit
// has not been exceeded.
func (v BudgetView) Overage() decimal.Decimal {
	return decimal.Max(v.Spent.Sub(v.Budget.LimitAmount), decimal.Zero)
}

// State returns the usage level of the budget.
func (v BudgetView) State() BudgetState {
	usage := v.UsagePercent()

	switch {
	case usage.GreaterThanOrEqual(exceededPercent):
		return StateExceeded
	case usage.GreaterThanOrEqual(nearLimitPercent):
		return StateNearLimit
	default:
		return StateOK
	}
}

func newView(budget models.Budget, spent decimal.Decimal) BudgetView {
	return BudgetView{
		Budget:       budget,
		CategoryName: budget.Category.Name,
		Spent:        spent,
	}
}
