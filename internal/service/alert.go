package service

import (
	"fmt"

	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/money"
	"github.com/shopspring/decimal"
)

// AlertKind is the kind of a budget alert.
type AlertKind string

const (
	AlertNone      AlertKind = "NONE"
	AlertNearLimit AlertKind = "NEAR_LIMIT"
	AlertExceeded  AlertKind = "EXCEEDED"
)

// Alert is the result of a budget check.
//
// For AlertNone, View is nil. For all other kinds, View holds the budget
// the alert was raised for.
type Alert struct {
	Kind AlertKind
	View *BudgetView
}

// NoAlert is the alert for budgets that are fine or do not exist.
var NoAlert = Alert{Kind: AlertNone}

// Classify returns the alert kind for a budget with the spent amount.
func Classify(budget models.Budget, spent decimal.Decimal) AlertKind {
	return classify(newView(budget, spent))
}

func classify(view BudgetView) AlertKind {
	switch view.State() {
	case StateExceeded:
		return AlertExceeded
	case StateNearLimit:
		return AlertNearLimit
	default:
		return AlertNone
	}
}

func newAlert(view BudgetView) Alert {
	kind := classify(view)
	if kind == AlertNone {
		return NoAlert
	}

	return Alert{Kind: kind, View: &view}
}

// Triggered reports if the alert needs to be shown to the user.
func (a Alert) Triggered() bool {
	return a.Kind != AlertNone && a.View != nil
}

// Message returns the text shown to the user. It is empty for AlertNone.
func (a Alert) Message() string {
	if !a.Triggered() {
		return ""
	}

	v := a.View
	switch a.Kind {
	case AlertExceeded:
		return fmt.Sprintf("Budget exceeded for %s! Limit: %s | Spent: %s | Over by: %s",
			v.CategoryName,
			money.Format(v.Budget.LimitAmount),
			money.Format(v.Spent),
			money.Format(v.Overage()))
	case AlertNearLimit:
		return fmt.Sprintf("Budget warning for %s: you've used %s%% of your %s budget. Remaining: %s",
			v.CategoryName,
			v.UsagePercent().StringFixed(1),
			money.Format(v.Budget.LimitAmount),
			money.Format(v.Remaining()))
	}

	return ""
}
