package v1

import (
	"fmt"

	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/service"
	"github.com/expense-guard/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters.
//
// A budget is identified by its category and month. Creating a budget for a
// category and month that already has one updates its limit.
type BudgetEditable struct {
	CategoryID  uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category
	Month       types.Month     `json:"month" example:"2024-06"`                                   // Month of the budget in YYYY-MM format
	LimitAmount decimal.Decimal `json:"limitAmount" example:"500" minimum:"0.01"`                  // Spending limit for the month
}

func (editable BudgetEditable) draft() service.BudgetDraft {
	return service.BudgetDraft{
		CategoryID:  editable.CategoryID,
		Month:       editable.Month,
		LimitAmount: editable.LimitAmount,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                          // The budget itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                  // The category of the budget
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=3b1ea324-d438-4419-882a-2fc91d71772f&month=2024-06"` // Expenses counted for this budget
}

// Budget is a budget together with the amount spent in its category and month
type Budget struct {
	models.DefaultModel
	BudgetEditable
	CategoryName string              `json:"categoryName" example:"Food & Dining"`                      // Name of the category
	Spent        decimal.Decimal     `json:"spent" example:"412.5"`                                     // Sum of all expenses of the category in the month
	Remaining    decimal.Decimal     `json:"remaining" example:"87.5"`                                  // Limit minus spent. Negative if the budget is exceeded
	UsagePercent decimal.Decimal     `json:"usagePercent" example:"82.5"`                               // Spent divided by the limit in percent
	State        service.BudgetState `json:"state" example:"NEAR_LIMIT" enums:"OK,NEAR_LIMIT,EXCEEDED"` // Usage level of the budget
	Links        BudgetLinks         `json:"links"`
}

func newBudget(c *gin.Context, view service.BudgetView) Budget {
	url := c.GetString(string(models.DBContextURL))
	budget := view.Budget

	return Budget{
		DefaultModel: budget.DefaultModel,
		BudgetEditable: BudgetEditable{
			CategoryID:  budget.CategoryID,
			Month:       budget.Month,
			LimitAmount: budget.LimitAmount,
		},
		CategoryName: view.CategoryName,
		Spent:        view.Spent,
		Remaining:    view.Remaining(),
		UsagePercent: view.UsagePercent(),
		State:        view.State(),
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, budget.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, budget.CategoryID),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s&month=%s", url, budget.CategoryID, budget.Month),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                 // List of budgets
	Error *string  `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
