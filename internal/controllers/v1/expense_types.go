package v1

import (
	"fmt"

	"github.com/expense-guard/backend/internal/httputil"
	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/service"
	"github.com/expense-guard/backend/internal/store"
	"github.com/expense-guard/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	CategoryID  *uuid.UUID      `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category. Required on creation
	Description string          `json:"description" example:"Weekly groceries"`                    // Description of the expense
	Amount      decimal.Decimal `json:"amount" example:"42.5" minimum:"0.01"`                      // The amount spent. Rounded to 2 decimal places
	Date        types.Date      `json:"date" example:"2024-06-15"`                                 // Date of the expense in YYYY-MM-DD format or an RFC3339 timestamp
	Notes       string          `json:"notes" example:"Paid with the shared card"`                 // Free text notes
}

func (editable ExpenseEditable) draft() service.ExpenseDraft {
	return service.ExpenseDraft{
		CategoryID:  editable.CategoryID,
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date.Time(),
		Notes:       editable.Notes,
	}
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/d430d7c3-d14c-4712-9336-ee56965a6673"`       // The expense itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the expense. Empty if the expense has no category
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	CategoryName string       `json:"categoryName" example:"Food & Dining"` // Name of the category
	Month        types.Month  `json:"month" example:"2024-06"`              // Month the expense counts towards
	Links        ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	expense := Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			CategoryID:  model.CategoryID,
			Description: model.Description,
			Amount:      model.Amount,
			Date:        types.DateOf(model.Date),
			Notes:       model.Notes,
		},
		CategoryName: model.CategoryName(),
		Month:        model.Month(),
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}

	if model.CategoryID != nil {
		expense.Links.Category = fmt.Sprintf("%s/v1/categories/%s", url, *model.CategoryID)
	}

	return expense
}

type ExpenseListResponse struct {
	Data  []Expense        `json:"data"`                                                          // List of expenses
	Total *decimal.Decimal `json:"total,omitempty" example:"184.2"`                               // Sum of the listed amounts. Only set when filtering by month
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Alert *Alert   `json:"alert,omitempty"`                                               // Result of the budget check after a create or update
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Month    types.Month `form:"month" example:"2024-06"`                                 // By month in YYYY-MM format
	Category string      `form:"category" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // By ID of the category
}

func (f ExpenseQueryFilter) model() (store.ExpenseFilter, error) {
	categoryID, err := httputil.UUIDFromString(f.Category)
	if err != nil {
		return store.ExpenseFilter{}, err
	}

	return store.ExpenseFilter{
		Month:      f.Month,
		CategoryID: categoryID,
	}, nil
}
