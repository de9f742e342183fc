package v1

import (
	"fmt"

	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/money"
	"github.com/expense-guard/backend/internal/service"
	"github.com/expense-guard/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorySpend is the amount spent in a category during a month
type CategorySpend struct {
	CategoryID   uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                                  // ID of the category
	CategoryName string          `json:"categoryName" example:"Food & Dining"`                                                       // Name of the category
	TotalSpent   decimal.Decimal `json:"totalSpent" example:"412.5"`                                                                 // Sum of all expenses of the category in the month
	Share        decimal.Decimal `json:"share" example:"0.4125"`                                                                     // Share of the total spend of the month, rounded to 4 places
	Expenses     string          `json:"expenses" example:"https://example.com/api/v1/expenses?category=3b1ea324-d438-4419-882a-2fc91d71772f&month=2024-06"` // Expenses of the category in the month
}

// MonthSummary is the spend of all categories in a month
type MonthSummary struct {
	Month      types.Month     `json:"month" example:"2024-06"`   // The month
	TotalSpent decimal.Decimal `json:"totalSpent" example:"1000"` // Sum of all categorized expenses in the month
	Categories []CategorySpend `json:"categories"`                // Spend per category, highest first
}

func newMonthSummary(c *gin.Context, month types.Month, summary []service.CategorySummary) MonthSummary {
	url := c.GetString(string(models.DBContextURL))

	total := decimal.Zero
	for _, row := range summary {
		total = total.Add(row.TotalSpent)
	}

	categories := make([]CategorySpend, 0, len(summary))
	for _, row := range summary {
		categories = append(categories, CategorySpend{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			TotalSpent:   row.TotalSpent,
			Share:        money.Ratio(row.TotalSpent, total),
			Expenses:     fmt.Sprintf("%s/v1/expenses?category=%s&month=%s", url, row.CategoryID, month),
		})
	}

	return MonthSummary{
		Month:      month,
		TotalSpent: total,
		Categories: categories,
	}
}

type MonthSummaryResponse struct {
	Data  *MonthSummary `json:"data"`                                                    // Summary of the month
	Error *string       `json:"error" example:"the month must be in the YYYY-MM format"` // The error, if any occurred
}
