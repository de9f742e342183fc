package v1

import (
	"github.com/expense-guard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// Alert is the result of a budget check
type Alert struct {
	Kind    service.AlertKind `json:"kind" example:"EXCEEDED" enums:"NONE,NEAR_LIMIT,EXCEEDED"`                                            // Kind of the alert
	Message string            `json:"message" example:"Budget exceeded for Shopping! Limit: $200.00 | Spent: $250.00 | Over by: $50.00"` // Text to show to the user. Empty for NONE
	Budget  *Budget           `json:"budget"`                                                                                            // The budget the alert was raised for. null for NONE
}

func newAlert(c *gin.Context, alert service.Alert) *Alert {
	a := Alert{
		Kind:    alert.Kind,
		Message: alert.Message(),
	}

	if alert.Triggered() {
		budget := newBudget(c, *alert.View)
		a.Budget = &budget
	}

	return &a
}

type AlertResponse struct {
	Data  *Alert  `json:"data"`                                                    // The alert
	Error *string `json:"error" example:"the category query parameter must be set"` // The error, if any occurred
}

type AlertQuery struct {
	Category string `form:"category" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category
	Month    string `form:"month" example:"2024-06"`                                 // Month in YYYY-MM format
}
