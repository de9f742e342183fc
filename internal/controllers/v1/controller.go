// Package v1 implements the HTTP API for expenses, budgets, categories
// and the monthly reports.
package v1

import (
	"context"

	"github.com/expense-guard/backend/internal/notify"
	"github.com/expense-guard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// Cleaner deletes all resources.
type Cleaner interface {
	DeleteAll(ctx context.Context) error
}

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	service   *service.Service
	cleaner   Cleaner
	notifiers []notify.Notifier
}

// New returns a Controller. Triggered alerts are sent to all notifiers.
func New(svc *service.Service, cleaner Cleaner, notifiers ...notify.Notifier) Controller {
	return Controller{
		service:   svc,
		cleaner:   cleaner,
		notifiers: notifiers,
	}
}

// RegisterRoutes registers all v1 routes on the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsV1)
		r.GET("", GetV1)
		r.DELETE("", co.Cleanup)
	}

	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterAlertRoutes(r.Group("/alerts"))
	co.RegisterMonthRoutes(r.Group("/months"))
}

// notify sends a triggered alert to all notifiers.
func (co Controller) notify(ctx context.Context, alert service.Alert) {
	notify.Dispatch(ctx, alert, co.notifiers...)
}
