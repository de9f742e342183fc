// Package notify delivers budget alerts raised when expenses are written.
//
// Delivery happens after the expense has been persisted. Failures are
// logged and never change the result of the write.
package notify

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/expense-guard/backend/internal/service"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Notifier delivers a triggered alert.
type Notifier interface {
	Notify(ctx context.Context, alert service.Alert) error
}

// Event is the representation of an alert sent to external systems.
type Event struct {
	Kind         service.AlertKind `json:"kind"`
	BudgetID     uuid.UUID         `json:"budgetId"`
	CategoryID   uuid.UUID         `json:"categoryId"`
	CategoryName string            `json:"categoryName"`
	Month        string            `json:"month"`
	Limit        decimal.Decimal   `json:"limit"`
	Spent        decimal.Decimal   `json:"spent"`
	UsagePercent decimal.Decimal   `json:"usagePercent"`
	Message      string            `json:"message"`
}

// NewEvent builds the event for a triggered alert.
func NewEvent(alert service.Alert) (Event, error) {
	if !alert.Triggered() {
		return Event{}, errNotTriggered
	}

	v := alert.View
	return Event{
		Kind:         alert.Kind,
		BudgetID:     v.Budget.ID,
		CategoryID:   v.Budget.CategoryID,
		CategoryName: v.CategoryName,
		Month:        v.Budget.Month.String(),
		Limit:        v.Budget.LimitAmount,
		Spent:        v.Spent,
		UsagePercent: v.UsagePercent(),
		Message:      alert.Message(),
	}, nil
}

// JSON returns the JSON encoding of the event.
func (e Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}

var errNotTriggered = errors.New("the alert has not been triggered")

var alertsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "budget_alerts_total",
		Help: "How many budget alerts have been raised, partitioned by kind.",
	},
	[]string{"kind"},
)

// Collectors returns the Prometheus collectors of the package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{alertsTotal}
}

// Dispatch sends the alert to all notifiers if it has been triggered.
//
// Errors of single notifiers are logged, the remaining notifiers
// are still called.
func Dispatch(ctx context.Context, alert service.Alert, notifiers ...Notifier) {
	if !alert.Triggered() {
		return
	}

	alertsTotal.WithLabelValues(string(alert.Kind)).Inc()

	for _, n := range notifiers {
		if err := n.Notify(ctx, alert); err != nil {
			log.Error().Err(err).Str("kind", string(alert.Kind)).Msgf("%T: could not deliver alert", n)
		}
	}
}

// Log writes alerts to the log.
type Log struct{}

func (Log) Notify(_ context.Context, alert service.Alert) error {
	event, err := NewEvent(alert)
	if err != nil {
		return err
	}

	log.Warn().
		Str("kind", string(event.Kind)).
		Str("category", event.CategoryName).
		Str("month", event.Month).
		Str("limit", event.Limit.StringFixed(2)).
		Str("spent", event.Spent.StringFixed(2)).
		Msg(event.Message)

	return nil
}
