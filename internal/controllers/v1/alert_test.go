package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/expense-guard/backend/internal/controllers/v1"
	"github.com/expense-guard/backend/internal/service"
	"github.com/expense-guard/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAlertsOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/alerts", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAlertsGet() {
	food := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	travel := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Travel"})
	books := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Books"})

	suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: food.Data.ID, Month: month(suite.T(), "2024-06"), LimitAmount: decimal.NewFromInt(100)})
	suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: travel.Data.ID, Month: month(suite.T(), "2024-06"), LimitAmount: decimal.NewFromInt(100)})

	suite.createTestExpense(suite.T(), map[string]any{"categoryId": food.Data.ID, "amount": 85, "date": "2024-06-02"})
	suite.createTestExpense(suite.T(), map[string]any{"categoryId": travel.Data.ID, "amount": 10, "date": "2024-06-02"})
	suite.createTestExpense(suite.T(), map[string]any{"categoryId": books.Data.ID, "amount": 999, "date": "2024-06-02"})

	tests := []struct {
		name   string
		query  string
		status int
		kind   service.AlertKind
	}{
		{"Near limit", fmt.Sprintf("category=%s&month=2024-06", food.Data.ID), http.StatusOK, service.AlertNearLimit},
		{"Below threshold", fmt.Sprintf("category=%s&month=2024-06", travel.Data.ID), http.StatusOK, service.AlertNone},
		{"No budget", fmt.Sprintf("category=%s&month=2024-06", books.Data.ID), http.StatusOK, service.AlertNone},
		{"Other month", fmt.Sprintf("category=%s&month=2024-07", food.Data.ID), http.StatusOK, service.AlertNone},
		{"No category", "month=2024-06", http.StatusBadRequest, ""},
		{"No month", fmt.Sprintf("category=%s", food.Data.ID), http.StatusBadRequest, ""},
		{"Invalid category", "category=nope&month=2024-06", http.StatusBadRequest, ""},
		{"Invalid month", fmt.Sprintf("category=%s&month=2024-6", food.Data.ID), http.StatusBadRequest, ""},
		{"Unknown category", fmt.Sprintf("category=%s&month=2024-06", uuid.New()), http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/alerts?%s", tt.query), "")
			test.AssertHTTPStatus(t, tt.status, &r)

			var response v1.AlertResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			assert.Equal(t, tt.kind, response.Data.Kind)
		})
	}

	r := suite.request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/alerts?category=%s&month=2024-06", food.Data.ID), "")
	var response v1.AlertResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Budget warning for Food: you've used 85.0% of your $100.00 budget. Remaining: $15.00", response.Data.Message)
	suite.Require().NotNil(response.Data.Budget)
	suite.Assert().Equal("Food", response.Data.Budget.CategoryName)

	// Checking a budget never notifies
	suite.Assert().Len(suite.notifier.alerts, 0)
}
