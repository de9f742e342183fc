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
	"github.com/stretchr/testify/require"
)

// createTestExpense creates an expense. body is encoded as JSON.
func (suite *TestSuiteStandard) createTestExpense(t *testing.T, body map[string]any, expectedStatus ...int) v1.ExpenseResponse {
	if _, ok := body["description"]; !ok {
		body["description"] = "Test expense"
	}

	if _, ok := body["date"]; !ok {
		body["date"] = "2024-06-15"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/expenses", []map[string]any{body})
	test.AssertHTTPStatus(t, expectedStatus[0], &r)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.ExpenseResponse{}
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	expense := suite.createTestExpense(suite.T(), map[string]any{"categoryId": category.Data.ID, "amount": 10})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Expense exists", expense.Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}

	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})

	e := suite.createTestExpense(suite.T(), map[string]any{
		"categoryId":  category.Data.ID,
		"description": "Groceries",
		"amount":      "12.345",
		"date":        "2024-06-30T23:30:00-05:00",
		"notes":       "Weekly shopping",
	})

	suite.Assert().True(decimal.RequireFromString("12.35").Equal(e.Data.Amount), "amounts are rounded to cents, got %s", e.Data.Amount)
	suite.Assert().Equal("2024-06-30", e.Data.Date.String(), "the calendar date of the timestamp is kept")
	suite.Assert().Equal("2024-06", e.Data.Month.String())
	suite.Assert().Equal("Food", e.Data.CategoryName)
	suite.Assert().Equal("Weekly shopping", e.Data.Notes)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/expenses/%s", e.Data.ID), e.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/categories/%s", category.Data.ID), e.Data.Links.Category)

	// Without a budget, there is no alert
	suite.Require().NotNil(e.Alert)
	suite.Assert().Equal(service.AlertNone, e.Alert.Kind)
	suite.Assert().Nil(e.Alert.Budget)
	suite.Assert().Empty(suite.notifier.alerts)
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `[{ "amount": "not a number" }]`, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
		{"No category", []map[string]any{{"description": "x", "amount": 1, "date": "2024-06-01"}}, http.StatusBadRequest},
		{"Zero amount", []map[string]any{{"categoryId": category.Data.ID, "description": "x", "amount": 0, "date": "2024-06-01"}}, http.StatusBadRequest},
		{"Negative amount", []map[string]any{{"categoryId": category.Data.ID, "description": "x", "amount": -5, "date": "2024-06-01"}}, http.StatusBadRequest},
		{"Rounds to zero", []map[string]any{{"categoryId": category.Data.ID, "description": "x", "amount": "0.004", "date": "2024-06-01"}}, http.StatusBadRequest},
		{"Empty description", []map[string]any{{"categoryId": category.Data.ID, "description": " ", "amount": 1, "date": "2024-06-01"}}, http.StatusBadRequest},
		{"No date", []map[string]any{{"categoryId": category.Data.ID, "description": "x", "amount": 1}}, http.StatusBadRequest},
		{"Invalid date", []map[string]any{{"categoryId": category.Data.ID, "description": "x", "amount": 1, "date": "2024-13-01"}}, http.StatusBadRequest},
		{"Unknown category", []map[string]any{{"categoryId": uuid.New(), "description": "x", "amount": 1, "date": "2024-06-01"}}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0, "no invalid expense must be saved")
}

// TestExpensesCreateAlerts verifies the alert progression for a budget of 100.
func (suite *TestSuiteStandard) TestExpensesCreateAlerts() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, Month: month(suite.T(), "2024-06"), LimitAmount: decimal.NewFromInt(100)})

	tests := []struct {
		amount  string
		kind    service.AlertKind
		message string
		spent   string
		state   service.BudgetState
	}{
		{"50", service.AlertNone, "", "", ""},
		{"30", service.AlertNearLimit, "Budget warning for Food: you've used 80.0% of your $100.00 budget. Remaining: $20.00", "80", service.StateNearLimit},
		{"20", service.AlertExceeded, "Budget exceeded for Food! Limit: $100.00 | Spent: $100.00 | Over by: $0.00", "100", service.StateExceeded},
		{"25.5", service.AlertExceeded, "Budget exceeded for Food! Limit: $100.00 | Spent: $125.50 | Over by: $25.50", "125.5", service.StateExceeded},
	}

	for _, tt := range tests {
		suite.T().Run(tt.amount, func(t *testing.T) {
			e := suite.createTestExpense(t, map[string]any{"categoryId": category.Data.ID, "amount": tt.amount})
			require.NotNil(t, e.Alert)
			assert.Equal(t, tt.kind, e.Alert.Kind)
			assert.Equal(t, tt.message, e.Alert.Message)

			if tt.kind == service.AlertNone {
				assert.Nil(t, e.Alert.Budget)
				return
			}

			require.NotNil(t, e.Alert.Budget)
			assert.True(t, decimal.RequireFromString(tt.spent).Equal(e.Alert.Budget.Spent), "spent is %s", e.Alert.Budget.Spent)
			assert.Equal(t, tt.state, e.Alert.Budget.State)
		})
	}

	// Only triggered alerts are sent to the notifiers
	suite.Require().Len(suite.notifier.alerts, 3)
	suite.Assert().Equal(service.AlertNearLimit, suite.notifier.alerts[0].Kind)
	suite.Assert().Equal(service.AlertExceeded, suite.notifier.alerts[2].Kind)
}

// TestExpensesCreateOtherMonth verifies that expenses only count for the
// budget of their own month.
func (suite *TestSuiteStandard) TestExpensesCreateOtherMonth() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, Month: month(suite.T(), "2024-06"), LimitAmount: decimal.NewFromInt(10)})

	e := suite.createTestExpense(suite.T(), map[string]any{"categoryId": category.Data.ID, "amount": 500, "date": "2024-07-01"})
	suite.Assert().Equal(service.AlertNone, e.Alert.Kind)

	e = suite.createTestExpense(suite.T(), map[string]any{"categoryId": category.Data.ID, "amount": 500, "date": "2024-05-31"})
	suite.Assert().Equal(service.AlertNone, e.Alert.Kind)
}

func (suite *TestSuiteStandard) TestExpensesGet() {
	food := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	travel := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Travel"})

	suite.createTestExpense(suite.T(), map[string]any{"categoryId": food.Data.ID, "amount": 1, "date": "2024-06-01", "description": "First"})
	suite.createTestExpense(suite.T(), map[string]any{"categoryId": food.Data.ID, "amount": 2, "date": "2024-06-20", "description": "Second"})
	suite.createTestExpense(suite.T(), map[string]any{"categoryId": travel.Data.ID, "amount": 3, "date": "2024-06-10", "description": "Train"})
	suite.createTestExpense(suite.T(), map[string]any{"categoryId": food.Data.ID, "amount": 4, "date": "2024-07-01", "description": "Next month"})

	tests := []struct {
		name   string
		query  string
		want   []string
		total  string
		status int
	}{
		{"All, newest first", "", []string{"Next month", "Second", "Train", "First"}, "", http.StatusOK},
		{"Month", "month=2024-06", []string{"Second", "Train", "First"}, "6", http.StatusOK},
		{"Category", fmt.Sprintf("category=%s", food.Data.ID), []string{"Next month", "Second", "First"}, "", http.StatusOK},
		{"Month and category", fmt.Sprintf("category=%s&month=2024-06", food.Data.ID), []string{"Second", "First"}, "3", http.StatusOK},
		{"Empty month", "month=2023-01", []string{}, "0", http.StatusOK},
		{"Invalid month", "month=June", nil, "", http.StatusBadRequest},
		{"Full date as month", "month=2024-06-15", nil, "", http.StatusBadRequest},
		{"Invalid category", "category=NotAUUID", nil, "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, tt.status, &r)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)

			descriptions := make([]string, 0)
			for _, e := range response.Data {
				descriptions = append(descriptions, e.Description)
			}
			assert.Equal(t, tt.want, descriptions)

			if tt.total == "" {
				assert.Nil(t, response.Total)
				return
			}

			require.NotNil(t, response.Total)
			assert.True(t, decimal.RequireFromString(tt.total).Equal(*response.Total), "expected total %s, got %s", tt.total, response.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	e := suite.createTestExpense(suite.T(), map[string]any{"categoryId": category.Data.ID, "amount": 10})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Expense", e.Data.ID.String(), http.StatusOK},
		{"No Expense with ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "Definitely-Not-A-UUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesUpdate() {
	food := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	travel := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Travel"})
	suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: travel.Data.ID, Month: month(suite.T(), "2024-06"), LimitAmount: decimal.NewFromInt(50)})

	e := suite.createTestExpense(suite.T(), map[string]any{"categoryId": food.Data.ID, "amount": 60, "description": "Tickets"})
	path := fmt.Sprintf("http://example.com/v1/expenses/%s", e.Data.ID)

	// Moving the expense to Travel exceeds the budget there
	r := suite.request(suite.T(), http.MethodPatch, path, map[string]any{"categoryId": travel.Data.ID})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Tickets", response.Data.Description, "fields not in the body keep their value")
	suite.Assert().Equal("Travel", response.Data.CategoryName)
	suite.Require().NotNil(response.Alert)
	suite.Assert().Equal(service.AlertExceeded, response.Alert.Kind)
	suite.Assert().Len(suite.notifier.alerts, 1)

	// Moving it to July leaves the June budget untouched
	r = suite.request(suite.T(), http.MethodPatch, path, map[string]any{"date": "2024-07-02"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("2024-07", response.Data.Month.String())
	suite.Assert().Equal(service.AlertNone, response.Alert.Kind)

	// Detaching the category
	r = suite.request(suite.T(), http.MethodPatch, path, `{ "categoryId": null }`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	response = v1.ExpenseResponse{}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.CategoryID)
	suite.Assert().Equal("", response.Data.Links.Category)

	// Empty body returns the expense unchanged
	r = suite.request(suite.T(), http.MethodPatch, path, map[string]any{})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Negative amount", path, map[string]any{"amount": -1}, http.StatusBadRequest},
		{"Empty description", path, map[string]any{"description": ""}, http.StatusBadRequest},
		{"Broken body", path, `{ "amount": false }`, http.StatusBadRequest},
		{"Unknown category", path, map[string]any{"categoryId": uuid.New()}, http.StatusNotFound},
		{"Not found", fmt.Sprintf("http://example.com/v1/expenses/%s", uuid.New()), map[string]any{"amount": 1}, http.StatusNotFound},
		{"Invalid ID", "http://example.com/v1/expenses/nope", map[string]any{"amount": 1}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	e := suite.createTestExpense(suite.T(), map[string]any{"categoryId": category.Data.ID, "amount": 10})
	path := fmt.Sprintf("http://example.com/v1/expenses/%s", e.Data.ID)

	r := suite.request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = suite.request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)

	r = suite.request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

// TestExpensesKeptOnCategoryDelete verifies that expenses lose their category
// when it is deleted.
func (suite *TestSuiteStandard) TestExpensesKeptOnCategoryDelete() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	e := suite.createTestExpense(suite.T(), map[string]any{"categoryId": category.Data.ID, "amount": 10})

	r := suite.request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = suite.request(suite.T(), http.MethodGet, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.CategoryID)
}
