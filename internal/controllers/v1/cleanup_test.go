package v1_test

import (
	"net/http"

	v1 "github.com/expense-guard/backend/internal/controllers/v1"
	"github.com/expense-guard/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCleanup() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	suite.createTestExpense(suite.T(), map[string]any{"categoryId": category.Data.ID, "amount": 10})
	suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, Month: month(suite.T(), "2024-06"), LimitAmount: decimal.NewFromInt(100)})

	r := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	for _, path := range []string{
		"http://example.com/v1/categories",
		"http://example.com/v1/expenses",
		"http://example.com/v1/budgets?month=2024-06",
	} {
		r := suite.request(suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

		var response struct {
			Data []any `json:"data"`
		}
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Len(response.Data, 0, path)
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	r := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=not-today", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestCleanupDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
}
