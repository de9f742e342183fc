package v1_test

import (
	"net/http"

	v1 "github.com/expense-guard/backend/internal/controllers/v1"
	"github.com/expense-guard/backend/internal/test"
)

func (suite *TestSuiteStandard) TestV1Get() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Links{
		Categories: "http://example.com/v1/categories",
		Expenses:   "http://example.com/v1/expenses",
		Budgets:    "http://example.com/v1/budgets",
		Alerts:     "http://example.com/v1/alerts",
		Months:     "http://example.com/v1/months",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestV1Options() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Equal("OPTIONS, GET, DELETE", r.Header().Get("allow"))
}
