package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/expense-guard/backend/internal/controllers/v1"
	"github.com/expense-guard/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthSummaryOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/months/2024-06/summary", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMonthSummary() {
	food := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	travel := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Travel"})
	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Housing"})
	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Education"})

	suite.createTestExpense(suite.T(), map[string]any{"categoryId": food.Data.ID, "amount": "30", "date": "2024-06-01"})
	suite.createTestExpense(suite.T(), map[string]any{"categoryId": food.Data.ID, "amount": "20", "date": "2024-06-30"})
	suite.createTestExpense(suite.T(), map[string]any{"categoryId": travel.Data.ID, "amount": "150", "date": "2024-06-15"})
	suite.createTestExpense(suite.T(), map[string]any{"categoryId": travel.Data.ID, "amount": "1000", "date": "2024-07-01"})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/months/2024-06/summary", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.MonthSummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	summary := response.Data
	suite.Assert().Equal("2024-06", summary.Month.String())
	suite.Assert().True(decimal.NewFromInt(200).Equal(summary.TotalSpent), "total is %s", summary.TotalSpent)

	names := make([]string, 0)
	for _, c := range summary.Categories {
		names = append(names, c.CategoryName)
	}
	suite.Assert().Equal([]string{"Travel", "Food", "Education", "Housing"}, names)

	suite.Assert().True(decimal.NewFromInt(150).Equal(summary.Categories[0].TotalSpent))
	suite.Assert().True(decimal.RequireFromString("0.75").Equal(summary.Categories[0].Share), "share is %s", summary.Categories[0].Share)
	suite.Assert().True(decimal.RequireFromString("0.25").Equal(summary.Categories[1].Share), "share is %s", summary.Categories[1].Share)
	suite.Assert().True(decimal.Zero.Equal(summary.Categories[3].TotalSpent))
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/expenses?category=%s&month=2024-06", travel.Data.ID), summary.Categories[0].Expenses)
}

func (suite *TestSuiteStandard) TestMonthSummaryEmpty() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/months/2024-06/summary", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.MonthSummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.Categories, 0)
	suite.Assert().True(decimal.Zero.Equal(response.Data.TotalSpent))
}

func (suite *TestSuiteStandard) TestMonthSummaryInvalidMonth() {
	for _, month := range []string{"June", "2024-06-15"} {
		r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/months/"+month+"/summary", "")
		test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
	}
}

func (suite *TestSuiteStandard) TestMonthSummaryDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/months/2024-06/summary", "")
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
}
