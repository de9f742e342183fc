package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/expense-guard/backend/internal/controllers/v1"
	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{c})
	test.AssertHTTPStatus(t, expectedStatus[0], &r)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.CategoryResponse{}
}

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	suite.CloseDB()

	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"}, http.StatusInternalServerError)

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, models.ErrGeneral.Error())
}

// TestCategoriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", suite.createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, tt.status, &r)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}

	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "  Food & Dining ", Description: "Groceries"})
	suite.Assert().Equal("Food & Dining", c.Data.Name)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/categories/%s", c.Data.ID), c.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/expenses?category=%s", c.Data.ID), c.Data.Links.Expenses)

	tests := []struct {
		name   string
		body   any
		status int
		errs   []string
	}{
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest, nil},
		{"Empty body", "", http.StatusBadRequest, nil},
		{"Duplicate name", []v1.CategoryEditable{{Name: "Food & Dining"}}, http.StatusBadRequest, []string{models.ErrCategoryNameNotUnique.Error()}},
		{"Empty name", []v1.CategoryEditable{{Name: " "}}, http.StatusBadRequest, []string{"the category name must not be empty"}},
		{"One valid, one duplicate", []v1.CategoryEditable{{Name: "Travel"}, {Name: "Travel"}}, http.StatusBadRequest, []string{"", models.ErrCategoryNameNotUnique.Error()}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, tt.status, &r)

			var response v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.errs == nil {
				assert.NotNil(t, response.Error)
				return
			}

			for i, e := range tt.errs {
				if e == "" {
					assert.Nil(t, response.Data[i].Error)
					continue
				}
				assert.Contains(t, *response.Data[i].Error, e)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Transportation", Description: "Gas and transit"})
	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food & Dining", Description: "Groceries"})
	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Fun", Description: "Food for the soul"})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"All, ordered by name", "", []string{"Food & Dining", "Fun", "Transportation"}},
		{"Name", "name=Fun", []string{"Fun"}},
		{"Search", "search=Food", []string{"Food & Dining", "Fun"}},
		{"Match", "match=F*", []string{"Food & Dining", "Fun"}},
		{"Match suffix", "match=*tion", []string{"Transportation"}},
		{"No match", "match=X*", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, http.StatusOK, &r)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0)
			for _, c := range response.Data {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Category", c.Data.ID.String(), http.StatusOK},
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"No Category with ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "Definitely-Not-A-UUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food", Description: "Groceries"})
	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Travel"})

	path := fmt.Sprintf("http://example.com/v1/categories/%s", c.Data.ID)

	r := suite.request(suite.T(), http.MethodPatch, path, map[string]any{"description": "Groceries and restaurants"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Food", response.Data.Name, "fields not in the body keep their value")
	suite.Assert().Equal("Groceries and restaurants", response.Data.Description)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Duplicate name", path, map[string]any{"name": "Travel"}, http.StatusBadRequest},
		{"Empty name", path, map[string]any{"name": ""}, http.StatusBadRequest},
		{"Broken body", path, `{ "name": 2 }`, http.StatusBadRequest},
		{"Not found", fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), map[string]any{"name": "New"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	path := fmt.Sprintf("http://example.com/v1/categories/%s", c.Data.ID)

	r := suite.request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = suite.request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/categories/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
