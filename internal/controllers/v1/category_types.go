package v1

import (
	"fmt"

	"github.com/expense-guard/backend/internal/models"
	"github.com/expense-guard/backend/internal/service"
	"github.com/expense-guard/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name        string `json:"name" example:"Food & Dining" default:""`                                    // Name of the category
	Description string `json:"description" example:"Groceries, restaurants, and food delivery" default:""` // Description of the category
}

func (editable CategoryEditable) draft() service.CategoryDraft {
	return service.CategoryDraft{
		Name:        editable.Name,
		Description: editable.Description,
	}
}

type CategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`              // The category itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Expenses of the category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:        model.Name,
			Description: model.Description,
		},
		Links: CategoryLinks{
			Self:     fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of Categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name   string `form:"name"`   // By name
	Search string `form:"search"` // By string in name or description
	Match  string `form:"match"`  // By glob pattern on the name, e.g. "Food*"
}

func (f CategoryQueryFilter) model() store.CategoryFilter {
	return store.CategoryFilter{
		Name:   f.Name,
		Search: f.Search,
	}
}
