package v1

import (
	"net/http"

	"github.com/expense-guard/backend/internal/httputil"
	"github.com/expense-guard/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"` // URL of category list endpoint
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`     // URL of expense list endpoint
	Budgets    string `json:"budgets" example:"https://example.com/api/v1/budgets"`       // URL of budget list endpoint
	Alerts     string `json:"alerts" example:"https://example.com/api/v1/alerts"`         // URL of the budget check endpoint
	Months     string `json:"months" example:"https://example.com/api/v1/months"`         // URL of month endpoints
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Categories: url + "/v1/categories",
			Expenses:   url + "/v1/expenses",
			Budgets:    url + "/v1/budgets",
			Alerts:     url + "/v1/alerts",
			Months:     url + "/v1/months",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
