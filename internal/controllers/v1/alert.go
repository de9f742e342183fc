package v1

import (
	"net/http"

	"github.com/expense-guard/backend/internal/httputil"
	"github.com/expense-guard/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterAlertRoutes registers the routes for budget checks with
// the RouterGroup that is passed.
func (co Controller) RegisterAlertRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAlert)
	r.GET("", co.GetAlert)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Router			/v1/alerts [options]
func OptionsAlert(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Check budget
// @Description	Checks the budget of a category for a month. If no budget exists, the alert kind is NONE.
// @Tags			Alerts
// @Produce		json
// @Success		200			{object}	AlertResponse
// @Failure		400			{object}	AlertResponse
// @Failure		404			{object}	AlertResponse
// @Failure		500			{object}	AlertResponse
// @Param			category	query		string	true	"ID of the category"
// @Param			month		query		string	true	"Month in YYYY-MM format"
// @Router			/v1/alerts [get]
func (co Controller) GetAlert(c *gin.Context) {
	var query AlertQuery
	_ = c.ShouldBindQuery(&query)

	if query.Category == "" {
		s := errCategoryNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, AlertResponse{
			Error: &s,
		})
		return
	}

	if query.Month == "" {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, AlertResponse{
			Error: &s,
		})
		return
	}

	categoryID, err := httputil.UUIDFromString(query.Category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &s,
		})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &s,
		})
		return
	}

	// Unknown categories are reported as such instead of having no budget
	_, err = co.service.Category(c, categoryID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &s,
		})
		return
	}

	alert, err := co.service.CheckBudget(c, categoryID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AlertResponse{Data: newAlert(c, alert)})
}
