package v1

import (
	"net/http"

	"github.com/expense-guard/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterMonthRoutes registers the routes for monthly reports with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month/summary", OptionsMonthSummary)
	r.GET("/:month/summary", co.GetMonthSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Param			month	path	string	true	"Month in YYYY-MM format"
// @Router			/v1/months/{month}/summary [options]
func OptionsMonthSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month summary
// @Description	Returns the spend of every category in the month, ordered by amount spent descending and category name ascending. Categories without expenses are included with a total of zero.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthSummaryResponse
// @Failure		400		{object}	MonthSummaryResponse
// @Failure		500		{object}	MonthSummaryResponse
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/v1/months/{month}/summary [get]
func (co Controller) GetMonthSummary(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthSummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := co.service.MonthlyCategorySummary(c, uri.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthSummaryResponse{
			Error: &s,
		})
		return
	}

	data := newMonthSummary(c, uri.Month, summary)
	c.JSON(http.StatusOK, MonthSummaryResponse{Data: &data})
}
