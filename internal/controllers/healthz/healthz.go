// Package healthz implements the health check endpoint.
package healthz

import (
	"context"
	"net/http"

	"github.com/expense-guard/backend/internal/httperror"
	"github.com/expense-guard/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger verifies that the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterRoutes registers the health check with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup, db Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler for the health check.
//
// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.Ping(c)
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			c.JSON(http.StatusInternalServerError, httperror.New(err))
			return
		}

		c.Status(http.StatusNoContent)
	}
}
