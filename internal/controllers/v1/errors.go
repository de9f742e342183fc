package v1

import (
	"errors"
	"net/http"

	"github.com/expense-guard/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery    = errors.New("the month query parameter must be set")
	errCategoryNotSetInQuery = errors.New("the category query parameter must be set")
	errCleanupConfirmation   = errors.New("the confirmation for the cleanup API call was incorrect")
)
