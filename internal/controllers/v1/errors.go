package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrCredentialsInvalid) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errUserParameterRequired = errors.New("the user query parameter must be set")
	errMonthNotSetInQuery    = errors.New("the month query parameter must be set")
	errYearNotSetInQuery     = errors.New("the year query parameter must be set to a valid year")
)
