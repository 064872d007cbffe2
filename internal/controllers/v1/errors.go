package v1

import (
	"errors"
	"net/http"

	"github.com/gigbook/backend/internal/forecast"
	"github.com/gigbook/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	var dataErr *forecast.DataAccessError
	if errors.As(err, &dataErr) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
