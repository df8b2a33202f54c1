package controllers

import (
	"errors"
	"net/http"

	"github.com/fabtrack/fabtrack-backend/src/services"
)

// statusFor maps the service error taxonomy to HTTP status codes, one
// distinct code per kind.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidActor):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
