package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/pkg/errs"
)

// statusFromError maps domain errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotAssigned):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrOfferingNotPublished),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyCancelled),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValidationFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// jsonError writes the uniform error body for a failed request.
// Internal errors are not echoed back to the client.
func jsonError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// badRequest writes a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
