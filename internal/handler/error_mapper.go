package handler

import (
	"errors"

	"github.com/mergington/activities/api/internal/model"
	"github.com/mergington/activities/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrActivityNotFound):
		return model.NewNotFoundError("Activity")

	// ===== Validation Errors → 400 =====
	// Wrapped errors keep the sentinel via errors.Is, so err.Error()
	// carries the email alongside the message clients match on.
	case errors.Is(err, service.ErrAlreadySignedUp),
		errors.Is(err, service.ErrNotRegistered),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrActivityNameRequired):
		return model.NewBadRequestError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
