package response

import (
	"errors"
	"net/http"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/availability"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/machine"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Machine domain errors
	case errors.Is(err, machine.ErrMachineNotFound):
		NotFound(w, "Machine not found")
	case errors.Is(err, machine.ErrMachineNameExists):
		Conflict(w, "Machine name already exists")
	case errors.Is(err, machine.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Availability domain errors
	case errors.Is(err, availability.ErrNoMachinesSelected):
		NotFound(w, "One or more machines not found")
	case errors.Is(err, availability.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
