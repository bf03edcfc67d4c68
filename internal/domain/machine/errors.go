package machine

import "errors"

var (
	ErrMachineNotFound   = errors.New("machine not found")
	ErrMachineNameExists = errors.New("machine with this name already exists")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
