package availability

import "errors"

var (
	ErrNoMachinesSelected = errors.New("no machines match the requested ids")
	ErrInvalidRequestData = errors.New("invalid request data")
)
