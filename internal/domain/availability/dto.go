package availability

import (
	"github.com/Santonastaso/scheduler-demo-sub001/internal/pkg/validator"
)

type GenerateCalendarRequest struct {
	Year int `json:"year"`
	// MachineIDs limits generation to the listed machines. Empty means
	// every machine.
	MachineIDs []string `json:"machine_ids,omitempty"`
}

func (r *GenerateCalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a 4-digit year",
		})
	}
	for _, id := range r.MachineIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "machine_ids",
				Message: "machine_ids values must be valid UUIDs",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GenerateCalendarResponse struct {
	Year            int `json:"year"`
	Machines        int `json:"machines"`
	RecordsInserted int `json:"records_inserted"`
}

type RecordResponse struct {
	MachineID        string `json:"machine_id"`
	Date             string `json:"date"`
	UnavailableHours []int  `json:"unavailable_hours"`
}

func NewRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		MachineID:        rec.MachineID,
		Date:             rec.Date.Format(DateLayout),
		UnavailableHours: rec.UnavailableHours,
	}
}
