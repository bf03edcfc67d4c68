package machine

import (
	"strings"
	"time"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/pkg/validator"
)

type CreateMachineRequest struct {
	Name         string   `json:"name"`
	WorkCenter   string   `json:"work_center"`
	Department   string   `json:"department"`
	ActiveShifts []string `json:"active_shifts"`
}

func (r *CreateMachineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.WorkCenter) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_center",
			Message: "work_center is required",
		})
	} else if !validator.IsInSlice(r.WorkCenter, WorkCenterValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_center",
			Message: "work_center must be one of: " + strings.Join(WorkCenterValues, ", "),
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	} else if !validator.IsInSlice(r.Department, DepartmentValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of: " + strings.Join(DepartmentValues, ", "),
		})
	}
	// active_shifts may be empty: a machine without shifts is simply
	// unavailable on every working hour.
	for _, shift := range r.ActiveShifts {
		if !validator.IsInSlice(shift, ShiftCodeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "active_shifts",
				Message: "active_shifts values must be one of: " + strings.Join(ShiftCodeValues, ", "),
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateMachineRequest struct {
	Name         *string   `json:"name,omitempty"`
	WorkCenter   *string   `json:"work_center,omitempty"`
	Department   *string   `json:"department,omitempty"`
	ActiveShifts *[]string `json:"active_shifts,omitempty"`
}

func (r *UpdateMachineRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.WorkCenter != nil && !validator.IsInSlice(*r.WorkCenter, WorkCenterValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_center",
			Message: "work_center must be one of: " + strings.Join(WorkCenterValues, ", "),
		})
	}
	if r.Department != nil && !validator.IsInSlice(*r.Department, DepartmentValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of: " + strings.Join(DepartmentValues, ", "),
		})
	}
	if r.ActiveShifts != nil {
		for _, shift := range *r.ActiveShifts {
			if !validator.IsInSlice(shift, ShiftCodeValues) {
				errs = append(errs, validator.ValidationError{
					Field:   "active_shifts",
					Message: "active_shifts values must be one of: " + strings.Join(ShiftCodeValues, ", "),
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MachineResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	WorkCenter   string   `json:"work_center"`
	Department   string   `json:"department"`
	ActiveShifts []string `json:"active_shifts"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func NewMachineResponse(m Machine) MachineResponse {
	shifts := make([]string, 0, len(m.ActiveShifts))
	for _, s := range m.ActiveShifts {
		shifts = append(shifts, string(s))
	}
	return MachineResponse{
		ID:           m.ID,
		Name:         m.Name,
		WorkCenter:   string(m.WorkCenter),
		Department:   string(m.Department),
		ActiveShifts: shifts,
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    m.UpdatedAt.Format(time.RFC3339),
	}
}
