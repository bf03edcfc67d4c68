package machine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/availability"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/machine"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type machineServiceImpl struct {
	machineRepo     machine.MachineRepository
	recordRepo      availability.RecordRepository
	calendarService availability.CalendarService
}

func NewMachineService(
	machineRepo machine.MachineRepository,
	recordRepo availability.RecordRepository,
	calendarService availability.CalendarService,
) machine.MachineService {
	return &machineServiceImpl{
		machineRepo:     machineRepo,
		recordRepo:      recordRepo,
		calendarService: calendarService,
	}
}

// Create implements machine.MachineService. A freshly created machine gets
// its current-year availability calendar generated right away so the
// scheduler can consume it without a separate generation call.
func (s *machineServiceImpl) Create(ctx context.Context, req machine.CreateMachineRequest) (machine.MachineResponse, error) {
	if err := req.Validate(); err != nil {
		return machine.MachineResponse{}, err
	}

	shifts := make([]machine.ShiftCode, 0, len(req.ActiveShifts))
	for _, code := range req.ActiveShifts {
		shifts = append(shifts, machine.ShiftCode(code))
	}

	m := machine.Machine{
		ID:           uuid.NewString(),
		Name:         req.Name,
		WorkCenter:   machine.WorkCenter(req.WorkCenter),
		Department:   machine.Department(req.Department),
		ActiveShifts: shifts,
	}

	created, err := s.machineRepo.Create(ctx, m)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return machine.MachineResponse{}, machine.ErrMachineNameExists
		}
		return machine.MachineResponse{}, fmt.Errorf("failed to create machine: %w", err)
	}

	if _, err := s.calendarService.RegenerateForMachine(ctx, created, time.Now().UTC().Year()); err != nil {
		return machine.MachineResponse{}, err
	}

	return machine.NewMachineResponse(created), nil
}

// GetByID implements machine.MachineService.
func (s *machineServiceImpl) GetByID(ctx context.Context, id string) (machine.MachineResponse, error) {
	m, err := s.machineRepo.GetByID(ctx, id)
	if err != nil {
		return machine.MachineResponse{}, err
	}
	return machine.NewMachineResponse(m), nil
}

// List implements machine.MachineService.
func (s *machineServiceImpl) List(ctx context.Context) ([]machine.MachineResponse, error) {
	machines, err := s.machineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}
	responses := make([]machine.MachineResponse, 0, len(machines))
	for _, m := range machines {
		responses = append(responses, machine.NewMachineResponse(m))
	}
	return responses, nil
}

// Update implements machine.MachineService. Changes that affect the
// availability computation (work center, department, shifts) trigger a
// regeneration of the machine's current-year calendar.
func (s *machineServiceImpl) Update(ctx context.Context, id string, req machine.UpdateMachineRequest) (machine.MachineResponse, error) {
	if err := req.Validate(); err != nil {
		return machine.MachineResponse{}, err
	}

	m, err := s.machineRepo.GetByID(ctx, id)
	if err != nil {
		return machine.MachineResponse{}, err
	}

	affectsCalendar := false
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.WorkCenter != nil && machine.WorkCenter(*req.WorkCenter) != m.WorkCenter {
		m.WorkCenter = machine.WorkCenter(*req.WorkCenter)
		affectsCalendar = true
	}
	if req.Department != nil && machine.Department(*req.Department) != m.Department {
		m.Department = machine.Department(*req.Department)
		affectsCalendar = true
	}
	if req.ActiveShifts != nil {
		shifts := make([]machine.ShiftCode, 0, len(*req.ActiveShifts))
		for _, code := range *req.ActiveShifts {
			shifts = append(shifts, machine.ShiftCode(code))
		}
		if !slices.Equal(shifts, m.ActiveShifts) {
			m.ActiveShifts = shifts
			affectsCalendar = true
		}
	}

	updated, err := s.machineRepo.Update(ctx, m)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return machine.MachineResponse{}, machine.ErrMachineNameExists
		}
		return machine.MachineResponse{}, err
	}

	if affectsCalendar {
		if _, err := s.calendarService.RegenerateForMachine(ctx, updated, time.Now().UTC().Year()); err != nil {
			return machine.MachineResponse{}, err
		}
	}

	return machine.NewMachineResponse(updated), nil
}

// Delete implements machine.MachineService. Availability records are
// derived data, so they go first; a regeneration can always rebuild them.
func (s *machineServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.machineRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.recordRepo.DeleteByMachine(ctx, id); err != nil {
		return fmt.Errorf("failed to delete availability records: %w", err)
	}
	return s.machineRepo.Delete(ctx, id)
}
