package calendar

import (
	"context"
	"fmt"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/availability"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/machine"
	"golang.org/x/sync/errgroup"
)

// maxGenerateWorkers bounds the per-machine generation fan-out.
const maxGenerateWorkers = 4

type calendarServiceImpl struct {
	machineRepo machine.MachineRepository
	recordRepo  availability.RecordRepository
}

func NewCalendarService(
	machineRepo machine.MachineRepository,
	recordRepo availability.RecordRepository,
) availability.CalendarService {
	return &calendarServiceImpl{
		machineRepo: machineRepo,
		recordRepo:  recordRepo,
	}
}

// Regenerate implements availability.CalendarService.
func (s *calendarServiceImpl) Regenerate(ctx context.Context, req availability.GenerateCalendarRequest) (availability.GenerateCalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return availability.GenerateCalendarResponse{}, err
	}

	var machines []machine.Machine
	var err error
	if len(req.MachineIDs) == 0 {
		machines, err = s.machineRepo.List(ctx)
	} else {
		machines, err = s.machineRepo.GetByIDs(ctx, req.MachineIDs)
		if err == nil && len(machines) != len(req.MachineIDs) {
			return availability.GenerateCalendarResponse{}, availability.ErrNoMachinesSelected
		}
	}
	if err != nil {
		return availability.GenerateCalendarResponse{}, fmt.Errorf("failed to load machines: %w", err)
	}

	// Generation is pure per machine, so fan it out; each worker only
	// writes its own slot.
	results := make([][]availability.Record, len(machines))
	g := new(errgroup.Group)
	g.SetLimit(maxGenerateWorkers)
	for i, m := range machines {
		i, m := i, m
		g.Go(func() error {
			results[i] = GenerateForMachine(m, req.Year)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return availability.GenerateCalendarResponse{}, err
	}

	total := 0
	for i, m := range machines {
		if err := s.recordRepo.ReplaceYear(ctx, m.ID, req.Year, results[i]); err != nil {
			return availability.GenerateCalendarResponse{}, fmt.Errorf("failed to store calendar for machine %s: %w", m.ID, err)
		}
		total += len(results[i])
	}

	return availability.GenerateCalendarResponse{
		Year:            req.Year,
		Machines:        len(machines),
		RecordsInserted: total,
	}, nil
}

// RegenerateForMachine implements availability.CalendarService.
func (s *calendarServiceImpl) RegenerateForMachine(ctx context.Context, m machine.Machine, year int) (int, error) {
	records := GenerateForMachine(m, year)
	if err := s.recordRepo.ReplaceYear(ctx, m.ID, year, records); err != nil {
		return 0, fmt.Errorf("failed to store calendar for machine %s: %w", m.ID, err)
	}
	return len(records), nil
}

// GetMachineCalendar implements availability.CalendarService.
func (s *calendarServiceImpl) GetMachineCalendar(ctx context.Context, machineID string, year int) ([]availability.RecordResponse, error) {
	// Ensure the machine exists so an empty calendar is distinguishable
	// from an unknown machine.
	if _, err := s.machineRepo.GetByID(ctx, machineID); err != nil {
		return nil, err
	}

	records, err := s.recordRepo.GetByMachineAndYear(ctx, machineID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar: %w", err)
	}

	responses := make([]availability.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, availability.NewRecordResponse(rec))
	}
	return responses, nil
}
