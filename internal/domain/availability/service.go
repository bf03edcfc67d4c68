package availability

import (
	"context"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/machine"
)

type CalendarService interface {
	// Regenerate recomputes and persists the availability calendar for
	// the requested year, replacing whatever was stored before.
	Regenerate(ctx context.Context, req GenerateCalendarRequest) (GenerateCalendarResponse, error)
	// RegenerateForMachine does the same for a single machine.
	RegenerateForMachine(ctx context.Context, m machine.Machine, year int) (int, error)
	GetMachineCalendar(ctx context.Context, machineID string, year int) ([]RecordResponse, error)
}
