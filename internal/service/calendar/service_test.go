package calendar

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/availability"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMachineRepo struct {
	machines []machine.Machine
}

func (f *fakeMachineRepo) Create(ctx context.Context, m machine.Machine) (machine.Machine, error) {
	f.machines = append(f.machines, m)
	return m, nil
}

func (f *fakeMachineRepo) GetByID(ctx context.Context, id string) (machine.Machine, error) {
	for _, m := range f.machines {
		if m.ID == id {
			return m, nil
		}
	}
	return machine.Machine{}, machine.ErrMachineNotFound
}

func (f *fakeMachineRepo) GetByIDs(ctx context.Context, ids []string) ([]machine.Machine, error) {
	var out []machine.Machine
	for _, id := range ids {
		for _, m := range f.machines {
			if m.ID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (f *fakeMachineRepo) List(ctx context.Context) ([]machine.Machine, error) {
	return f.machines, nil
}

func (f *fakeMachineRepo) Update(ctx context.Context, m machine.Machine) (machine.Machine, error) {
	for i := range f.machines {
		if f.machines[i].ID == m.ID {
			f.machines[i] = m
			return m, nil
		}
	}
	return machine.Machine{}, machine.ErrMachineNotFound
}

func (f *fakeMachineRepo) Delete(ctx context.Context, id string) error {
	for i := range f.machines {
		if f.machines[i].ID == id {
			f.machines = append(f.machines[:i], f.machines[i+1:]...)
			return nil
		}
	}
	return machine.ErrMachineNotFound
}

type fakeRecordRepo struct {
	mu      sync.Mutex
	stored  map[string][]availability.Record // keyed by machineID/year
	replace int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{stored: make(map[string][]availability.Record)}
}

func yearKey(machineID string, year int) string {
	return fmt.Sprintf("%s/%d", machineID, year)
}

func (f *fakeRecordRepo) ReplaceYear(ctx context.Context, machineID string, year int, records []availability.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replace++
	f.stored[yearKey(machineID, year)] = records
	return nil
}

func (f *fakeRecordRepo) GetByMachineAndYear(ctx context.Context, machineID string, year int) ([]availability.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored[yearKey(machineID, year)], nil
}

func (f *fakeRecordRepo) DeleteByMachine(ctx context.Context, machineID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.stored {
		if strings.HasPrefix(key, machineID+"/") {
			delete(f.stored, key)
		}
	}
	return nil
}

func TestCalendarService_Regenerate_AllMachines(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	first := testMachine(machine.WorkCenterZanica, machine.DepartmentPrinting, machine.ShiftT2)
	first.ID = "11111111-1111-1111-1111-111111111111"
	second := testMachine(machine.WorkCenterBustoGarolfo, machine.DepartmentPackaging, machine.ShiftT3)
	second.ID = "22222222-2222-2222-2222-222222222222"

	machineRepo := &fakeMachineRepo{machines: []machine.Machine{first, second}}
	recordRepo := newFakeRecordRepo()
	svc := NewCalendarService(machineRepo, recordRepo)

	resp, err := svc.Regenerate(ctx, availability.GenerateCalendarRequest{Year: 2024})

	require.NoError(t, err)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 2, resp.Machines)
	// T2 machine blocks something every day (366), T3 only weekends (104).
	assert.Equal(t, 366+104, resp.RecordsInserted)

	stored, err := recordRepo.GetByMachineAndYear(ctx, first.ID, 2024)
	require.NoError(t, err)
	assert.Equal(t, GenerateForMachine(first, 2024), stored)
}

func TestCalendarService_Regenerate_SelectedMachines(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	first := testMachine(machine.WorkCenterZanica, machine.DepartmentPrinting, machine.ShiftT2)
	first.ID = "11111111-1111-1111-1111-111111111111"
	second := testMachine(machine.WorkCenterBustoGarolfo, machine.DepartmentPackaging)
	second.ID = "22222222-2222-2222-2222-222222222222"

	machineRepo := &fakeMachineRepo{machines: []machine.Machine{first, second}}
	recordRepo := newFakeRecordRepo()
	svc := NewCalendarService(machineRepo, recordRepo)

	resp, err := svc.Regenerate(ctx, availability.GenerateCalendarRequest{
		Year:       2024,
		MachineIDs: []string{second.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Machines)
	assert.Equal(t, 366, resp.RecordsInserted)

	stored, err := recordRepo.GetByMachineAndYear(ctx, first.ID, 2024)
	require.NoError(t, err)
	assert.Empty(t, stored, "unselected machine must stay untouched")
}

func TestCalendarService_Regenerate_UnknownMachine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	machineRepo := &fakeMachineRepo{}
	svc := NewCalendarService(machineRepo, newFakeRecordRepo())

	_, err := svc.Regenerate(ctx, availability.GenerateCalendarRequest{
		Year:       2024,
		MachineIDs: []string{"33333333-3333-3333-3333-333333333333"},
	})

	assert.ErrorIs(t, err, availability.ErrNoMachinesSelected)
}

func TestCalendarService_Regenerate_InvalidYear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCalendarService(&fakeMachineRepo{}, newFakeRecordRepo())

	_, err := svc.Regenerate(ctx, availability.GenerateCalendarRequest{Year: 24})

	assert.Error(t, err)
}

func TestCalendarService_RegenerateForMachine_ReplacesPreviousRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := testMachine(machine.WorkCenterZanica, machine.DepartmentPackaging)
	m.ID = "11111111-1111-1111-1111-111111111111"

	machineRepo := &fakeMachineRepo{machines: []machine.Machine{m}}
	recordRepo := newFakeRecordRepo()
	svc := NewCalendarService(machineRepo, recordRepo)

	inserted, err := svc.RegenerateForMachine(ctx, m, 2024)
	require.NoError(t, err)
	assert.Equal(t, 366, inserted)

	// Adding T3 leaves only the weekends blocked; the second run must
	// fully replace the first.
	m.ActiveShifts = []machine.ShiftCode{machine.ShiftT3}
	inserted, err = svc.RegenerateForMachine(ctx, m, 2024)
	require.NoError(t, err)
	assert.Equal(t, 104, inserted)

	stored, err := recordRepo.GetByMachineAndYear(ctx, m.ID, 2024)
	require.NoError(t, err)
	assert.Len(t, stored, 104)
	assert.Equal(t, 2, recordRepo.replace)
}

func TestCalendarService_GetMachineCalendar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := testMachine(machine.WorkCenterBustoGarolfo, machine.DepartmentPrinting, machine.ShiftT1)
	m.ID = "11111111-1111-1111-1111-111111111111"

	machineRepo := &fakeMachineRepo{machines: []machine.Machine{m}}
	recordRepo := newFakeRecordRepo()
	svc := NewCalendarService(machineRepo, recordRepo)

	_, err := svc.RegenerateForMachine(ctx, m, 2024)
	require.NoError(t, err)

	responses, err := svc.GetMachineCalendar(ctx, m.ID, 2024)
	require.NoError(t, err)
	require.Len(t, responses, 366)
	assert.Equal(t, m.ID, responses[0].MachineID)
	assert.Equal(t, "2024-01-01", responses[0].Date)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 12, 13, 18, 19, 20, 21, 22, 23}, responses[0].UnavailableHours)
}

func TestCalendarService_GetMachineCalendar_UnknownMachine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCalendarService(&fakeMachineRepo{}, newFakeRecordRepo())

	_, err := svc.GetMachineCalendar(ctx, "33333333-3333-3333-3333-333333333333", 2024)

	assert.ErrorIs(t, err, machine.ErrMachineNotFound)
}
