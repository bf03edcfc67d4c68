package availability

import "context"

type RecordRepository interface {
	// ReplaceYear atomically swaps the stored records of one machine for
	// the given year with the supplied set.
	ReplaceYear(ctx context.Context, machineID string, year int, records []Record) error
	GetByMachineAndYear(ctx context.Context, machineID string, year int) ([]Record, error)
	DeleteByMachine(ctx context.Context, machineID string) error
}
