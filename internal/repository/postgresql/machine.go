package postgresql

import (
	"context"
	"fmt"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/machine"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type machineRepositoryImpl struct {
	db *database.DB
}

func NewMachineRepository(db *database.DB) machine.MachineRepository {
	return &machineRepositoryImpl{db: db}
}

// Create implements machine.MachineRepository.
func (r *machineRepositoryImpl) Create(ctx context.Context, m machine.Machine) (machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO machines (
			id, name, work_center, department, active_shifts, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		m.ID, m.Name, m.WorkCenter, m.Department, shiftsToStrings(m.ActiveShifts),
	).Scan(&m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		return machine.Machine{}, err
	}

	return m, nil
}

// GetByID implements machine.MachineRepository.
func (r *machineRepositoryImpl) GetByID(ctx context.Context, id string) (machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, work_center, department, active_shifts, created_at, updated_at
		FROM machines
		WHERE id = $1
	`

	m, err := scanMachine(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return machine.Machine{}, machine.ErrMachineNotFound
		}
		return machine.Machine{}, fmt.Errorf("failed to get machine: %w", err)
	}
	return m, nil
}

// GetByIDs implements machine.MachineRepository. Results come back in the
// order the ids were given.
func (r *machineRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, work_center, department, active_shifts, created_at, updated_at
		FROM machines
		WHERE id = ANY($1::uuid[])
		ORDER BY array_position($1::uuid[], id)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list machines by ids: %w", err)
	}
	defer rows.Close()

	return collectMachines(rows)
}

// List implements machine.MachineRepository.
func (r *machineRepositoryImpl) List(ctx context.Context) ([]machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, work_center, department, active_shifts, created_at, updated_at
		FROM machines
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}
	defer rows.Close()

	return collectMachines(rows)
}

// Update implements machine.MachineRepository.
func (r *machineRepositoryImpl) Update(ctx context.Context, m machine.Machine) (machine.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE machines
		SET name = $2, work_center = $3, department = $4, active_shifts = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		m.ID, m.Name, m.WorkCenter, m.Department, shiftsToStrings(m.ActiveShifts),
	).Scan(&m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return machine.Machine{}, machine.ErrMachineNotFound
		}
		return machine.Machine{}, err
	}

	return m, nil
}

// Delete implements machine.MachineRepository.
func (r *machineRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM machines
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return machine.ErrMachineNotFound
	}
	return nil
}

func scanMachine(row pgx.Row) (machine.Machine, error) {
	var m machine.Machine
	var shifts []string
	err := row.Scan(&m.ID, &m.Name, &m.WorkCenter, &m.Department, &shifts, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return machine.Machine{}, err
	}
	m.ActiveShifts = stringsToShifts(shifts)
	return m, nil
}

func collectMachines(rows pgx.Rows) ([]machine.Machine, error) {
	var machines []machine.Machine
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan machine: %w", err)
		}
		machines = append(machines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return machines, nil
}

func shiftsToStrings(shifts []machine.ShiftCode) []string {
	out := make([]string, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, string(s))
	}
	return out
}

func stringsToShifts(values []string) []machine.ShiftCode {
	out := make([]machine.ShiftCode, 0, len(values))
	for _, v := range values {
		out = append(out, machine.ShiftCode(v))
	}
	return out
}
