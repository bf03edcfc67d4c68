package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/availability"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) availability.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

// ReplaceYear implements availability.RecordRepository. The delete and
// re-insert run in one transaction so readers never observe a partially
// generated year.
func (r *recordRepositoryImpl) ReplaceYear(ctx context.Context, machineID string, year int, records []availability.Record) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := r.deleteByMachineAndYear(txCtx, machineID, year); err != nil {
			return fmt.Errorf("failed to clear existing records: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		return r.bulkInsert(txCtx, records)
	})
}

func (r *recordRepositoryImpl) deleteByMachineAndYear(ctx context.Context, machineID string, year int) error {
	q := GetQuerier(ctx, r.db)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	query := `
		DELETE FROM machine_availability
		WHERE machine_id = $1 AND date >= $2 AND date < $3
	`
	_, err := q.Exec(ctx, query, machineID, from, to)
	return err
}

func (r *recordRepositoryImpl) bulkInsert(ctx context.Context, records []availability.Record) error {
	q := GetQuerier(ctx, r.db)

	batch := &pgx.Batch{}
	query := `
		INSERT INTO machine_availability (
			machine_id, date, unavailable_hours, created_at, updated_at
		) VALUES ($1, $2, $3, NOW(), NOW())
	`
	for _, rec := range records {
		batch.Queue(query, rec.MachineID, rec.Date, hoursToInt32(rec.UnavailableHours))
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert availability record: %w", err)
		}
	}
	return nil
}

// GetByMachineAndYear implements availability.RecordRepository.
func (r *recordRepositoryImpl) GetByMachineAndYear(ctx context.Context, machineID string, year int) ([]availability.Record, error) {
	q := GetQuerier(ctx, r.db)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	query := `
		SELECT machine_id, date, unavailable_hours
		FROM machine_availability
		WHERE machine_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, machineID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability records: %w", err)
	}
	defer rows.Close()

	var records []availability.Record
	for rows.Next() {
		var rec availability.Record
		var hours []int32
		if err := rows.Scan(&rec.MachineID, &rec.Date, &hours); err != nil {
			return nil, fmt.Errorf("failed to scan availability record: %w", err)
		}
		rec.Date = rec.Date.UTC()
		rec.UnavailableHours = int32ToHours(hours)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByMachine implements availability.RecordRepository.
func (r *recordRepositoryImpl) DeleteByMachine(ctx context.Context, machineID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM machine_availability
		WHERE machine_id = $1
	`
	_, err := q.Exec(ctx, query, machineID)
	return err
}

func hoursToInt32(hours []int) []int32 {
	out := make([]int32, 0, len(hours))
	for _, h := range hours {
		out = append(out, int32(h))
	}
	return out
}

func int32ToHours(values []int32) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		out = append(out, int(v))
	}
	return out
}
