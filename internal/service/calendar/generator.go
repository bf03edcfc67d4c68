package calendar

import (
	"time"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/availability"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/machine"
)

// GenerateForMachine computes the availability records of one machine for
// every day of year, January 1 through December 31 in ascending order.
// Days where every hour is available produce no record. Dates are UTC so
// day-of-week computation does not depend on the host time zone.
func GenerateForMachine(m machine.Machine, year int) []availability.Record {
	var records []availability.Record
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
		hours := ComputeUnavailableHours(m, d)
		if len(hours) == 0 {
			continue
		}
		records = append(records, availability.Record{
			MachineID:        m.ID,
			Date:             d,
			UnavailableHours: hours,
		})
	}
	return records
}

// GenerateForYear computes availability records for each machine in input
// order. Records are not merged or deduplicated across machines.
func GenerateForYear(machines []machine.Machine, year int) []availability.Record {
	var records []availability.Record
	for _, m := range machines {
		records = append(records, GenerateForMachine(m, year)...)
	}
	return records
}
