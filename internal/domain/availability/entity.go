package availability

import "time"

// Record states that a machine is unavailable for scheduling during a
// specific set of hours on one calendar date. Days without a record are
// fully available.
type Record struct {
	MachineID string
	Date      time.Time // calendar date, midnight UTC
	// UnavailableHours holds hour-of-day slots in [0,23], ascending.
	UnavailableHours []int
}

// DateLayout is the wire format for record dates.
const DateLayout = "2006-01-02"
