package calendar

import (
	"time"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/machine"
)

// hourMask marks each hour-of-day slot; true means unavailable.
type hourMask [24]bool

func fullDayMask() hourMask {
	var m hourMask
	for h := range m {
		m[h] = true
	}
	return m
}

// markAvailable clears the slots from first to last, both inclusive.
func (m *hourMask) markAvailable(first, last int) {
	for h := first; h <= last; h++ {
		m[h] = false
	}
}

func (m hourMask) isEmpty() bool {
	for _, unavailable := range m {
		if unavailable {
			return false
		}
	}
	return true
}

// hours materializes the mask as ascending hour-of-day values.
func (m hourMask) hours() []int {
	var hours []int
	for h, unavailable := range m {
		if unavailable {
			hours = append(hours, h)
		}
	}
	return hours
}

// ComputeUnavailableHours derives the hours of date during which m cannot
// be scheduled. Weekends are fully blocked regardless of shifts; on
// weekdays every hour starts blocked and each active shift frees its
// window. The result is fully determined by the machine configuration and
// the day of week.
func ComputeUnavailableHours(m machine.Machine, date time.Time) []int {
	return unavailableMask(m, date).hours()
}

func unavailableMask(m machine.Machine, date time.Time) hourMask {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return fullDayMask()
	}

	mask := fullDayMask()
	for _, shift := range m.ActiveShifts {
		switch shift {
		case machine.ShiftT3:
			// Continuous shift covers the whole day, nothing left to free.
			return hourMask{}
		case machine.ShiftT2:
			mask.markAvailable(6, 21)
		case machine.ShiftT1:
			applyDayShiftWindows(&mask, m.WorkCenter)
		}
		// Unrecognized shift codes free nothing.
	}
	return mask
}

// applyDayShiftWindows frees the T1 windows for the given work center.
// A work center without a configured window frees nothing, so the machine
// stays blocked: the conservative default for unknown locations.
func applyDayShiftWindows(mask *hourMask, wc machine.WorkCenter) {
	switch wc {
	case machine.WorkCenterBustoGarolfo:
		mask.markAvailable(8, 11)
		mask.markAvailable(14, 17)
	case machine.WorkCenterZanica:
		// Packaging runs 12:30-16:30; rounded to whole-hour slots since
		// the scheduler consumes whole hours only.
		mask.markAvailable(8, 11)
		mask.markAvailable(13, 16)
	}
}
