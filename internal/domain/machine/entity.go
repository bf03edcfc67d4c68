package machine

import "time"

type Machine struct {
	ID           string
	Name         string
	WorkCenter   WorkCenter
	Department   Department
	ActiveShifts []ShiftCode
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WorkCenter is a physical production location.
type WorkCenter string

const (
	WorkCenterZanica       WorkCenter = "ZANICA"
	WorkCenterBustoGarolfo WorkCenter = "BUSTO_GAROLFO"
)

var WorkCenterValues = []string{
	string(WorkCenterZanica),
	string(WorkCenterBustoGarolfo),
}

// Department is the process type performed at a work center.
type Department string

const (
	DepartmentPrinting  Department = "PRINTING"
	DepartmentPackaging Department = "PACKAGING"
)

var DepartmentValues = []string{
	string(DepartmentPrinting),
	string(DepartmentPackaging),
}

// ShiftCode labels a predefined daily working-hours pattern.
type ShiftCode string

const (
	ShiftT1 ShiftCode = "T1" // day shift, work-center dependent windows
	ShiftT2 ShiftCode = "T2" // extended shift, 06:00-22:00
	ShiftT3 ShiftCode = "T3" // continuous shift, full day
)

var ShiftCodeValues = []string{
	string(ShiftT1),
	string(ShiftT2),
	string(ShiftT3),
}
