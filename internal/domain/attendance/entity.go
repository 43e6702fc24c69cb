package attendance

import "github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"

// Entry is one employee's attendance on one date.
type Entry struct {
	CheckIn  *clock.WallTime `json:"checkIn"`
	CheckOut *clock.WallTime `json:"checkOut"`

	// IsLate is fixed at check-in and never recomputed.
	IsLate bool `json:"isLate"`

	// EmployeeName is a display snapshot taken at check-in.
	EmployeeName string `json:"employeeName"`
}

// Ledger maps an ISO date (YYYY-MM-DD) to the entries recorded that day,
// keyed by employee id.
type Ledger map[string]map[string]Entry

type DailyStatus string

const (
	StatusPresent DailyStatus = "Present"
	StatusLate    DailyStatus = "Late"
	StatusAbsent  DailyStatus = "Absent"
)
