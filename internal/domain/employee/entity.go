package employee

import (
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

// Employee is a directory record. The ID is a unique six digit string.
type Employee struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Position      string          `json:"position"`
	BaseSalary    decimal.Decimal `json:"salary"`
	WorkStartTime clock.WallTime  `json:"workStartTime"`
	WorkEndTime   clock.WallTime  `json:"workEndTime"`
	JoinDate      string          `json:"joinDate"`
	CreatedAt     time.Time       `json:"-"`
}
