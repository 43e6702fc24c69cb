package fixtures

import (
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

// SampleEmployees returns the demo directory a fresh install starts with.
func SampleEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:            "100001",
			Name:          "أحمد محمد",
			Position:      "مدير",
			BaseSalary:    decimal.NewFromInt(5000),
			WorkStartTime: clock.MustParseWallTime("08:00"),
			WorkEndTime:   clock.MustParseWallTime("17:00"),
			JoinDate:      "2024-01-01",
		},
		{
			ID:            "100002",
			Name:          "فاطمة علي",
			Position:      "نادل",
			BaseSalary:    decimal.NewFromInt(3000),
			WorkStartTime: clock.MustParseWallTime("09:00"),
			WorkEndTime:   clock.MustParseWallTime("18:00"),
			JoinDate:      "2024-01-15",
		},
		{
			ID:            "100003",
			Name:          "محمد حسن",
			Position:      "طباخ",
			BaseSalary:    decimal.NewFromInt(3500),
			WorkStartTime: clock.MustParseWallTime("07:00"),
			WorkEndTime:   clock.MustParseWallTime("16:00"),
			JoinDate:      "2024-02-01",
		},
	}
}
