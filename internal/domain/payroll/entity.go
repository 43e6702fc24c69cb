package payroll

import (
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

// SalaryDivisor is the fixed number of days a monthly salary is divided by to
// get the daily rate, whatever the length of the month.
const SalaryDivisor = 30

// Policy holds the deduction rules a payroll run is computed with.
type Policy struct {
	// LatenessRate is the share of a daily rate deducted per late day.
	LatenessRate decimal.Decimal

	// WorkWeek lists the weekdays on which an absence is counted.
	WorkWeek clock.WorkWeek
}

// DefaultPolicy deducts 10% of a daily rate per late day over a Sunday to
// Thursday week.
func DefaultPolicy() Policy {
	return Policy{
		LatenessRate: decimal.NewFromFloat(0.10),
		WorkWeek:     clock.DefaultWorkWeek(),
	}
}

// SalarySummary is one employee's payroll for one month. It is derived from the
// ledger on demand and never stored.
type SalarySummary struct {
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      string          `json:"employee_name"`
	Year              int             `json:"year"`
	Month             time.Month      `json:"month"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	PresentDays       int             `json:"present_days"`
	AbsentDays        int             `json:"absent_days"`
	LateDays          int             `json:"late_days"`
	TotalHours        float64         `json:"total_hours"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	AbsenceDeduction  decimal.Decimal `json:"absence_deduction"`
	LatenessDeduction decimal.Decimal `json:"lateness_deduction"`
	TotalDeduction    decimal.Decimal `json:"total_deduction"`
	FinalSalary       decimal.Decimal `json:"final_salary"`
}

// MonthlyPayroll is every employee's summary for a month plus the totals.
type MonthlyPayroll struct {
	Year            int             `json:"year"`
	Month           time.Month      `json:"month"`
	Summaries       []SalarySummary `json:"summaries"`
	TotalSalaries   decimal.Decimal `json:"total_salaries"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalaries     decimal.Decimal `json:"net_salaries"`
}

// Period formats the month as YYYY-MM.
func (m MonthlyPayroll) Period() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format(clock.MonthLayout)
}
