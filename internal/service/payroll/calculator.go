package payroll

import (
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

type Calculator struct {
	policy payroll.Policy
}

func NewCalculator(policy payroll.Policy) *Calculator {
	if policy.WorkWeek == nil {
		policy.WorkWeek = clock.DefaultWorkWeek()
	}
	return &Calculator{policy: policy}
}

// MonthlySalary walks every day of the month and applies the deduction rules.
// The ledger is only read.
func (c *Calculator) MonthlySalary(emp employee.Employee, year int, month time.Month, ledger attendance.Ledger) payroll.SalarySummary {
	summary := payroll.SalarySummary{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Year:         year,
		Month:        month,
		BaseSalary:   emp.BaseSalary,
	}

	for _, day := range clock.MonthDays(year, month) {
		entry := ledger.Lookup(emp.ID, day.Key)

		if attendance.Classify(entry) != attendance.StatusAbsent {
			summary.PresentDays++
			if entry.IsLate {
				summary.LateDays++
			}
			summary.TotalHours += attendance.WorkHours(entry)
			continue
		}

		// Weekend absences are never penalized.
		if c.policy.WorkWeek.Contains(day.Weekday) {
			summary.AbsentDays++
		}
	}

	summary.DailyRate = emp.BaseSalary.Div(decimal.NewFromInt(payroll.SalaryDivisor))
	summary.AbsenceDeduction = decimal.NewFromInt(int64(summary.AbsentDays)).Mul(summary.DailyRate)
	summary.LatenessDeduction = decimal.NewFromInt(int64(summary.LateDays)).Mul(summary.DailyRate).Mul(c.policy.LatenessRate)
	summary.TotalDeduction = summary.AbsenceDeduction.Add(summary.LatenessDeduction)

	// Not clamped: deductions larger than the base salary go negative.
	summary.FinalSalary = emp.BaseSalary.Sub(summary.TotalDeduction)

	return summary
}

// Aggregate totals a month's summaries.
func (c *Calculator) Aggregate(year int, month time.Month, summaries []payroll.SalarySummary) payroll.MonthlyPayroll {
	result := payroll.MonthlyPayroll{
		Year:            year,
		Month:           month,
		Summaries:       summaries,
		TotalSalaries:   decimal.Zero,
		TotalDeductions: decimal.Zero,
	}
	for _, s := range summaries {
		result.TotalSalaries = result.TotalSalaries.Add(s.BaseSalary)
		result.TotalDeductions = result.TotalDeductions.Add(s.TotalDeduction)
	}
	result.NetSalaries = result.TotalSalaries.Sub(result.TotalDeductions)
	return result
}
