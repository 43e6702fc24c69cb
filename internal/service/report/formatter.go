package report

import (
	"strconv"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/report"
	"github.com/shopspring/decimal"
)

// Formatter turns attendance and payroll aggregates into display rows.
// Hours and money are rounded to two decimals and suffixed with their unit.
type Formatter struct {
	labels report.Labels
}

func NewFormatter(labels report.Labels) *Formatter {
	return &Formatter{labels: labels}
}

func (f *Formatter) Labels() report.Labels {
	return f.labels
}

func (f *Formatter) Hours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64) + " " + f.labels.HoursUnit
}

func (f *Formatter) Money(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + f.labels.CurrencyUnit
}

func (f *Formatter) Status(s attendance.DailyStatus) string {
	switch s {
	case attendance.StatusPresent:
		return f.labels.Present
	case attendance.StatusLate:
		return f.labels.Late
	default:
		return f.labels.Absent
	}
}

func (f *Formatter) orBlank(s *string) string {
	if s == nil {
		return f.labels.Blank
	}
	return *s
}

// AttendanceRows keeps the record order of the daily report.
func (f *Formatter) AttendanceRows(daily attendance.DailyReportResponse) []report.AttendanceRow {
	rows := make([]report.AttendanceRow, 0, len(daily.Records))
	for _, r := range daily.Records {
		hours := f.labels.Blank
		if r.WorkHours != nil {
			hours = f.Hours(*r.WorkHours)
		}
		rows = append(rows, report.AttendanceRow{
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.EmployeeName,
			CheckIn:      f.orBlank(r.CheckIn),
			CheckOut:     f.orBlank(r.CheckOut),
			WorkHours:    hours,
			Status:       f.Status(r.Status),
		})
	}
	return rows
}

// PayrollRows keeps the summary order of the monthly payroll.
func (f *Formatter) PayrollRows(p payroll.MonthlyPayroll) []report.PayrollRow {
	rows := make([]report.PayrollRow, 0, len(p.Summaries))
	for _, s := range p.Summaries {
		rows = append(rows, report.PayrollRow{
			EmployeeID:   s.EmployeeID,
			EmployeeName: s.EmployeeName,
			BaseSalary:   f.Money(s.BaseSalary),
			PresentDays:  s.PresentDays,
			AbsentDays:   s.AbsentDays,
			LateDays:     s.LateDays,
			TotalHours:   f.Hours(s.TotalHours),
			Deductions:   f.Money(s.TotalDeduction),
			FinalSalary:  f.Money(s.FinalSalary),
		})
	}
	return rows
}
