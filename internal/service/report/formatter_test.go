package report

import (
	"testing"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestFormatter_Units(t *testing.T) {
	f := NewFormatter(report.Arabic)

	assert.Equal(t, "8.50 ساعة", f.Hours(8.5))
	assert.Equal(t, "0.00 ساعة", f.Hours(0))
	assert.Equal(t, "3000.00 ريال", f.Money(decimal.NewFromInt(3000)))
	assert.Equal(t, "2790.00 ريال", f.Money(decimal.RequireFromString("2790")))

	en := NewFormatter(report.English)
	assert.Equal(t, "1.25 hours", en.Hours(1.25))
	assert.Equal(t, "Late", en.Status(attendance.StatusLate))
}

func TestFormatter_AttendanceRows(t *testing.T) {
	f := NewFormatter(report.Arabic)

	rows := f.AttendanceRows(attendance.DailyReportResponse{
		Date: "2024-03-05",
		Records: []attendance.DailyRecord{
			{
				EmployeeID:   "100001",
				EmployeeName: "أحمد محمد",
				CheckIn:      strPtr("08:00"),
				CheckOut:     strPtr("16:30"),
				WorkHours:    floatPtr(8.5),
				Status:       attendance.StatusPresent,
			},
			{
				EmployeeID:   "100002",
				EmployeeName: "فاطمة علي",
				CheckIn:      strPtr("09:10"),
				Status:       attendance.StatusLate,
			},
			{
				EmployeeID:   "100003",
				EmployeeName: "محمد حسن",
				Status:       attendance.StatusAbsent,
			},
		},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"100001", "أحمد محمد", "08:00", "16:30", "8.50 ساعة", "حاضر"}, rows[0].Cells())
	assert.Equal(t, []string{"100002", "فاطمة علي", "09:10", "-", "-", "متأخر"}, rows[1].Cells())
	assert.Equal(t, []string{"100003", "محمد حسن", "-", "-", "-", "غائب"}, rows[2].Cells())
}

func TestFormatter_PayrollRows(t *testing.T) {
	f := NewFormatter(report.Arabic)

	rows := f.PayrollRows(payroll.MonthlyPayroll{
		Year:  2024,
		Month: 3,
		Summaries: []payroll.SalarySummary{
			{
				EmployeeID:     "100002",
				EmployeeName:   "فاطمة علي",
				BaseSalary:     decimal.NewFromInt(3000),
				PresentDays:    20,
				AbsentDays:     2,
				LateDays:       3,
				TotalHours:     160,
				TotalDeduction: decimal.NewFromInt(210),
				FinalSalary:    decimal.NewFromInt(2790),
			},
		},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"100002", "فاطمة علي", "3000.00 ريال", "20", "2", "3", "160.00 ساعة", "210.00 ريال", "2790.00 ريال",
	}, rows[0].Cells())
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "attendance_2024-03-05.csv", report.AttendanceFileName("2024-03-05", report.FormatCSV))
	assert.Equal(t, "salary_report_2024-03.csv", report.PayrollFileName("2024-03", report.FormatCSV))
	assert.Equal(t, "salary_report_2024-03.xlsx", report.PayrollFileName("2024-03", report.FormatXLSX))
}
