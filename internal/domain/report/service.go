package report

import "context"

type ReportService interface {
	// AttendanceRows formats the attendance sheet for date.
	AttendanceRows(ctx context.Context, date string) ([]AttendanceRow, error)

	// PayrollRows formats the salary report for month (YYYY-MM).
	PayrollRows(ctx context.Context, month string) ([]PayrollRow, error)

	// ExportAttendance renders attendance_<date>.<format>.
	ExportAttendance(ctx context.Context, date string, format Format) (File, error)

	// ExportPayroll renders salary_report_<month>.<format>.
	ExportPayroll(ctx context.Context, month string, format Format) (File, error)
}
