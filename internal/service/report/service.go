package report

import (
	"bytes"
	"context"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
	payrollService    payroll.PayrollService
	formatter         *Formatter
}

func NewReportService(
	attendanceService attendance.AttendanceService,
	payrollService payroll.PayrollService,
	formatter *Formatter,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceService: attendanceService,
		payrollService:    payrollService,
		formatter:         formatter,
	}
}

// AttendanceRows implements report.ReportService.
func (s *ReportServiceImpl) AttendanceRows(ctx context.Context, date string) ([]report.AttendanceRow, error) {
	daily, err := s.attendanceService.DailyReport(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.formatter.AttendanceRows(daily), nil
}

// PayrollRows implements report.ReportService.
func (s *ReportServiceImpl) PayrollRows(ctx context.Context, month string) ([]report.PayrollRow, error) {
	monthly, err := s.payrollService.MonthlyPayroll(ctx, payroll.MonthlyPayrollRequest{Month: month})
	if err != nil {
		return nil, err
	}
	return s.formatter.PayrollRows(monthly), nil
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, date string, format report.Format) (report.File, error) {
	rows, err := s.AttendanceRows(ctx, date)
	if err != nil {
		return report.File{}, err
	}

	labels := s.formatter.Labels()
	var buf bytes.Buffer
	switch format {
	case report.FormatCSV:
		err = WriteCSV(&buf, labels.AttendanceHeader, rows)
	case report.FormatXLSX:
		cells := make([][]string, 0, len(rows))
		for _, r := range rows {
			cells = append(cells, r.Cells())
		}
		err = WriteXLSX(&buf, labels.AttendanceSheet, labels.RightToLeft, labels.AttendanceHeader, cells)
	default:
		return report.File{}, report.ErrUnsupportedFormat
	}
	if err != nil {
		return report.File{}, err
	}

	return report.File{
		Name:        report.AttendanceFileName(date, format),
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// ExportPayroll implements report.ReportService.
func (s *ReportServiceImpl) ExportPayroll(ctx context.Context, month string, format report.Format) (report.File, error) {
	rows, err := s.PayrollRows(ctx, month)
	if err != nil {
		return report.File{}, err
	}

	labels := s.formatter.Labels()
	var buf bytes.Buffer
	switch format {
	case report.FormatCSV:
		err = WriteCSV(&buf, labels.PayrollHeader, rows)
	case report.FormatXLSX:
		cells := make([][]string, 0, len(rows))
		for _, r := range rows {
			cells = append(cells, r.Cells())
		}
		err = WriteXLSX(&buf, labels.PayrollSheet, labels.RightToLeft, labels.PayrollHeader, cells)
	default:
		return report.File{}, report.ErrUnsupportedFormat
	}
	if err != nil {
		return report.File{}, err
	}

	return report.File{
		Name:        report.PayrollFileName(month, format),
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}
