package cron

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/report"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/storage"
)

// ExportJobs writes finished periods to a file sink: yesterday's attendance
// sheet every day, and last month's salary report on the first of the month.
// A file already present in the sink is not written again, so the jobs can run
// on a short interval.
type ExportJobs struct {
	reportService report.ReportService
	sink          storage.FileStorage
	clock         clock.Clock
	format        report.Format
}

func NewExportJobs(reportService report.ReportService, sink storage.FileStorage, clk clock.Clock) *ExportJobs {
	return &ExportJobs{
		reportService: reportService,
		sink:          sink,
		clock:         clk,
		format:        report.FormatCSV,
	}
}

func (j *ExportJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("export_daily_attendance", 1*time.Hour, j.ExportDailyAttendance)
	scheduler.AddJob("export_monthly_payroll", 1*time.Hour, j.ExportMonthlyPayroll)
}

// ExportDailyAttendance writes the previous day's attendance sheet.
func (j *ExportJobs) ExportDailyAttendance(ctx context.Context) error {
	yesterday := clock.DateKey(j.clock.Now().AddDate(0, 0, -1))

	return j.export(ctx, "attendance", func() (report.File, error) {
		return j.reportService.ExportAttendance(ctx, yesterday, j.format)
	}, report.AttendanceFileName(yesterday, j.format))
}

// ExportMonthlyPayroll writes the previous month's salary report. It only does
// anything on the first day of a month.
func (j *ExportJobs) ExportMonthlyPayroll(ctx context.Context) error {
	now := j.clock.Now()
	if now.Day() != 1 {
		return nil
	}
	period := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -1, 0).
		Format(clock.MonthLayout)

	return j.export(ctx, "payroll", func() (report.File, error) {
		return j.reportService.ExportPayroll(ctx, period, j.format)
	}, report.PayrollFileName(period, j.format))
}

func (j *ExportJobs) export(ctx context.Context, kind string, render func() (report.File, error), name string) error {
	exists, err := j.sink.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check %s export: %w", kind, err)
	}
	if exists {
		return nil
	}

	file, err := render()
	if err != nil {
		return fmt.Errorf("failed to render %s export: %w", kind, err)
	}

	path, err := j.sink.Upload(ctx, bytes.NewReader(file.Body), file.Name, file.ContentType)
	if err != nil {
		return fmt.Errorf("failed to store %s export: %w", kind, err)
	}

	slog.Info("Cron: export written", "kind", kind, "path", path, "bytes", len(file.Body))
	return nil
}
