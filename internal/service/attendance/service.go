package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
)

const (
	EventCheckIn  = "check_in"
	EventCheckOut = "check_out"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
	hub            *sse.Hub
	locks          *keyLocks
}

// NewAttendanceService wires the service. hub may be nil; otherwise every
// recorded check-in and check-out is published on the topic of its date.
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	hub *sse.Hub,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
		hub:            hub,
		locks:          newKeyLocks(),
	}
}

func (a *AttendanceServiceImpl) publish(name string, resp attendance.CheckResponse) {
	if a.hub == nil {
		return
	}
	a.hub.Publish(sse.Event{Topic: resp.Date, Event: name, Data: resp})
}

// findEmployee resolves id to a directory record. Both a malformed id and an
// unknown one are reported as ErrInvalidEmployeeID.
func (a *AttendanceServiceImpl) findEmployee(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidEmployeeID(id) {
		return employee.Employee{}, employee.ErrInvalidEmployeeID
	}

	emp, err := a.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, fmt.Errorf("%w: %w", employee.ErrInvalidEmployeeID, err)
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	emp, err := a.findEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	now := a.clock.Now()
	date := clock.DateKey(now)

	unlock := a.locks.Lock(date + "/" + emp.ID)
	defer unlock()

	var recorded attendance.Entry
	err = a.attendanceRepo.Mutate(ctx, date, emp.ID, func(l attendance.Ledger) error {
		if _, err := l.CheckIn(emp, date, now); err != nil {
			return err
		}
		recorded, _ = l.EntryFor(emp.ID, date)
		return nil
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.CheckResponse{}, err
		}
		return attendance.CheckResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	slog.Info("Employee checked in",
		"employee_id", emp.ID,
		"date", date,
		"check_in", recorded.CheckIn.String(),
		"late", recorded.IsLate,
	)
	resp := attendance.NewCheckResponse(emp.ID, date, recorded)
	a.publish(EventCheckIn, resp)
	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	emp, err := a.findEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	now := a.clock.Now()
	date := clock.DateKey(now)

	unlock := a.locks.Lock(date + "/" + emp.ID)
	defer unlock()

	var recorded attendance.Entry
	err = a.attendanceRepo.Mutate(ctx, date, emp.ID, func(l attendance.Ledger) error {
		if err := l.CheckOut(emp, date, now); err != nil {
			return err
		}
		recorded, _ = l.EntryFor(emp.ID, date)
		return nil
	})
	if err != nil {
		if errors.Is(err, attendance.ErrNotCheckedIn) || errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			return attendance.CheckResponse{}, err
		}
		return attendance.CheckResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	slog.Info("Employee checked out",
		"employee_id", emp.ID,
		"date", date,
		"check_out", recorded.CheckOut.String(),
		"work_hours", attendance.WorkHours(&recorded),
	)
	resp := attendance.NewCheckResponse(emp.ID, date, recorded)
	a.publish(EventCheckOut, resp)
	return resp, nil
}

// DailyReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailyReport(ctx context.Context, date string) (attendance.DailyReportResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.DailyReportResponse{}, attendance.ErrInvalidDate
	}

	employees, err := a.employeeRepo.List(ctx)
	if err != nil {
		return attendance.DailyReportResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	entries, err := a.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return attendance.DailyReportResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	records := make([]attendance.DailyRecord, 0, len(employees))
	for _, emp := range employees {
		record := attendance.DailyRecord{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Status:       attendance.StatusAbsent,
		}
		if entry, ok := entries[emp.ID]; ok {
			record.Status = attendance.Classify(&entry)
			if entry.CheckIn != nil {
				in := entry.CheckIn.String()
				record.CheckIn = &in
			}
			if entry.CheckOut != nil {
				out := entry.CheckOut.String()
				record.CheckOut = &out
			}
			if entry.CheckIn != nil && entry.CheckOut != nil {
				hours := attendance.WorkHours(&entry)
				record.WorkHours = &hours
			}
		}
		records = append(records, record)
	}

	return attendance.DailyReportResponse{Date: date, Records: records}, nil
}

// DailySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailySummary(ctx context.Context, date string) (attendance.DailySummaryResponse, error) {
	report, err := a.DailyReport(ctx, date)
	if err != nil {
		return attendance.DailySummaryResponse{}, err
	}

	summary := attendance.DailySummaryResponse{
		Date:           date,
		TotalEmployees: len(report.Records),
	}
	for _, r := range report.Records {
		switch r.Status {
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusLate:
			summary.Present++
			summary.Late++
		default:
			summary.Present++
		}
	}
	return summary, nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today() string {
	return clock.DateKey(a.clock.Now())
}
