package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	calculator     *Calculator
}

func NewPayrollService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	calculator *Calculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		calculator:     calculator,
	}
}

func (s *PayrollServiceImpl) monthLedger(ctx context.Context, year int, month time.Month) (attendance.Ledger, error) {
	days := clock.MonthDays(year, month)
	ledger, err := s.attendanceRepo.LedgerBetween(ctx, days[0].Key, days[len(days)-1].Key)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance for %d-%02d: %w", year, month, err)
	}
	return ledger, nil
}

// MonthlyPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthlyPayroll(ctx context.Context, req payroll.MonthlyPayrollRequest) (payroll.MonthlyPayroll, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlyPayroll{}, err
	}
	year, month := req.Period()

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.MonthlyPayroll{}, fmt.Errorf("failed to list employees: %w", err)
	}

	ledger, err := s.monthLedger(ctx, year, month)
	if err != nil {
		return payroll.MonthlyPayroll{}, err
	}

	summaries := make([]payroll.SalarySummary, 0, len(employees))
	for _, emp := range employees {
		summaries = append(summaries, s.calculator.MonthlySalary(emp, year, month, ledger))
	}

	result := s.calculator.Aggregate(year, month, summaries)
	slog.Info("Payroll computed",
		"period", result.Period(),
		"employees", len(summaries),
		"total_salaries", result.TotalSalaries.StringFixed(2),
		"total_deductions", result.TotalDeductions.StringFixed(2),
	)
	return result, nil
}

// EmployeeSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) EmployeeSalary(ctx context.Context, req payroll.EmployeeSalaryRequest) (payroll.SalarySummary, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalarySummary{}, err
	}
	if !validator.IsValidEmployeeID(req.EmployeeID) {
		return payroll.SalarySummary{}, employee.ErrInvalidEmployeeID
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.SalarySummary{}, err
		}
		return payroll.SalarySummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	period := payroll.MonthlyPayrollRequest{Month: req.Month}
	year, month := period.Period()

	ledger, err := s.monthLedger(ctx, year, month)
	if err != nil {
		return payroll.SalarySummary{}, err
	}

	return s.calculator.MonthlySalary(emp, year, month, ledger), nil
}
