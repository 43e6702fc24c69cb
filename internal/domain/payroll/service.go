package payroll

import "context"

type PayrollService interface {
	// MonthlyPayroll computes every employee's salary for the requested month.
	MonthlyPayroll(ctx context.Context, req MonthlyPayrollRequest) (MonthlyPayroll, error)

	// EmployeeSalary computes a single employee's salary for the requested month.
	EmployeeSalary(ctx context.Context, req EmployeeSalaryRequest) (SalarySummary, error)
}
