package payroll

import (
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
)

type MonthlyPayrollRequest struct {
	Month string `json:"month"` // YYYY-MM
}

func (r *MonthlyPayrollRequest) Validate() error {
	if validator.IsEmpty(r.Month) {
		return ErrNoMonthSelected
	}

	var errs validator.ValidationErrors
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "must be YYYY-MM",
			Err:     ErrInvalidPeriod,
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the parsed year and month. Call after Validate.
func (r *MonthlyPayrollRequest) Period() (int, time.Month) {
	year, month, _ := clock.ParseMonth(r.Month)
	return year, month
}

type EmployeeSalaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

func (r *EmployeeSalaryRequest) Validate() error {
	inner := MonthlyPayrollRequest{Month: r.Month}
	if err := inner.Validate(); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
