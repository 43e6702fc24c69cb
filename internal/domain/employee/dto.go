package employee

import (
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	Salary        string `json:"salary"`
	WorkStartTime string `json:"work_start_time"`
	WorkEndTime   string `json:"work_end_time"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"id", r.ID},
		{"name", r.Name},
		{"position", r.Position},
		{"salary", r.Salary},
		{"work_start_time", r.WorkStartTime},
		{"work_end_time", r.WorkEndTime},
	}
	for _, f := range required {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: "is required",
				Err:     ErrMissingRequiredField,
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}

	if !validator.IsValidEmployeeID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "must be exactly 6 digits",
			Err:     ErrInvalidEmployeeID,
		})
	}

	if salary, err := decimal.NewFromString(r.Salary); err != nil || !salary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "must be a positive number",
			Err:     ErrInvalidSalary,
		})
	}

	if !validator.IsValidWallTime(r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{Field: "work_start_time", Message: "must be HH:MM"})
	}
	if !validator.IsValidWallTime(r.WorkEndTime) {
		errs = append(errs, validator.ValidationError{Field: "work_end_time", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEmployee converts a validated request. JoinDate is left to the caller.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	salary, _ := decimal.NewFromString(r.Salary)
	return Employee{
		ID:            r.ID,
		Name:          r.Name,
		Position:      r.Position,
		BaseSalary:    salary,
		WorkStartTime: clock.MustParseWallTime(r.WorkStartTime),
		WorkEndTime:   clock.MustParseWallTime(r.WorkEndTime),
	}
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Position      string          `json:"position"`
	Salary        decimal.Decimal `json:"salary"`
	WorkStartTime string          `json:"work_start_time"`
	WorkEndTime   string          `json:"work_end_time"`
	JoinDate      string          `json:"join_date"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Position:      e.Position,
		Salary:        e.BaseSalary,
		WorkStartTime: e.WorkStartTime.String(),
		WorkEndTime:   e.WorkEndTime.String(),
		JoinDate:      e.JoinDate,
	}
}
