package attendance

import (
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	return validateEmployeeID(r.EmployeeID)
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	return validateEmployeeID(r.EmployeeID)
}

func validateEmployeeID(id string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(id) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckResponse reports the outcome of a check-in or check-out.
type CheckResponse struct {
	EmployeeID   string      `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	Date         string      `json:"date"`
	CheckIn      *string     `json:"check_in"`
	CheckOut     *string     `json:"check_out"`
	IsLate       bool        `json:"is_late"`
	Status       DailyStatus `json:"status"`
	WorkHours    *float64    `json:"work_hours,omitempty"`
}

// DailyRecord is one employee's line in a day's attendance sheet.
type DailyRecord struct {
	EmployeeID   string      `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	CheckIn      *string     `json:"check_in"`
	CheckOut     *string     `json:"check_out"`
	WorkHours    *float64    `json:"work_hours"`
	Status       DailyStatus `json:"status"`
}

type DailyReportResponse struct {
	Date    string        `json:"date"`
	Records []DailyRecord `json:"records"`
}

type DailySummaryResponse struct {
	Date           string `json:"date"`
	TotalEmployees int    `json:"total_employees"`
	Present        int    `json:"present"`
	Absent         int    `json:"absent"`
	Late           int    `json:"late"`
}

// NewCheckResponse builds a CheckResponse from a ledger entry.
func NewCheckResponse(employeeID, date string, e Entry) CheckResponse {
	resp := CheckResponse{
		EmployeeID:   employeeID,
		EmployeeName: e.EmployeeName,
		Date:         date,
		IsLate:       e.IsLate,
		Status:       Classify(&e),
	}
	if e.CheckIn != nil {
		s := e.CheckIn.String()
		resp.CheckIn = &s
	}
	if e.CheckOut != nil {
		s := e.CheckOut.String()
		resp.CheckOut = &s
		h := WorkHours(&e)
		resp.WorkHours = &h
	}
	return resp
}
