package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/report"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		message := "Validation failed"
		if errors.Is(err, employee.ErrMissingRequiredField) {
			message = "Please fill in all required fields"
		}
		ValidationError(w, message, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors. Not found is checked first: an unknown id at
	// check-in carries both sentinels.
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "No employee found with this id")
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Employee id must be exactly 6 digits", nil)
	case errors.Is(err, employee.ErrDuplicateEmployeeID):
		Conflict(w, "Employee id already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		ConflictWarning(w, "Check-in already recorded for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		ConflictWarning(w, "Check-out already recorded for today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in recorded for today")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be YYYY-MM-DD", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoMonthSelected):
		BadRequest(w, "Please select a month", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Month must be YYYY-MM", nil)

	// Report and export errors
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format", nil)
	case errors.Is(err, storage.ErrNotFound):
		NotFound(w, "Export not found")
	case errors.Is(err, storage.ErrInvalidPath):
		BadRequest(w, "Invalid export name", nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
