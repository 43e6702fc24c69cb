package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
)

type ValidationError struct {
	Field   string
	Message string
	Err     error
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Unwrap lets errors.Is match the sentinel carried by any field error.
func (v ValidationErrors) Unwrap() []error {
	var errs []error
	for _, e := range v {
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
	}
	return errs
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Employee IDs are exactly six digits.
var employeeIDRegex = regexp.MustCompile(`^[0-9]{6}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := clock.ParseDate(dateStr)
	return date, err == nil
}

// IsValidMonth accepts YYYY-MM.
func IsValidMonth(monthStr string) bool {
	_, _, err := clock.ParseMonth(monthStr)
	return err == nil
}

// IsValidWallTime accepts HH:MM.
func IsValidWallTime(s string) bool {
	_, err := clock.ParseWallTime(s)
	return err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
