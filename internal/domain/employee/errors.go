package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrInvalidEmployeeID    = errors.New("employee id must be exactly 6 digits")
	ErrDuplicateEmployeeID  = errors.New("employee id already exists")
	ErrMissingRequiredField = errors.New("required field is missing")
	ErrInvalidSalary        = errors.New("salary must be a positive amount")
)
