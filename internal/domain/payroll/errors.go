package payroll

import "errors"

var (
	ErrNoMonthSelected = errors.New("a month must be selected")
	ErrInvalidPeriod   = errors.New("month must be YYYY-MM")
)
