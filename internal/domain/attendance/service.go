package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records today's check-in for an employee.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckResponse, error)

	// CheckOut records today's check-out for an employee who has checked in.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckResponse, error)

	// DailyReport lists every directory employee's attendance for date.
	DailyReport(ctx context.Context, date string) (DailyReportResponse, error)

	// DailySummary counts present, absent and late employees for date.
	DailySummary(ctx context.Context, date string) (DailySummaryResponse, error)

	// Today returns the current date key in the service's location.
	Today() string
}
