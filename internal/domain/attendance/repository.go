package attendance

import "context"

// AttendanceRepository persists the ledger.
type AttendanceRepository interface {
	// Mutate loads the entry for (date, employeeID), lets fn change it and saves the
	// result, all as one unit. fn sees a ledger holding only that entry (or none);
	// when fn fails nothing is written.
	Mutate(ctx context.Context, date, employeeID string, fn func(Ledger) error) error

	// ListByDate returns the entries recorded on date keyed by employee id.
	ListByDate(ctx context.Context, date string) (map[string]Entry, error)

	// LedgerBetween returns a ledger holding every entry with from <= date <= to.
	LedgerBetween(ctx context.Context, from, to string) (Ledger, error)
}
