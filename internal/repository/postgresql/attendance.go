package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func wallTimePtr(s *string) (*clock.WallTime, error) {
	if s == nil {
		return nil, nil
	}
	w, err := clock.ParseWallTime(*s)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func wallTimeString(w *clock.WallTime) *string {
	if w == nil {
		return nil
	}
	s := w.String()
	return &s
}

// scanEntry reads (employee_id, work_date, check_in, check_out, is_late, employee_name).
func scanEntry(row pgx.Row) (string, string, attendance.Entry, error) {
	var (
		employeeID, date string
		in, out          *string
		e                attendance.Entry
	)
	if err := row.Scan(&employeeID, &date, &in, &out, &e.IsLate, &e.EmployeeName); err != nil {
		return "", "", attendance.Entry{}, err
	}

	var err error
	if e.CheckIn, err = wallTimePtr(in); err != nil {
		return "", "", attendance.Entry{}, fmt.Errorf("entry %s/%s check_in: %w", date, employeeID, err)
	}
	if e.CheckOut, err = wallTimePtr(out); err != nil {
		return "", "", attendance.Entry{}, fmt.Errorf("entry %s/%s check_out: %w", date, employeeID, err)
	}
	return employeeID, date, e, nil
}

const entryColumns = `employee_id, to_char(work_date, 'YYYY-MM-DD'), check_in, check_out, is_late, employee_name`

// Mutate implements attendance.AttendanceRepository. The (date, employee) pair is
// serialised with a transaction scoped advisory lock so a first check-in racing
// another cannot both see an empty row.
func (r *attendanceRepositoryImpl) Mutate(ctx context.Context, date, employeeID string, fn func(attendance.Ledger) error) error {
	workDate, err := clock.ParseDate(date)
	if err != nil {
		return attendance.ErrInvalidDate
	}

	return WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, date+"/"+employeeID); err != nil {
			return fmt.Errorf("failed to lock attendance entry: %w", err)
		}

		query := `
			SELECT ` + entryColumns + `
			FROM attendance_entries
			WHERE employee_id = $1 AND work_date = $2
			FOR UPDATE
		`

		scratch := make(attendance.Ledger)
		_, _, current, err := scanEntry(tx.QueryRow(ctx, query, employeeID, workDate))
		switch {
		case err == nil:
			scratch.Put(date, employeeID, current)
		case err == pgx.ErrNoRows:
		default:
			return fmt.Errorf("failed to load attendance entry: %w", err)
		}

		if err := fn(scratch); err != nil {
			return err
		}

		updated, ok := scratch.EntryFor(employeeID, date)
		if !ok {
			return nil
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate entry id: %w", err)
		}

		upsert := `
			INSERT INTO attendance_entries (id, employee_id, work_date, check_in, check_out, is_late, employee_name)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (employee_id, work_date) DO UPDATE SET
				check_in = EXCLUDED.check_in,
				check_out = EXCLUDED.check_out,
				is_late = EXCLUDED.is_late,
				employee_name = EXCLUDED.employee_name,
				updated_at = NOW()
		`
		if _, err := tx.Exec(ctx, upsert,
			id, employeeID, workDate,
			wallTimeString(updated.CheckIn), wallTimeString(updated.CheckOut),
			updated.IsLate, updated.EmployeeName,
		); err != nil {
			return fmt.Errorf("failed to save attendance entry: %w", err)
		}
		return nil
	})
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date string) (map[string]attendance.Entry, error) {
	workDate, err := clock.ParseDate(date)
	if err != nil {
		return nil, attendance.ErrInvalidDate
	}

	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + entryColumns + ` FROM attendance_entries WHERE work_date = $1`

	rows, err := q.Query(ctx, query, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]attendance.Entry)
	for rows.Next() {
		employeeID, _, e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries[employeeID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return entries, nil
}

// LedgerBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) LedgerBetween(ctx context.Context, from, to string) (attendance.Ledger, error) {
	fromDate, err := clock.ParseDate(from)
	if err != nil {
		return nil, attendance.ErrInvalidDate
	}
	toDate, err := clock.ParseDate(to)
	if err != nil {
		return nil, attendance.ErrInvalidDate
	}

	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries
		WHERE work_date BETWEEN $1 AND $2
	`

	rows, err := q.Query(ctx, query, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance ledger: %w", err)
	}
	defer rows.Close()

	ledger := make(attendance.Ledger)
	for rows.Next() {
		employeeID, date, e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		ledger.Put(date, employeeID, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance ledger: %w", err)
	}
	return ledger, nil
}
