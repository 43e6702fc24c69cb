package localstore

import (
	"context"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

// Mutate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Mutate(ctx context.Context, date, employeeID string, fn func(attendance.Ledger) error) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	scratch := make(attendance.Ledger)
	if current := s.ledger.Lookup(employeeID, date); current != nil {
		scratch.Put(date, employeeID, *current)
	}
	if err := fn(scratch); err != nil {
		return err
	}

	updated, ok := scratch.EntryFor(employeeID, date)
	if !ok {
		return nil
	}

	next := s.ledger.Clone()
	next.Put(date, employeeID, updated)
	if err := s.save(s.employees, next); err != nil {
		return err
	}
	s.ledger = next
	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date string) (map[string]attendance.Entry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return attendance.Ledger{date: s.ledger[date]}.Clone()[date], nil
}

// LedgerBetween implements attendance.AttendanceRepository. Date keys are ISO
// formatted so string comparison orders them.
func (r *attendanceRepositoryImpl) LedgerBetween(ctx context.Context, from, to string) (attendance.Ledger, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(attendance.Ledger)
	for date, day := range s.ledger {
		if date < from || date > to {
			continue
		}
		for id, e := range day {
			out.Put(date, id, e)
		}
	}
	return out.Clone(), nil
}
