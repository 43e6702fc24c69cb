package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
)

// CheckIn records now as emp's check-in on date and reports whether it was late.
// Lateness compares now against the scheduled start on now's calendar day.
func (l Ledger) CheckIn(emp employee.Employee, date string, now time.Time) (bool, error) {
	if existing, ok := l.EntryFor(emp.ID, date); ok && existing.CheckIn != nil {
		return false, ErrAlreadyCheckedIn
	}

	isLate := now.After(emp.WorkStartTime.On(now))
	in := clock.WallTimeOf(now)

	if l[date] == nil {
		l[date] = make(map[string]Entry)
	}
	l[date][emp.ID] = Entry{
		CheckIn:      &in,
		CheckOut:     nil,
		IsLate:       isLate,
		EmployeeName: emp.Name,
	}
	return isLate, nil
}

// CheckOut records now as emp's check-out on date.
func (l Ledger) CheckOut(emp employee.Employee, date string, now time.Time) error {
	entry, ok := l.EntryFor(emp.ID, date)
	if !ok || entry.CheckIn == nil {
		return ErrNotCheckedIn
	}
	if entry.CheckOut != nil {
		return ErrAlreadyCheckedOut
	}

	out := clock.WallTimeOf(now)
	entry.CheckOut = &out
	l[date][emp.ID] = entry
	return nil
}

// EntryFor returns the entry for (employeeID, date). Absence is not an error.
func (l Ledger) EntryFor(employeeID, date string) (Entry, bool) {
	day, ok := l[date]
	if !ok {
		return Entry{}, false
	}
	entry, ok := day[employeeID]
	return entry, ok
}

// Lookup is EntryFor returning nil when there is no entry.
func (l Ledger) Lookup(employeeID, date string) *Entry {
	entry, ok := l.EntryFor(employeeID, date)
	if !ok {
		return nil
	}
	return &entry
}

// Put stores entry, replacing whatever was there.
func (l Ledger) Put(date, employeeID string, entry Entry) {
	if l[date] == nil {
		l[date] = make(map[string]Entry)
	}
	l[date][employeeID] = entry
}

// Clone deep-copies the ledger.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for date, day := range l {
		copied := make(map[string]Entry, len(day))
		for id, e := range day {
			copied[id] = e.clone()
		}
		out[date] = copied
	}
	return out
}

func (e Entry) clone() Entry {
	if e.CheckIn != nil {
		in := *e.CheckIn
		e.CheckIn = &in
	}
	if e.CheckOut != nil {
		out := *e.CheckOut
		e.CheckOut = &out
	}
	return e
}
