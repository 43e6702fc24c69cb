// Package localstore keeps the employee directory and the attendance ledger in
// a single JSON document on disk, or only in memory when no path is given.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
)

// document is the on-disk layout. The keys match the ones the browser client
// kept in localStorage so an exported dump can be loaded as is.
type document struct {
	Employees  []employee.Employee `json:"attendance_employees"`
	Attendance attendance.Ledger   `json:"attendance_data"`
}

type Store struct {
	mu        sync.Mutex
	path      string
	employees []employee.Employee
	ledger    attendance.Ledger
}

// NewMemory returns a store that is never written to disk.
func NewMemory() *Store {
	return &Store{ledger: make(attendance.Ledger)}
}

// Open loads the document at path. A missing file starts an empty store. A file
// that cannot be decoded is moved aside to <path>.corrupt and the store starts
// empty.
func Open(path string) (*Store, error) {
	s := &Store{path: path, ledger: make(attendance.Ledger)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("Data file is malformed, starting with an empty dataset",
			"path", path,
			"error", err,
		)
		if err := os.Rename(path, path+".corrupt"); err != nil {
			return nil, fmt.Errorf("failed to move malformed data file aside: %w", err)
		}
		return s, nil
	}

	s.employees = doc.Employees
	if doc.Attendance != nil {
		s.ledger = doc.Attendance
	}
	slog.Info("Data file loaded",
		"path", path,
		"employees", len(s.employees),
		"days", len(s.ledger),
	)
	return s, nil
}

// Path is empty for an in-memory store.
func (s *Store) Path() string {
	return s.path
}

// save writes the given state. Callers hold s.mu and commit the state to s only
// after save succeeds.
func (s *Store) save(employees []employee.Employee, ledger attendance.Ledger) error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(document{Employees: employees, Attendance: ledger}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
