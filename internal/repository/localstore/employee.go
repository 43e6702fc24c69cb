package localstore

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.employees {
		if e.ID == newEmployee.ID {
			return employee.Employee{}, employee.ErrDuplicateEmployeeID
		}
	}

	if newEmployee.CreatedAt.IsZero() {
		newEmployee.CreatedAt = time.Now()
	}

	next := make([]employee.Employee, len(s.employees), len(s.employees)+1)
	copy(next, s.employees)
	next = append(next, newEmployee)

	if err := s.save(next, s.ledger); err != nil {
		return employee.Employee{}, err
	}
	s.employees = next
	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]employee.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.employees), nil
}
