package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, clk clock.Clock) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := req.ToEmployee()
	newEmployee.JoinDate = clock.DateKey(s.clock.Now())

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, employee.ErrDuplicateEmployeeID) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee registered", "employee_id", created.ID, "position", created.Position)
	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.Lookup(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Lookup implements employee.EmployeeService. Ids that are not six digits are
// rejected without touching the repository.
func (s *EmployeeServiceImpl) Lookup(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidEmployeeID(id) {
		return employee.Employee{}, employee.ErrInvalidEmployeeID
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// SeedIfEmpty implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SeedIfEmpty(ctx context.Context, employees []employee.Employee) (int, error) {
	count, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, e := range employees {
		if _, err := s.employeeRepo.Create(ctx, e); err != nil {
			return 0, fmt.Errorf("failed to seed employee %s: %w", e.ID, err)
		}
	}
	slog.Info("Seeded sample employees", "count", len(employees))
	return len(employees), nil
}
