package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, position, base_salary, work_start_time, work_end_time,
	to_char(join_date, 'YYYY-MM-DD'), created_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		e          employee.Employee
		start, end string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Position, &e.BaseSalary, &start, &end, &e.JoinDate, &e.CreatedAt); err != nil {
		return employee.Employee{}, err
	}

	var err error
	if e.WorkStartTime, err = clock.ParseWallTime(start); err != nil {
		return employee.Employee{}, fmt.Errorf("employee %s work_start_time: %w", e.ID, err)
	}
	if e.WorkEndTime, err = clock.ParseWallTime(end); err != nil {
		return employee.Employee{}, fmt.Errorf("employee %s work_end_time: %w", e.ID, err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	joinDate, err := clock.ParseDate(newEmployee.JoinDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid join date %q: %w", newEmployee.JoinDate, err)
	}

	query := `
		INSERT INTO employees (id, name, position, base_salary, work_start_time, work_end_time, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Name, newEmployee.Position, newEmployee.BaseSalary,
		newEmployee.WorkStartTime.String(), newEmployee.WorkEndTime.String(), joinDate,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return employee.Employee{}, employee.ErrDuplicateEmployeeID
		}
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
