package employee

import "context"

// EmployeeRepository stores the employee directory.
type EmployeeRepository interface {
	// Create inserts a new employee. Implementations return ErrDuplicateEmployeeID
	// when the id is taken.
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID returns ErrEmployeeNotFound when no employee has the id.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List returns every employee in registration order.
	List(ctx context.Context) ([]Employee, error)

	Count(ctx context.Context) (int, error)
}
