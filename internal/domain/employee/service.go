package employee

import "context"

type EmployeeService interface {
	// Register validates and adds an employee to the directory.
	Register(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get looks an employee up by six digit id.
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	List(ctx context.Context) ([]EmployeeResponse, error)

	// Lookup returns the directory record itself, for other services.
	Lookup(ctx context.Context, id string) (Employee, error)

	// SeedIfEmpty registers the given employees when the directory has none.
	SeedIfEmpty(ctx context.Context, employees []Employee) (int, error)
}
