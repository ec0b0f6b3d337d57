package employee

import "context"

// EmployeeRepository reads the employee roster.
type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no employee matches.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns every employee whose status is active.
	ListActive(ctx context.Context) ([]Employee, error)
}
