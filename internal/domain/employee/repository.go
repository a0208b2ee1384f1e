package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee with an already-hashed password.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByUsername retrieves an employee by login name, including the
	// password hash. Used by login and by basic-auth verification.
	GetByUsername(ctx context.Context, username string) (Employee, error)

	// ListWithPositions returns all employees with their assigned positions
	// aggregated, ordered by full name.
	ListWithPositions(ctx context.Context) ([]EmployeeWithPositions, error)

	// Delete removes an employee by business key. Returns the deleted
	// emp_id, or pgx.ErrNoRows when no such employee exists.
	Delete(ctx context.Context, empID string) (string, error)
}
