package assignment

import "context"

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)

	// List returns all assignments joined with employee and position names,
	// ordered by (full name, title).
	List(ctx context.Context) ([]ListRow, error)

	// ListByEmployee returns the positions assigned to one employee,
	// ordered by title.
	ListByEmployee(ctx context.Context, empID string) ([]EmployeePositionRow, error)

	// Delete removes an assignment by surrogate ID, returning the deleted
	// ID or pgx.ErrNoRows when absent.
	Delete(ctx context.Context, id int64) (int64, error)
}
