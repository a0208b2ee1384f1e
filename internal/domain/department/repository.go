package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	List(ctx context.Context) ([]Department, error)

	// Delete removes a department by GUID, returning the deleted GUID or
	// pgx.ErrNoRows when absent.
	Delete(ctx context.Context, guid string) (string, error)
}
