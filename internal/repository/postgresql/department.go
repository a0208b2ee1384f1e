package postgresql

import (
	"context"
	"fmt"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/department"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (guid, name)
		VALUES ($1, $2)
		RETURNING id, guid, name
	`

	var result department.Department
	err := q.QueryRow(ctx, query, dept.GUID, dept.Name).Scan(
		&result.ID,
		&result.GUID,
		&result.Name,
	)

	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return result, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, guid, name
		FROM departments
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.GUID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, guid string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM departments WHERE guid = $1 RETURNING guid`

	var deletedGUID string
	if err := q.QueryRow(ctx, query, guid).Scan(&deletedGUID); err != nil {
		return "", err
	}

	return deletedGUID, nil
}
