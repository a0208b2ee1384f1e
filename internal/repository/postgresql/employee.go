package postgresql

import (
	"context"
	"fmt"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/employee"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (emp_id, full_name, date_of_birth, username, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, emp_id, full_name, date_of_birth, username, role
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query,
		emp.EmpID,
		emp.FullName,
		emp.DateOfBirth,
		emp.Username,
		emp.PasswordHash,
		emp.Role,
	).Scan(
		&result.ID,
		&result.EmpID,
		&result.FullName,
		&result.DateOfBirth,
		&result.Username,
		&result.Role,
	)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetByUsername implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUsername(ctx context.Context, username string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, emp_id, full_name, date_of_birth, username, password_hash, role
		FROM employees
		WHERE username = $1
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query, username).Scan(
		&result.ID,
		&result.EmpID,
		&result.FullName,
		&result.DateOfBirth,
		&result.Username,
		&result.PasswordHash,
		&result.Role,
	)

	if err != nil {
		return employee.Employee{}, err
	}

	return result, nil
}

// ListWithPositions implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListWithPositions(ctx context.Context) ([]employee.EmployeeWithPositions, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.emp_id, e.full_name, e.date_of_birth::text, e.username,
			   p.pos_id, p.title, ep.assigned_rate
		FROM employees e
		LEFT JOIN employee_positions ep ON e.emp_id = ep.emp_id
		LEFT JOIN positions p ON ep.pos_id = p.pos_id
		ORDER BY e.full_name, p.title
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	// One output row per employee; the left-joined position columns fold
	// into the positions slice.
	employeeMap := make(map[string]*employee.EmployeeWithPositions)
	var order []string

	for rows.Next() {
		var (
			emp          employee.EmployeeWithPositions
			posID        *string
			title        *string
			assignedRate *float64
		)

		err := rows.Scan(
			&emp.EmpID,
			&emp.FullName,
			&emp.DateOfBirth,
			&emp.Username,
			&posID,
			&title,
			&assignedRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}

		existing, ok := employeeMap[emp.EmpID]
		if !ok {
			emp.Positions = []employee.AssignedPosition{}
			employeeMap[emp.EmpID] = &emp
			order = append(order, emp.EmpID)
			existing = &emp
		}

		if posID != nil {
			existing.Positions = append(existing.Positions, employee.AssignedPosition{
				PosID:        *posID,
				Title:        *title,
				AssignedRate: *assignedRate,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	result := make([]employee.EmployeeWithPositions, 0, len(order))
	for _, empID := range order {
		result = append(result, *employeeMap[empID])
	}

	return result, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, empID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE emp_id = $1 RETURNING emp_id`

	var deletedID string
	if err := q.QueryRow(ctx, query, empID).Scan(&deletedID); err != nil {
		return "", err
	}

	return deletedID, nil
}
