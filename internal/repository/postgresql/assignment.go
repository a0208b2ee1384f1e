package postgresql

import (
	"context"
	"fmt"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/assignment"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_positions (emp_id, pos_id, assigned_rate)
		VALUES ($1, $2, $3)
		RETURNING id, emp_id, pos_id, assigned_rate
	`

	var result assignment.Assignment
	err := q.QueryRow(ctx, query, a.EmpID, a.PosID, a.AssignedRate).Scan(
		&result.ID,
		&result.EmpID,
		&result.PosID,
		&result.AssignedRate,
	)

	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return result, nil
}

// List implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) List(ctx context.Context) ([]assignment.ListRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ep.id, ep.emp_id, ep.pos_id, ep.assigned_rate,
			   e.full_name, p.title, p.department_guid
		FROM employee_positions ep
		JOIN employees e ON ep.emp_id = e.emp_id
		JOIN positions p ON ep.pos_id = p.pos_id
		ORDER BY e.full_name, p.title
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.ListRow
	for rows.Next() {
		var row assignment.ListRow
		err := rows.Scan(
			&row.ID,
			&row.EmpID,
			&row.PosID,
			&row.AssignedRate,
			&row.FullName,
			&row.Title,
			&row.DepartmentGUID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}

// ListByEmployee implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListByEmployee(ctx context.Context, empID string) ([]assignment.EmployeePositionRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ep.emp_id, ep.pos_id, ep.assigned_rate, p.title AS position_title
		FROM employee_positions ep
		JOIN positions p ON ep.pos_id = p.pos_id
		WHERE ep.emp_id = $1
		ORDER BY p.title
	`

	rows, err := q.Query(ctx, query, empID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee positions: %w", err)
	}
	defer rows.Close()

	var positions []assignment.EmployeePositionRow
	for rows.Next() {
		var row assignment.EmployeePositionRow
		err := rows.Scan(&row.EmpID, &row.PosID, &row.AssignedRate, &row.PositionTitle)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee position: %w", err)
		}
		positions = append(positions, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return positions, nil
}

// Delete implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employee_positions WHERE id = $1 RETURNING id`

	var deletedID int64
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		return 0, err
	}

	return deletedID, nil
}
