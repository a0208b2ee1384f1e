package postgresql

import (
	"context"
	"fmt"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/report"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/database"
)

type ReportRepository interface {
	// GetMonthlyReport returns joined attendance rows for the half-open
	// date range [monthStart, monthEnd), ordered by (department name,
	// employee full name, work date).
	GetMonthlyReport(ctx context.Context, monthStart, monthEnd string) ([]report.ReportRow, error)

	// GetAttendanceRows returns all attendance records joined with
	// employee and assignment metadata, ordered by (full name, pos_id,
	// date_work), the ordering BuildExportDocument requires.
	GetAttendanceRows(ctx context.Context) ([]report.AttendanceRow, error)

	// GetAssignmentRows returns the full assignment roster joined with
	// employee metadata, ordered by (full name, pos_id).
	GetAssignmentRows(ctx context.Context) ([]report.AssignmentRow, error)
}

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetMonthlyReport implements ReportRepository.
func (r *reportRepositoryImpl) GetMonthlyReport(ctx context.Context, monthStart, monthEnd string) ([]report.ReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.name AS department_name,
			   e.full_name,
			   e.emp_id,
			   t.date_work,
			   t.check_in,
			   t.check_out,
			   p.title AS position_title
		FROM timesheets t
		JOIN employees e ON t.emp_id = e.emp_id
		JOIN employee_positions ep ON e.emp_id = ep.emp_id AND t.pos_id = ep.pos_id
		JOIN positions p ON t.pos_id = p.pos_id
		JOIN departments d ON p.department_guid = d.guid
		WHERE t.date_work >= $1 AND t.date_work < $2
		ORDER BY d.name, e.full_name, t.date_work
	`

	rows, err := q.Query(ctx, query, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly report: %w", err)
	}
	defer rows.Close()

	var result []report.ReportRow
	for rows.Next() {
		var row report.ReportRow
		err := rows.Scan(
			&row.DepartmentName,
			&row.FullName,
			&row.EmpID,
			&row.DateWork,
			&row.CheckIn,
			&row.CheckOut,
			&row.PositionTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// GetAttendanceRows implements ReportRepository.
func (r *reportRepositoryImpl) GetAttendanceRows(ctx context.Context) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.emp_id,
			   e.full_name,
			   e.date_of_birth,
			   p.department_guid,
			   t.pos_id,
			   ep.assigned_rate,
			   t.date_work,
			   t.check_in,
			   t.check_out
		FROM timesheets t
		JOIN employees e ON t.emp_id = e.emp_id
		JOIN employee_positions ep ON t.emp_id = ep.emp_id AND t.pos_id = ep.pos_id
		JOIN positions p ON t.pos_id = p.pos_id
		ORDER BY e.full_name, t.pos_id, t.date_work
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance rows: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceRow
	for rows.Next() {
		var row report.AttendanceRow
		err := rows.Scan(
			&row.EmpID,
			&row.FullName,
			&row.DateOfBirth,
			&row.DepartmentGUID,
			&row.PosID,
			&row.AssignedRate,
			&row.DateWork,
			&row.CheckIn,
			&row.CheckOut,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// GetAssignmentRows implements ReportRepository.
func (r *reportRepositoryImpl) GetAssignmentRows(ctx context.Context) ([]report.AssignmentRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.emp_id,
			   e.full_name,
			   e.date_of_birth,
			   p.department_guid,
			   ep.pos_id,
			   ep.assigned_rate
		FROM employee_positions ep
		JOIN employees e ON ep.emp_id = e.emp_id
		JOIN positions p ON ep.pos_id = p.pos_id
		ORDER BY e.full_name, ep.pos_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment rows: %w", err)
	}
	defer rows.Close()

	var result []report.AssignmentRow
	for rows.Next() {
		var row report.AssignmentRow
		err := rows.Scan(
			&row.EmpID,
			&row.FullName,
			&row.DateOfBirth,
			&row.DepartmentGUID,
			&row.PosID,
			&row.AssignedRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
