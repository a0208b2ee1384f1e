package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

// GetByKey implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByKey(ctx context.Context, empID, posID, dateWork string) (*timesheet.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, emp_id, pos_id, date_work, check_in, check_out
		FROM timesheets
		WHERE emp_id = $1 AND pos_id = $2 AND date_work = $3
		LIMIT 1
	`

	var rec timesheet.Record
	err := q.QueryRow(ctx, query, empID, posID, dateWork).Scan(
		&rec.ID, &rec.EmpID, &rec.PosID, &rec.DateWork, &rec.CheckIn, &rec.CheckOut,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing record found
		}
		return nil, fmt.Errorf("failed to get timesheet record: %w", err)
	}

	return &rec, nil
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, empID, posID, dateWork, checkIn string) (timesheet.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (emp_id, pos_id, date_work, check_in)
		VALUES ($1, $2, $3, $4)
		RETURNING id, emp_id, pos_id, date_work, check_in, check_out
	`

	var rec timesheet.Record
	err := q.QueryRow(ctx, query, empID, posID, dateWork, checkIn).Scan(
		&rec.ID, &rec.EmpID, &rec.PosID, &rec.DateWork, &rec.CheckIn, &rec.CheckOut,
	)

	if err != nil {
		return timesheet.Record{}, err
	}

	return rec, nil
}

// UpdateCheckIn implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) UpdateCheckIn(ctx context.Context, empID, posID, dateWork, checkIn string) (timesheet.Record, error) {
	q := GetQuerier(ctx, r.db)

	// A repeated check-in reopens the shift: check_out goes back to NULL.
	query := `
		UPDATE timesheets
		SET check_in = $4, check_out = NULL
		WHERE emp_id = $1 AND pos_id = $2 AND date_work = $3
		RETURNING id, emp_id, pos_id, date_work, check_in, check_out
	`

	var rec timesheet.Record
	err := q.QueryRow(ctx, query, empID, posID, dateWork, checkIn).Scan(
		&rec.ID, &rec.EmpID, &rec.PosID, &rec.DateWork, &rec.CheckIn, &rec.CheckOut,
	)

	if err != nil {
		return timesheet.Record{}, fmt.Errorf("failed to update check-in: %w", err)
	}

	return rec, nil
}

// UpdateCheckOut implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) UpdateCheckOut(ctx context.Context, empID, posID, dateWork, checkOut string) (timesheet.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET check_out = $4
		WHERE emp_id = $1 AND pos_id = $2 AND date_work = $3
		RETURNING id, emp_id, pos_id, date_work, check_in, check_out
	`

	var rec timesheet.Record
	err := q.QueryRow(ctx, query, empID, posID, dateWork, checkOut).Scan(
		&rec.ID, &rec.EmpID, &rec.PosID, &rec.DateWork, &rec.CheckIn, &rec.CheckOut,
	)

	if err != nil {
		return timesheet.Record{}, err
	}

	return rec, nil
}

// ListByEmployeeAndDate implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByEmployeeAndDate(ctx context.Context, empID, dateWork string) ([]timesheet.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.emp_id, t.pos_id, t.date_work, t.check_in, t.check_out,
			   p.title AS position_title
		FROM timesheets t
		JOIN positions p ON t.pos_id = p.pos_id
		WHERE t.emp_id = $1 AND t.date_work = $2
		ORDER BY t.pos_id
	`

	return r.queryRecords(ctx, q, query, empID, dateWork)
}

// ListByEmployeeAndMonth implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByEmployeeAndMonth(ctx context.Context, empID, monthStart, monthEnd string) ([]timesheet.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.emp_id, t.pos_id, t.date_work, t.check_in, t.check_out,
			   p.title AS position_title
		FROM timesheets t
		JOIN positions p ON t.pos_id = p.pos_id
		WHERE t.emp_id = $1 AND t.date_work >= $2 AND t.date_work < $3
		ORDER BY t.date_work, t.pos_id
	`

	return r.queryRecords(ctx, q, query, empID, monthStart, monthEnd)
}

func (r *timesheetRepositoryImpl) queryRecords(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]timesheet.Record, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet records: %w", err)
	}
	defer rows.Close()

	var records []timesheet.Record
	for rows.Next() {
		var rec timesheet.Record
		err := rows.Scan(
			&rec.ID, &rec.EmpID, &rec.PosID, &rec.DateWork,
			&rec.CheckIn, &rec.CheckOut, &rec.PositionTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
