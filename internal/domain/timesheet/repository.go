package timesheet

import "context"

// TimesheetRepository defines data access for attendance records. Records
// are keyed strictly by the (emp_id, pos_id, date_work) triple.
type TimesheetRepository interface {
	// GetByKey returns the record for the exact key, or nil when none
	// exists.
	GetByKey(ctx context.Context, empID, posID, dateWork string) (*Record, error)

	// Create inserts a fresh record with check_out NULL.
	Create(ctx context.Context, empID, posID, dateWork, checkIn string) (Record, error)

	// UpdateCheckIn overwrites check_in and resets check_out to NULL,
	// reopening the shift.
	UpdateCheckIn(ctx context.Context, empID, posID, dateWork, checkIn string) (Record, error)

	// UpdateCheckOut sets check_out for the exact key. Returns
	// pgx.ErrNoRows when no record exists; check-out never creates one.
	UpdateCheckOut(ctx context.Context, empID, posID, dateWork, checkOut string) (Record, error)

	// ListByEmployeeAndDate returns an employee's records for one date,
	// joined with position titles, ordered by pos_id.
	ListByEmployeeAndDate(ctx context.Context, empID, dateWork string) ([]Record, error)

	// ListByEmployeeAndMonth returns an employee's records for the
	// half-open range [month-01, nextMonth-01), ordered by (date, pos_id).
	ListByEmployeeAndMonth(ctx context.Context, empID, monthStart, monthEnd string) ([]Record, error)
}
