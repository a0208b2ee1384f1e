package timesheet

import (
	"context"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/assignment"
)

// TimesheetService defines business logic for attendance recording.
type TimesheetService interface {
	// CheckIn upserts a record for (emp_id, pos_id, date_work). A repeated
	// check-in overwrites check_in and resets check_out to NULL, reopening
	// the shift. Repeated calls never error.
	CheckIn(ctx context.Context, req CheckInRequest) (Record, error)

	// CheckOut sets check_out for an existing record; fails with
	// ErrRecordNotFound when the key has no record.
	CheckOut(ctx context.Context, req CheckOutRequest) (Record, error)

	// ListByEmployeeAndDate returns one employee's records for a date.
	ListByEmployeeAndDate(ctx context.Context, empID, dateWork string) ([]Record, error)

	// ListByEmployeeAndMonth returns one employee's records for a calendar
	// month given in YYYY-MM form.
	ListByEmployeeAndMonth(ctx context.Context, empID, month string) ([]Record, error)

	// ListEmployeePositions returns the positions an employee can check in
	// against.
	ListEmployeePositions(ctx context.Context, empID string) ([]assignment.EmployeePositionRow, error)
}
