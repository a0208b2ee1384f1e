package timesheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/assignment"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

type timesheetServiceImpl struct {
	timesheetRepo  timesheet.TimesheetRepository
	assignmentRepo assignment.AssignmentRepository
}

func NewTimesheetService(
	timesheetRepo timesheet.TimesheetRepository,
	assignmentRepo assignment.AssignmentRepository,
) timesheet.TimesheetService {
	return &timesheetServiceImpl{
		timesheetRepo:  timesheetRepo,
		assignmentRepo: assignmentRepo,
	}
}

// CheckIn implements timesheet.TimesheetService.
//
// The existence check and the following write are two store round-trips, so
// two concurrent first check-ins for the same key can both reach Create;
// the store's uniqueness constraint rejects the loser, surfaced as
// ErrDuplicateRecord.
func (s *timesheetServiceImpl) CheckIn(ctx context.Context, req timesheet.CheckInRequest) (timesheet.Record, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Record{}, err
	}

	existing, err := s.timesheetRepo.GetByKey(ctx, req.EmpID, req.PosID, req.DateWork)
	if err != nil {
		return timesheet.Record{}, err
	}

	if existing != nil {
		return s.timesheetRepo.UpdateCheckIn(ctx, req.EmpID, req.PosID, req.DateWork, req.CheckInTime)
	}

	rec, err := s.timesheetRepo.Create(ctx, req.EmpID, req.PosID, req.DateWork, req.CheckInTime)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return timesheet.Record{}, timesheet.ErrDuplicateRecord
			}
		}
		return timesheet.Record{}, fmt.Errorf("failed to create timesheet record: %w", err)
	}

	return rec, nil
}

// CheckOut implements timesheet.TimesheetService.
func (s *timesheetServiceImpl) CheckOut(ctx context.Context, req timesheet.CheckOutRequest) (timesheet.Record, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Record{}, err
	}

	rec, err := s.timesheetRepo.UpdateCheckOut(ctx, req.EmpID, req.PosID, req.DateWork, req.CheckOutTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Record{}, timesheet.ErrRecordNotFound
		}
		return timesheet.Record{}, fmt.Errorf("failed to update check-out: %w", err)
	}

	return rec, nil
}

// ListByEmployeeAndDate implements timesheet.TimesheetService.
func (s *timesheetServiceImpl) ListByEmployeeAndDate(ctx context.Context, empID, dateWork string) ([]timesheet.Record, error) {
	records, err := s.timesheetRepo.ListByEmployeeAndDate(ctx, empID, dateWork)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return []timesheet.Record{}, nil
	}

	return records, nil
}

// ListByEmployeeAndMonth implements timesheet.TimesheetService.
func (s *timesheetServiceImpl) ListByEmployeeAndMonth(ctx context.Context, empID, month string) ([]timesheet.Record, error) {
	start, end, err := validator.MonthRange(month)
	if err != nil {
		return nil, err
	}

	records, err := s.timesheetRepo.ListByEmployeeAndMonth(ctx, empID, start, end)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return []timesheet.Record{}, nil
	}

	return records, nil
}

// ListEmployeePositions implements timesheet.TimesheetService.
func (s *timesheetServiceImpl) ListEmployeePositions(ctx context.Context, empID string) ([]assignment.EmployeePositionRow, error) {
	positions, err := s.assignmentRepo.ListByEmployee(ctx, empID)
	if err != nil {
		return nil, err
	}

	if len(positions) == 0 {
		return []assignment.EmployeePositionRow{}, nil
	}

	return positions, nil
}
