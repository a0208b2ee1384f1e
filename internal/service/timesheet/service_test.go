package timesheet

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/assignment"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

type recordKey struct {
	empID, posID, dateWork string
}

// fakeTimesheetRepo keeps records in a map keyed by the same triple the
// store's unique constraint enforces.
type fakeTimesheetRepo struct {
	records map[recordKey]*timesheet.Record
	nextID  int64
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{records: make(map[recordKey]*timesheet.Record), nextID: 1}
}

func (f *fakeTimesheetRepo) GetByKey(ctx context.Context, empID, posID, dateWork string) (*timesheet.Record, error) {
	rec, ok := f.records[recordKey{empID, posID, dateWork}]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeTimesheetRepo) Create(ctx context.Context, empID, posID, dateWork, checkIn string) (timesheet.Record, error) {
	rec := &timesheet.Record{
		ID:       f.nextID,
		EmpID:    empID,
		PosID:    posID,
		DateWork: dateWork,
		CheckIn:  &checkIn,
	}
	f.nextID++
	f.records[recordKey{empID, posID, dateWork}] = rec
	return *rec, nil
}

func (f *fakeTimesheetRepo) UpdateCheckIn(ctx context.Context, empID, posID, dateWork, checkIn string) (timesheet.Record, error) {
	rec, ok := f.records[recordKey{empID, posID, dateWork}]
	if !ok {
		return timesheet.Record{}, pgx.ErrNoRows
	}
	rec.CheckIn = &checkIn
	rec.CheckOut = nil
	return *rec, nil
}

func (f *fakeTimesheetRepo) UpdateCheckOut(ctx context.Context, empID, posID, dateWork, checkOut string) (timesheet.Record, error) {
	rec, ok := f.records[recordKey{empID, posID, dateWork}]
	if !ok {
		return timesheet.Record{}, pgx.ErrNoRows
	}
	rec.CheckOut = &checkOut
	return *rec, nil
}

func (f *fakeTimesheetRepo) ListByEmployeeAndDate(ctx context.Context, empID, dateWork string) ([]timesheet.Record, error) {
	var result []timesheet.Record
	for _, rec := range f.records {
		if rec.EmpID == empID && rec.DateWork == dateWork {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (f *fakeTimesheetRepo) ListByEmployeeAndMonth(ctx context.Context, empID, monthStart, monthEnd string) ([]timesheet.Record, error) {
	var result []timesheet.Record
	for _, rec := range f.records {
		if rec.EmpID == empID && rec.DateWork >= monthStart && rec.DateWork < monthEnd {
			result = append(result, *rec)
		}
	}
	return result, nil
}

type fakeAssignmentRepo struct {
	positions map[string][]assignment.EmployeePositionRow
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	return a, nil
}

func (f *fakeAssignmentRepo) List(ctx context.Context) ([]assignment.ListRow, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) ListByEmployee(ctx context.Context, empID string) ([]assignment.EmployeePositionRow, error) {
	return f.positions[empID], nil
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return 0, pgx.ErrNoRows
}

func newTestService(repo *fakeTimesheetRepo) timesheet.TimesheetService {
	return NewTimesheetService(repo, &fakeAssignmentRepo{})
}

func TestCheckIn_CreatesRecord(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := newTestService(repo)

	rec, err := svc.CheckIn(ctx, timesheet.CheckInRequest{
		EmpID:       "EMP-1",
		PosID:       "POS-1",
		DateWork:    "2025-01-10",
		CheckInTime: "09:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP-1", rec.EmpID)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, "09:00", *rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
}

func TestCheckIn_RepeatReopensShift(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := newTestService(repo)

	req := timesheet.CheckInRequest{
		EmpID:       "EMP-1",
		PosID:       "POS-1",
		DateWork:    "2025-01-10",
		CheckInTime: "09:00",
	}
	_, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, timesheet.CheckOutRequest{
		EmpID:        "EMP-1",
		PosID:        "POS-1",
		DateWork:     "2025-01-10",
		CheckOutTime: "13:00",
	})
	require.NoError(t, err)

	// Second check-in on the same key overwrites check_in and clears the
	// earlier check_out.
	req.CheckInTime = "14:00"
	rec, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, "14:00", *rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
}

func TestCheckIn_ValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeTimesheetRepo())

	_, err := svc.CheckIn(ctx, timesheet.CheckInRequest{
		EmpID:       "EMP-1",
		PosID:       "POS-1",
		DateWork:    "10.01.2025",
		CheckInTime: "09:00",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date_work")
}

func TestCheckOut_SetsCheckOut(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := newTestService(repo)

	_, err := svc.CheckIn(ctx, timesheet.CheckInRequest{
		EmpID:       "EMP-1",
		PosID:       "POS-1",
		DateWork:    "2025-01-10",
		CheckInTime: "09:00",
	})
	require.NoError(t, err)

	rec, err := svc.CheckOut(ctx, timesheet.CheckOutRequest{
		EmpID:        "EMP-1",
		PosID:        "POS-1",
		DateWork:     "2025-01-10",
		CheckOutTime: "18:00",
	})
	require.NoError(t, err)

	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, "18:00", *rec.CheckOut)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, "09:00", *rec.CheckIn)
}

func TestCheckOut_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeTimesheetRepo())

	_, err := svc.CheckOut(ctx, timesheet.CheckOutRequest{
		EmpID:        "EMP-1",
		PosID:        "POS-1",
		DateWork:     "2025-01-10",
		CheckOutTime: "18:00",
	})

	assert.ErrorIs(t, err, timesheet.ErrRecordNotFound)
}

func TestListByEmployeeAndMonth_RejectsBadMonth(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeTimesheetRepo())

	_, err := svc.ListByEmployeeAndMonth(ctx, "EMP-1", "2025-1")
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestListByEmployeeAndMonth_FiltersHalfOpenRange(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimesheetRepo()
	svc := newTestService(repo)

	for _, date := range []string{"2025-01-31", "2025-02-01", "2025-02-28", "2025-03-01"} {
		_, err := svc.CheckIn(ctx, timesheet.CheckInRequest{
			EmpID:       "EMP-1",
			PosID:       "POS-1",
			DateWork:    date,
			CheckInTime: "09:00",
		})
		require.NoError(t, err)
	}

	records, err := svc.ListByEmployeeAndMonth(ctx, "EMP-1", "2025-02")
	require.NoError(t, err)

	require.Len(t, records, 2)
	for _, rec := range records {
		assert.GreaterOrEqual(t, rec.DateWork, "2025-02-01")
		assert.Less(t, rec.DateWork, "2025-03-01")
	}
}

func TestListByEmployeeAndDate_EmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeTimesheetRepo())

	records, err := svc.ListByEmployeeAndDate(ctx, "EMP-1", "2025-01-10")
	require.NoError(t, err)

	assert.NotNil(t, records)
	assert.Empty(t, records)
}
