package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/report"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

type fakeReportRepo struct {
	rows     []report.ReportRow
	gotStart string
	gotEnd   string
}

func (f *fakeReportRepo) GetMonthlyReport(ctx context.Context, monthStart, monthEnd string) ([]report.ReportRow, error) {
	f.gotStart = monthStart
	f.gotEnd = monthEnd
	return f.rows, nil
}

func (f *fakeReportRepo) GetAttendanceRows(ctx context.Context) ([]report.AttendanceRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) GetAssignmentRows(ctx context.Context) ([]report.AssignmentRow, error) {
	return nil, nil
}

func TestGenerateMonthlyReport_RejectsBadMonth(t *testing.T) {
	svc := NewReportService(nil, &fakeReportRepo{})

	for _, month := range []string{"", "2025-1", "2025/01", "2025-13"} {
		_, err := svc.GenerateMonthlyReport(context.Background(), report.MonthlyReportRequest{Month: month})
		require.Error(t, err, "month %q", month)

		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	}
}

func TestGenerateMonthlyReport_QueriesHalfOpenRange(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(nil, repo)

	_, err := svc.GenerateMonthlyReport(context.Background(), report.MonthlyReportRequest{Month: "2024-12"})
	require.NoError(t, err)

	assert.Equal(t, "2024-12-01", repo.gotStart)
	assert.Equal(t, "2025-01-01", repo.gotEnd)
}

func TestGenerateMonthlyReport_EmptyIsNotNil(t *testing.T) {
	svc := NewReportService(nil, &fakeReportRepo{})

	rows, err := svc.GenerateMonthlyReport(context.Background(), report.MonthlyReportRequest{Month: "2025-06"})
	require.NoError(t, err)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
