package report

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/report"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/database"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
	"github.com/tabelhq/timesheet-backend-go/internal/repository/postgresql"
)

type reportServiceImpl struct {
	db         *database.DB
	reportRepo postgresql.ReportRepository
}

func NewReportService(db *database.DB, reportRepo postgresql.ReportRepository) report.ReportService {
	return &reportServiceImpl{
		db:         db,
		reportRepo: reportRepo,
	}
}

// GenerateMonthlyReport implements report.ReportService.
func (s *reportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) ([]report.ReportRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end, err := validator.MonthRange(req.Month)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.GetMonthlyReport(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []report.ReportRow{}, nil
	}

	return rows, nil
}

// GenerateExportDocument implements report.ReportService.
//
// Both reads run inside one transaction so the attendance rows and the
// assignment roster describe the same snapshot of the store.
func (s *reportServiceImpl) GenerateExportDocument(ctx context.Context) (report.ExportDocument, error) {
	var (
		attendance  []report.AttendanceRow
		assignments []report.AssignmentRow
	)

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		attendance, err = s.reportRepo.GetAttendanceRows(txCtx)
		if err != nil {
			return err
		}

		assignments, err = s.reportRepo.GetAssignmentRows(txCtx)
		return err
	})
	if err != nil {
		return report.ExportDocument{}, fmt.Errorf("failed to read export snapshot: %w", err)
	}

	return report.BuildExportDocument(attendance, assignments), nil
}
