package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// GenerateMonthlyReport returns the flat attendance report for a
	// calendar month given in YYYY-MM form.
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) ([]ReportRow, error)

	// GenerateExportDocument builds the nested worklog export covering the
	// whole assignment roster.
	GenerateExportDocument(ctx context.Context) (ExportDocument, error)
}
