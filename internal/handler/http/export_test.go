package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/report"
)

type fakeReportService struct {
	doc report.ExportDocument
}

func (f *fakeReportService) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) ([]report.ReportRow, error) {
	return nil, nil
}

func (f *fakeReportService) GenerateExportDocument(ctx context.Context) (report.ExportDocument, error) {
	return f.doc, nil
}

func TestExportWorklogs_ServesAttachment(t *testing.T) {
	checkIn := "09:00"
	doc := report.ExportDocument{
		Employees: []report.ExportEmployeeBlock{
			{
				FullName:    "Anna Ivanova",
				DateOfBirth: "20.05.1990",
				Posts: []report.ExportPositionBlock{
					{
						GUID:  "0b91cd27-35f8-4bd0-a8f3-66a7d1f6e0a1",
						PosID: "POS-1",
						Rate:  1.0,
						Worklogs: []report.ExportWorklogEntry{
							{Date: "10.01.2025", CheckIn: &checkIn, CheckOut: nil},
						},
					},
				},
			},
		},
	}
	handler := NewExportHandler(&fakeReportService{doc: doc})

	req := httptest.NewRequest(http.MethodGet, "/export/worklogs", nil)
	rec := httptest.NewRecorder()
	handler.ExportWorklogs(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=worklogs_export.json`, rec.Header().Get("Content-Disposition"))

	// Body is the document itself, no envelope.
	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Contains(t, got, "employees")
	assert.NotContains(t, got, "success")

	assert.JSONEq(t, `{
		"employees": [
			{
				"full_name": "Anna Ivanova",
				"date_of_birth": "20.05.1990",
				"posts": [
					{
						"GUID": "0b91cd27-35f8-4bd0-a8f3-66a7d1f6e0a1",
						"posId": "POS-1",
						"rate": 1.0,
						"worklogs": [
							{"date": "10.01.2025", "check_in": "09:00", "check_out": null}
						]
					}
				]
			}
		]
	}`, rec.Body.String())
}

func TestExportWorklogs_EmptyRoster(t *testing.T) {
	handler := NewExportHandler(&fakeReportService{
		doc: report.ExportDocument{Employees: []report.ExportEmployeeBlock{}},
	})

	req := httptest.NewRequest(http.MethodGet, "/export/worklogs", nil)
	rec := httptest.NewRecorder()
	handler.ExportWorklogs(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"employees":[]}`, rec.Body.String())
}
