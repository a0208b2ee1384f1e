package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/report"
	"github.com/tabelhq/timesheet-backend-go/internal/handler/http/response"
)

type ExportHandler interface {
	ExportWorklogs(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	reportService report.ReportService
}

func NewExportHandler(reportService report.ReportService) ExportHandler {
	return &exportHandlerImpl{
		reportService: reportService,
	}
}

// ExportWorklogs streams the nested worklog document as a JSON file
// download. The document itself is the body, without the usual envelope,
// so downstream consumers can ingest it as-is.
func (h *exportHandlerImpl) ExportWorklogs(w http.ResponseWriter, r *http.Request) {
	doc, err := h.reportService.GenerateExportDocument(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename=worklogs_export.json`)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		slog.Error("ExportWorklogs encode error", "error", err)
	}
}
