package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tabelhq/timesheet-backend-go/internal/handler/http/response"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	ListEmployeePositions(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

func (h *timesheetHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in recorded successfully", result)
}

func (h *timesheetHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out recorded successfully", result)
}

func (h *timesheetHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "emp_id")
	dateWork := chi.URLParam(r, "date_work")

	if _, ok := validator.IsValidDate(dateWork); !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	results, err := h.timesheetService.ListByEmployeeAndDate(r.Context(), empID, dateWork)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *timesheetHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "emp_id")
	month := chi.URLParam(r, "month")

	results, err := h.timesheetService.ListByEmployeeAndMonth(r.Context(), empID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *timesheetHandlerImpl) ListEmployeePositions(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "emp_id")

	results, err := h.timesheetService.ListEmployeePositions(r.Context(), empID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
