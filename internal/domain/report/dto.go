package report

import (
	"time"

	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month string `json:"month"` // YYYY-MM
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format (e.g., 2025-01)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReportRow is one line of the monthly flat report: an attendance record
// joined with employee, position, and department, already ordered by
// (department name, full name, work date).
type ReportRow struct {
	DepartmentName string  `json:"department_name"`
	FullName       string  `json:"full_name"`
	EmpID          string  `json:"emp_id"`
	DateWork       string  `json:"date_work"`
	CheckIn        *string `json:"check_in"`
	CheckOut       *string `json:"check_out"`
	PositionTitle  string  `json:"position_title"`
}

// AttendanceRow is the flat joined input for the export document: one
// attendance record enriched with employee and assignment metadata.
type AttendanceRow struct {
	EmpID          string
	FullName       string
	DateOfBirth    time.Time
	DepartmentGUID *string
	PosID          string
	AssignedRate   float64
	DateWork       string
	CheckIn        *string
	CheckOut       *string
}

// AssignmentRow is one current assignment, independent of attendance.
type AssignmentRow struct {
	EmpID          string
	FullName       string
	DateOfBirth    time.Time
	DepartmentGUID *string
	PosID          string
	AssignedRate   float64
}

type ExportWorklogEntry struct {
	Date     string  `json:"date"` // DD.MM.YYYY
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}

type ExportPositionBlock struct {
	GUID     string               `json:"GUID"`
	PosID    string               `json:"posId"`
	Rate     float64              `json:"rate"`
	Worklogs []ExportWorklogEntry `json:"worklogs"`
}

type ExportEmployeeBlock struct {
	FullName    string                `json:"full_name"`
	DateOfBirth string                `json:"date_of_birth"` // DD.MM.YYYY
	Posts       []ExportPositionBlock `json:"posts"`
}

type ExportDocument struct {
	Employees []ExportEmployeeBlock `json:"employees"`
}
