package timesheet

import (
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmpID       string `json:"emp_id"`
	PosID       string `json:"pos_id"`
	DateWork    string `json:"date_work"`     // YYYY-MM-DD
	CheckInTime string `json:"check_in_time"` // HH:MM
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}

	if validator.IsEmpty(r.PosID) {
		errs = append(errs, validator.ValidationError{
			Field:   "pos_id",
			Message: "pos_id is required",
		})
	}

	if validator.IsEmpty(r.DateWork) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_work",
			Message: "date_work is required",
		})
	} else if _, valid := validator.IsValidDate(r.DateWork); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date_work",
			Message: "date_work must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time is required",
		})
	} else if !validator.IsValidClockTime(r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmpID        string `json:"emp_id"`
	PosID        string `json:"pos_id"`
	DateWork     string `json:"date_work"`      // YYYY-MM-DD
	CheckOutTime string `json:"check_out_time"` // HH:MM
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}

	if validator.IsEmpty(r.PosID) {
		errs = append(errs, validator.ValidationError{
			Field:   "pos_id",
			Message: "pos_id is required",
		})
	}

	if validator.IsEmpty(r.DateWork) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_work",
			Message: "date_work is required",
		})
	} else if _, valid := validator.IsValidDate(r.DateWork); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date_work",
			Message: "date_work must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.CheckOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time is required",
		})
	} else if !validator.IsValidClockTime(r.CheckOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
