package assignment

import (
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

type AssignPositionRequest struct {
	EmpID        string   `json:"emp_id"`
	PosID        string   `json:"pos_id"`
	AssignedRate *float64 `json:"assigned_rate"`
}

func (r *AssignPositionRequest) Validate() error {
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

	if r.AssignedRate == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_rate",
			Message: "assigned_rate is required",
		})
	} else if *r.AssignedRate <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_rate",
			Message: "assigned_rate must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeleteAssignmentResponse struct {
	DeletedID int64 `json:"deleted_id"`
}
