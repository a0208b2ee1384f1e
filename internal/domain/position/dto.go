package position

import (
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

type CreatePositionRequest struct {
	PosID          string   `json:"pos_id"`
	Title          string   `json:"title"`
	TotalRate      *float64 `json:"total_rate"`
	DepartmentGUID string   `json:"department_guid"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PosID) {
		errs = append(errs, validator.ValidationError{
			Field:   "pos_id",
			Message: "pos_id is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if r.TotalRate == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "total_rate",
			Message: "total_rate is required",
		})
	} else if *r.TotalRate <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_rate",
			Message: "total_rate must be greater than zero",
		})
	}

	if validator.IsEmpty(r.DepartmentGUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_guid",
			Message: "department_guid is required",
		})
	} else if !validator.IsValidGUID(r.DepartmentGUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_guid",
			Message: "department_guid must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeletePositionResponse struct {
	DeletedPosID string `json:"deleted_pos_id"`
}
