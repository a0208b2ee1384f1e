package department

import (
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	GUID string `json:"guid"`
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "guid",
			Message: "guid is required",
		})
	} else if !validator.IsValidGUID(r.GUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "guid",
			Message: "guid must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeleteDepartmentResponse struct {
	DeletedGUID string `json:"deleted_guid"`
}
