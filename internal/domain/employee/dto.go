package employee

import (
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmpID       string `json:"emp_id"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        string `json:"role"` // optional, defaults to employee
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.DateOfBirth) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_birth",
			Message: "date_of_birth is required",
		})
	} else if _, valid := validator.IsValidDate(r.DateOfBirth); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_birth",
			Message: "date_of_birth must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if r.Role != "" && r.Role != string(RoleAdmin) && r.Role != string(RoleEmployee) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID          int64  `json:"id"`
	EmpID       string `json:"emp_id"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

type DeleteEmployeeResponse struct {
	DeletedID string `json:"deleted_id"`
}
