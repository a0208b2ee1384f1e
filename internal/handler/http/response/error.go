package response

import (
	"errors"
	"net/http"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/assignment"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/auth"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/department"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/employee"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/position"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee already exists")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department already exists")

	// Position domain errors
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionExists):
		Conflict(w, "Position already exists")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrRecordNotFound):
		NotFound(w, "Timesheet record not found")
	case errors.Is(err, timesheet.ErrDuplicateRecord):
		Conflict(w, "Timesheet record already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
