package middleware

import (
	"net/http"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/auth"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/employee"
	"github.com/tabelhq/timesheet-backend-go/internal/handler/http/response"
)

// BasicAuth guards the export surface with HTTP Basic credentials checked
// against the employee store. Only admins may export.
func BasicAuth(authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="export"`)
				response.Unauthorized(w, "Basic authentication required")
				return
			}

			emp, err := authService.VerifyCredentials(r.Context(), username, password)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Basic realm="export"`)
				response.HandleError(w, err)
				return
			}

			if emp.Role != employee.RoleAdmin {
				response.HandleError(w, auth.ErrAdminRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
