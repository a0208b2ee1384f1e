package auth

import (
	"context"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/employee"
)

type AuthService interface {
	// Login verifies a username/password pair and issues a bearer token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// VerifyCredentials re-checks a username/password pair against the
	// store without issuing a token. Used by basic-auth protected routes.
	VerifyCredentials(ctx context.Context, username, password string) (employee.Employee, error)
}
