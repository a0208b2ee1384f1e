package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/auth"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/employee"
)

type fakeAuthService struct {
	employees map[string]employee.Employee
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return auth.LoginResponse{}, auth.ErrInvalidCredentials
}

func (f *fakeAuthService) VerifyCredentials(ctx context.Context, username, password string) (employee.Employee, error) {
	emp, ok := f.employees[username]
	if !ok || password != "secret" {
		return employee.Employee{}, auth.ErrInvalidCredentials
	}
	return emp, nil
}

func newBasicAuthChain(t *testing.T) (http.Handler, *bool) {
	svc := &fakeAuthService{
		employees: map[string]employee.Employee{
			"admin": {Username: "admin", Role: employee.RoleAdmin},
			"user":  {Username: "user", Role: employee.RoleEmployee},
		},
	}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	return BasicAuth(svc)(next), &called
}

func TestBasicAuth_MissingCredentials(t *testing.T) {
	handler, called := newBasicAuthChain(t)

	req := httptest.NewRequest(http.MethodGet, "/export/worklogs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
	assert.False(t, *called)
}

func TestBasicAuth_WrongPassword(t *testing.T) {
	handler, called := newBasicAuthChain(t)

	req := httptest.NewRequest(http.MethodGet, "/export/worklogs", nil)
	req.SetBasicAuth("admin", "wrong")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestBasicAuth_NonAdminForbidden(t *testing.T) {
	handler, called := newBasicAuthChain(t)

	req := httptest.NewRequest(http.MethodGet, "/export/worklogs", nil)
	req.SetBasicAuth("user", "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)
}

func TestBasicAuth_AdminPasses(t *testing.T) {
	handler, called := newBasicAuthChain(t)

	req := httptest.NewRequest(http.MethodGet, "/export/worklogs", nil)
	req.SetBasicAuth("admin", "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}
