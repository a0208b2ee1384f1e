package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/auth"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/employee"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.VerifyCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	token, _, err := a.jwtService.GenerateAccessToken(emp.ID, emp.EmpID, emp.Username, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		User: auth.UserInfo{
			ID:       emp.ID,
			EmpID:    emp.EmpID,
			FullName: emp.FullName,
			Username: emp.Username,
			Role:     string(emp.Role),
		},
		Token: token,
	}, nil
}

// VerifyCredentials implements auth.AuthService.
func (a *AuthServiceImpl) VerifyCredentials(ctx context.Context, username, password string) (employee.Employee, error) {
	emp, err := a.employeeRepo.GetByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, auth.ErrInvalidCredentials
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return employee.Employee{}, auth.ErrInvalidCredentials
	}

	return emp, nil
}
