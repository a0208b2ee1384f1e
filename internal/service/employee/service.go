package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/employee"
)

type EmployeeService interface {
	// List returns all employees with their assigned positions.
	List(ctx context.Context) ([]employee.EmployeeWithPositions, error)

	// Create registers a new employee; the role defaults to employee.
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)

	// Delete removes an employee by business key.
	Delete(ctx context.Context, empID string) (employee.DeleteEmployeeResponse, error)
}

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

// List implements EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeWithPositions, error) {
	employees, err := s.employeeRepo.ListWithPositions(ctx)
	if err != nil {
		return nil, err
	}

	if len(employees) == 0 {
		return []employee.EmployeeWithPositions{}, nil
	}

	return employees, nil
}

// Create implements EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := employee.Role(req.Role)
	if req.Role == "" {
		role = employee.RoleEmployee
	}

	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmpID:        req.EmpID,
		FullName:     req.FullName,
		DateOfBirth:  dob,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return employee.EmployeeResponse{}, employee.ErrEmployeeExists
			}
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.EmployeeResponse{
		ID:          created.ID,
		EmpID:       created.EmpID,
		FullName:    created.FullName,
		DateOfBirth: created.DateOfBirth.Format("2006-01-02"),
		Username:    created.Username,
		Role:        string(created.Role),
	}, nil
}

// Delete implements EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, empID string) (employee.DeleteEmployeeResponse, error) {
	deletedID, err := s.employeeRepo.Delete(ctx, empID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.DeleteEmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.DeleteEmployeeResponse{}, fmt.Errorf("failed to delete employee: %w", err)
	}

	return employee.DeleteEmployeeResponse{DeletedID: deletedID}, nil
}
