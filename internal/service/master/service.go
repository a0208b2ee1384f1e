package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/assignment"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/department"
	"github.com/tabelhq/timesheet-backend-go/internal/domain/position"
)

// MasterService manages the org reference data: departments, positions, and
// the assignments linking employees to positions.
type MasterService interface {
	// Department operations
	ListDepartments(ctx context.Context) ([]department.Department, error)
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error)
	DeleteDepartment(ctx context.Context, guid string) (department.DeleteDepartmentResponse, error)

	// Position operations
	ListPositions(ctx context.Context) ([]position.Position, error)
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.Position, error)
	DeletePosition(ctx context.Context, posID string) (position.DeletePositionResponse, error)

	// Assignment operations
	AssignPosition(ctx context.Context, req assignment.AssignPositionRequest) (assignment.Assignment, error)
	ListAssignments(ctx context.Context) ([]assignment.ListRow, error)
	DeleteAssignment(ctx context.Context, id int64) (assignment.DeleteAssignmentResponse, error)
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
	assignmentRepo assignment.AssignmentRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
	assignmentRepo assignment.AssignmentRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		assignmentRepo: assignmentRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(departments) == 0 {
		return []department.Department{}, nil
	}

	return departments, nil
}

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		GUID: req.GUID,
		Name: req.Name,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return department.Department{}, department.ErrDepartmentExists
			}
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, guid string) (department.DeleteDepartmentResponse, error) {
	deletedGUID, err := s.departmentRepo.Delete(ctx, guid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.DeleteDepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DeleteDepartmentResponse{}, fmt.Errorf("failed to delete department: %w", err)
	}

	return department.DeleteDepartmentResponse{DeletedGUID: deletedGUID}, nil
}

// ==================== POSITION OPERATIONS ====================

func (s *masterServiceImpl) ListPositions(ctx context.Context) ([]position.Position, error) {
	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(positions) == 0 {
		return []position.Position{}, nil
	}

	return positions, nil
}

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.Position, error) {
	if err := req.Validate(); err != nil {
		return position.Position{}, err
	}

	created, err := s.positionRepo.Create(ctx, position.Position{
		PosID:          req.PosID,
		Title:          req.Title,
		TotalRate:      *req.TotalRate,
		DepartmentGUID: req.DepartmentGUID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return position.Position{}, position.ErrPositionExists
			}
		}
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return created, nil
}

func (s *masterServiceImpl) DeletePosition(ctx context.Context, posID string) (position.DeletePositionResponse, error) {
	deletedPosID, err := s.positionRepo.Delete(ctx, posID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.DeletePositionResponse{}, position.ErrPositionNotFound
		}
		return position.DeletePositionResponse{}, fmt.Errorf("failed to delete position: %w", err)
	}

	return position.DeletePositionResponse{DeletedPosID: deletedPosID}, nil
}

// ==================== ASSIGNMENT OPERATIONS ====================

func (s *masterServiceImpl) AssignPosition(ctx context.Context, req assignment.AssignPositionRequest) (assignment.Assignment, error) {
	if err := req.Validate(); err != nil {
		return assignment.Assignment{}, err
	}

	created, err := s.assignmentRepo.Create(ctx, assignment.Assignment{
		EmpID:        req.EmpID,
		PosID:        req.PosID,
		AssignedRate: *req.AssignedRate,
	})
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return created, nil
}

func (s *masterServiceImpl) ListAssignments(ctx context.Context) ([]assignment.ListRow, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(assignments) == 0 {
		return []assignment.ListRow{}, nil
	}

	return assignments, nil
}

func (s *masterServiceImpl) DeleteAssignment(ctx context.Context, id int64) (assignment.DeleteAssignmentResponse, error) {
	deletedID, err := s.assignmentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.DeleteAssignmentResponse{}, assignment.ErrAssignmentNotFound
		}
		return assignment.DeleteAssignmentResponse{}, fmt.Errorf("failed to delete assignment: %w", err)
	}

	return assignment.DeleteAssignmentResponse{DeletedID: deletedID}, nil
}
