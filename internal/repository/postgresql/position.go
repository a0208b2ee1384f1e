package postgresql

import (
	"context"
	"fmt"

	"github.com/tabelhq/timesheet-backend-go/internal/domain/position"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// Create implements position.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, pos position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (pos_id, title, total_rate, department_guid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, pos_id, title, total_rate, department_guid
	`

	var result position.Position
	err := q.QueryRow(ctx, query,
		pos.PosID,
		pos.Title,
		pos.TotalRate,
		pos.DepartmentGUID,
	).Scan(
		&result.ID,
		&result.PosID,
		&result.Title,
		&result.TotalRate,
		&result.DepartmentGUID,
	)

	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return result, nil
}

// List implements position.PositionRepository.
func (r *positionRepositoryImpl) List(ctx context.Context) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, pos_id, title, total_rate, department_guid
		FROM positions
		ORDER BY title
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		err := rows.Scan(&p.ID, &p.PosID, &p.Title, &p.TotalRate, &p.DepartmentGUID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return positions, nil
}

// Delete implements position.PositionRepository.
func (r *positionRepositoryImpl) Delete(ctx context.Context, posID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM positions WHERE pos_id = $1 RETURNING pos_id`

	var deletedPosID string
	if err := q.QueryRow(ctx, query, posID).Scan(&deletedPosID); err != nil {
		return "", err
	}

	return deletedPosID, nil
}
