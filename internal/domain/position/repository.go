package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, pos Position) (Position, error)
	List(ctx context.Context) ([]Position, error)

	// Delete removes a position by pos_id, returning the deleted pos_id or
	// pgx.ErrNoRows when absent.
	Delete(ctx context.Context, posID string) (string, error)
}
