package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrcore/payroll-engine-go/internal/domain/catalog"
	"github.com/hrcore/payroll-engine-go/internal/pkg/database"
)

type statusRepository struct {
	db *database.DB
}

func NewStatusRepository(db *database.DB) catalog.StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) GetStatusIDByName(ctx context.Context, name string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `SELECT id FROM statuses WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", catalog.ErrStatusNotFound
		}
		return "", fmt.Errorf("failed to resolve status %q: %w", name, err)
	}

	return id, nil
}
