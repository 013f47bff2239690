package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrcore/payroll-engine-go/internal/domain/period"
	"github.com/hrcore/payroll-engine-go/internal/pkg/database"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) GetByID(ctx context.Context, id string) (period.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, pay_date, payment_cycle, status, created_at, updated_at
		FROM pay_periods
		WHERE id = $1
	`

	var p period.PayPeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.StartDate, &p.EndDate, &p.PayDate, &p.PaymentCycle, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.PayPeriod{}, period.ErrPeriodNotFound
		}
		return period.PayPeriod{}, fmt.Errorf("failed to get pay period: %w", err)
	}

	return p, nil
}
