package postgresql

import (
	"context"
	"fmt"

	"github.com/hrcore/payroll-engine-go/internal/domain/contract"
	"github.com/hrcore/payroll-engine-go/internal/pkg/database"
)

type contractRepository struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]contract.EmploymentContract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, position_id, monthly_salary, weekly_hours,
			   payment_cycle_id, status_id, start_date, end_date, created_at, updated_at
		FROM employment_contracts
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []contract.EmploymentContract
	for rows.Next() {
		var c contract.EmploymentContract
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.PositionID, &c.MonthlySalary, &c.WeeklyHours,
			&c.PaymentCycleID, &c.StatusID, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

func (r *contractRepository) ListEmployeeIDsByStatus(ctx context.Context, statusID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_id
		FROM employment_contracts
		WHERE status_id = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, statusID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by status: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
