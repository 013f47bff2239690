package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hrcore/payroll-engine-go/internal/domain/payroll"
	"github.com/hrcore/payroll-engine-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.LineRepository {
	return &payrollRepository{db: db}
}

const lineColumns = `
	id, period_id, employee_id, contract_id,
	ordinary_hours, overtime_hours, holiday_hours, night_hours,
	gross_pay, total_deductions, tax, net_pay, status, created_at, updated_at
`

func scanLine(row pgx.Row) (payroll.PayrollLine, error) {
	var l payroll.PayrollLine
	err := row.Scan(
		&l.ID, &l.PeriodID, &l.EmployeeID, &l.ContractID,
		&l.OrdinaryHours, &l.OvertimeHours, &l.HolidayHours, &l.NightHours,
		&l.GrossPay, &l.TotalDeductions, &l.Tax, &l.NetPay, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + lineColumns + ` FROM payroll_lines WHERE id = $1`

	line, err := scanLine(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollLine{}, payroll.ErrLineNotFound
		}
		return payroll.PayrollLine{}, fmt.Errorf("failed to get payroll line: %w", err)
	}

	return line, nil
}

func (r *payrollRepository) GetByPeriodAndEmployee(ctx context.Context, periodID, employeeID string) (payroll.PayrollLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + lineColumns + ` FROM payroll_lines WHERE period_id = $1 AND employee_id = $2`

	line, err := scanLine(q.QueryRow(ctx, query, periodID, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollLine{}, payroll.ErrLineNotFound
		}
		return payroll.PayrollLine{}, fmt.Errorf("failed to get payroll line: %w", err)
	}

	return line, nil
}

func (r *payrollRepository) GetForUpdate(ctx context.Context, periodID, employeeID string) (payroll.PayrollLine, error) {
	q := GetQuerier(ctx, r.db)

	// Row lock held until the enclosing transaction commits, so a concurrent
	// recalculation of the same line blocks instead of double-applying.
	query := `SELECT ` + lineColumns + ` FROM payroll_lines WHERE period_id = $1 AND employee_id = $2 FOR UPDATE`

	line, err := scanLine(q.QueryRow(ctx, query, periodID, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollLine{}, payroll.ErrLineNotFound
		}
		return payroll.PayrollLine{}, fmt.Errorf("failed to lock payroll line: %w", err)
	}

	return line, nil
}

func (r *payrollRepository) Create(ctx context.Context, line payroll.PayrollLine, details []payroll.DeductionDetail) (payroll.PayrollLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_lines (
			id, period_id, employee_id, contract_id,
			ordinary_hours, overtime_hours, holiday_hours, night_hours,
			gross_pay, total_deductions, tax, net_pay, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + lineColumns

	created, err := scanLine(q.QueryRow(ctx, query,
		uuid.New().String(), line.PeriodID, line.EmployeeID, line.ContractID,
		line.OrdinaryHours, line.OvertimeHours, line.HolidayHours, line.NightHours,
		line.GrossPay, line.TotalDeductions, line.Tax, line.NetPay, line.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uq_payroll_line_period_employee") {
			return payroll.PayrollLine{}, payroll.ErrLineAlreadyExists
		}
		return payroll.PayrollLine{}, fmt.Errorf("failed to create payroll line: %w", err)
	}

	if err := r.insertDetails(ctx, created.ID, details); err != nil {
		return payroll.PayrollLine{}, err
	}

	return created, nil
}

func (r *payrollRepository) Update(ctx context.Context, line payroll.PayrollLine, details []payroll.DeductionDetail) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_lines SET
			contract_id = $2,
			ordinary_hours = $3, overtime_hours = $4, holiday_hours = $5, night_hours = $6,
			gross_pay = $7, total_deductions = $8, tax = $9, net_pay = $10,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		line.ID, line.ContractID,
		line.OrdinaryHours, line.OvertimeHours, line.HolidayHours, line.NightHours,
		line.GrossPay, line.TotalDeductions, line.Tax, line.NetPay,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrLineNotFound
		}
		return fmt.Errorf("failed to update payroll line: %w", err)
	}

	// Details are replaced wholesale: delete before insert, FK discipline.
	if _, err := q.Exec(ctx, `DELETE FROM deduction_details WHERE payroll_line_id = $1`, line.ID); err != nil {
		return fmt.Errorf("failed to clear deduction details: %w", err)
	}

	return r.insertDetails(ctx, line.ID, details)
}

func (r *payrollRepository) insertDetails(ctx context.Context, lineID string, details []payroll.DeductionDetail) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_details (id, payroll_line_id, deduction_id, deduction_name, amount)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, d := range details {
		if _, err := q.Exec(ctx, query, uuid.New().String(), lineID, d.DeductionID, d.DeductionName, d.Amount); err != nil {
			return fmt.Errorf("failed to insert deduction detail: %w", err)
		}
	}

	return nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, periodID string) ([]payroll.PayrollLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + lineColumns + ` FROM payroll_lines WHERE period_id = $1 ORDER BY employee_id`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll lines: %w", err)
	}
	defer rows.Close()

	var lines []payroll.PayrollLine
	for rows.Next() {
		var l payroll.PayrollLine
		if err := rows.Scan(
			&l.ID, &l.PeriodID, &l.EmployeeID, &l.ContractID,
			&l.OrdinaryHours, &l.OvertimeHours, &l.HolidayHours, &l.NightHours,
			&l.GrossPay, &l.TotalDeductions, &l.Tax, &l.NetPay, &l.Status, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll line: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func (r *payrollRepository) GetDetails(ctx context.Context, lineID string) ([]payroll.DeductionDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_line_id, deduction_id, deduction_name, amount
		FROM deduction_details
		WHERE payroll_line_id = $1
		ORDER BY deduction_name
	`

	rows, err := q.Query(ctx, query, lineID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction details: %w", err)
	}
	defer rows.Close()

	var details []payroll.DeductionDetail
	for rows.Next() {
		var d payroll.DeductionDetail
		if err := rows.Scan(&d.ID, &d.PayrollLineID, &d.DeductionID, &d.DeductionName, &d.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan deduction detail: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

func (r *payrollRepository) Approve(ctx context.Context, lineIDs []string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_lines
		SET status = 'approved', updated_at = NOW()
		WHERE id = ANY($1) AND status <> 'approved'
	`

	tag, err := q.Exec(ctx, query, lineIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to approve payroll lines: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Details go first: deduction_details references payroll_lines.
	if _, err := q.Exec(ctx, `DELETE FROM deduction_details WHERE payroll_line_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete deduction details: %w", err)
	}

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM payroll_lines WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrLineNotFound
		}
		return fmt.Errorf("failed to delete payroll line: %w", err)
	}

	return nil
}

func (r *payrollRepository) GetPeriodSummary(ctx context.Context, periodID string) (payroll.PeriodSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(gross_pay), 0),
			   COALESCE(SUM(total_deductions), 0),
			   COALESCE(SUM(tax), 0),
			   COALESCE(SUM(net_pay), 0),
			   COUNT(*) FILTER (WHERE status = 'draft'),
			   COUNT(*) FILTER (WHERE status = 'approved')
		FROM payroll_lines
		WHERE period_id = $1
	`

	summary := payroll.PeriodSummaryResponse{PeriodID: periodID}
	err := q.QueryRow(ctx, query, periodID).Scan(
		&summary.LineCount,
		&summary.TotalGross,
		&summary.TotalDeductions,
		&summary.TotalTax,
		&summary.TotalNet,
		&summary.DraftCount,
		&summary.ApprovedCount,
	)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, fmt.Errorf("failed to get period summary: %w", err)
	}

	return summary, nil
}
