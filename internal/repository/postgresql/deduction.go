package postgresql

import (
	"context"
	"fmt"

	"github.com/hrcore/payroll-engine-go/internal/domain/deduction"
	"github.com/hrcore/payroll-engine-go/internal/pkg/database"
)

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepository{db: db}
}

func (r *deductionRepository) GetMandatory(ctx context.Context) ([]deduction.MandatoryDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, percent_rate, is_voluntary, created_at, updated_at
		FROM mandatory_deductions
		WHERE is_voluntary = false
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mandatory deductions: %w", err)
	}
	defer rows.Close()

	var deductions []deduction.MandatoryDeduction
	for rows.Next() {
		var d deduction.MandatoryDeduction
		if err := rows.Scan(&d.ID, &d.Name, &d.PercentRate, &d.IsVoluntary, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mandatory deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, rows.Err()
}

func (r *deductionRepository) GetTaxBrackets(ctx context.Context) ([]deduction.TaxBracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, upper_limit, base_tax_at_limit, base_income_at_limit, marginal_rate
		FROM tax_brackets
		ORDER BY upper_limit
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax brackets: %w", err)
	}
	defer rows.Close()

	var brackets []deduction.TaxBracket
	for rows.Next() {
		var b deduction.TaxBracket
		if err := rows.Scan(&b.ID, &b.UpperLimit, &b.BaseTaxAtLimit, &b.BaseIncomeAtLimit, &b.MarginalRate); err != nil {
			return nil, fmt.Errorf("failed to scan tax bracket: %w", err)
		}
		brackets = append(brackets, b)
	}

	return brackets, rows.Err()
}
