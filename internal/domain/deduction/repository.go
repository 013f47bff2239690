package deduction

import "context"

type DeductionRepository interface {
	// GetMandatory returns the non-voluntary deduction catalog rows.
	GetMandatory(ctx context.Context) ([]MandatoryDeduction, error)
	// GetTaxBrackets returns the monthly tax schedule ordered by upper limit.
	GetTaxBrackets(ctx context.Context) ([]TaxBracket, error)
}
