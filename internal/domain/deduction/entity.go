package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// MandatoryDeduction is a percentage-based withholding from the catalog.
// Only non-voluntary rows participate in automatic payroll deduction.
type MandatoryDeduction struct {
	ID          string
	Name        string
	PercentRate decimal.Decimal
	IsVoluntary bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaxBracket is one step of the progressive monthly withholding schedule.
// The bracket for an income is the first one (ascending by UpperLimit) whose
// UpperLimit is at least the monthly-equivalent income; the tax is then
// BaseTaxAtLimit plus the marginal rate applied to the income above
// BaseIncomeAtLimit.
type TaxBracket struct {
	ID                string
	UpperLimit        decimal.Decimal
	BaseTaxAtLimit    decimal.Decimal
	BaseIncomeAtLimit decimal.Decimal
	MarginalRate      decimal.Decimal
}
