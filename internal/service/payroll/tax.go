package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hrcore/payroll-engine-go/internal/domain/deduction"
	"github.com/hrcore/payroll-engine-go/internal/domain/payroll"
	"github.com/hrcore/payroll-engine-go/internal/pkg/money"
)

// ApplyDeductions applies every non-voluntary catalog deduction to the gross.
// Each amount is rounded before summation; zero and negative amounts are
// skipped. The itemized list feeds the persisted DeductionDetail rows.
func ApplyDeductions(gross decimal.Decimal, catalog []deduction.MandatoryDeduction) (decimal.Decimal, []payroll.DeductionDetail) {
	total := decimal.Zero
	var details []payroll.DeductionDetail

	for _, d := range catalog {
		if d.IsVoluntary {
			continue
		}
		amount := money.Percent(gross, d.PercentRate)
		if !amount.IsPositive() {
			continue
		}
		details = append(details, payroll.DeductionDetail{
			DeductionID:   d.ID,
			DeductionName: d.Name,
			Amount:        amount,
		})
		total = money.Round2(total.Add(amount))
	}

	return total, details
}

// CalculateTax computes the period withholding from the progressive monthly
// schedule. The period gross is scaled to a monthly-equivalent income by the
// declared cycle factor, taxed, and the monthly tax is scaled back down by the
// same factor. An empty bracket table means no withholding.
func CalculateTax(periodGross decimal.Decimal, brackets []deduction.TaxBracket, periodsPerMonth decimal.Decimal) decimal.Decimal {
	if len(brackets) == 0 || !periodGross.IsPositive() {
		return decimal.Zero
	}

	monthlyIncome := money.Round2(periodGross.Mul(periodsPerMonth))

	// First bracket whose upper limit covers the income; income above the top
	// limit falls into the last bracket.
	bracket := brackets[len(brackets)-1]
	for _, b := range brackets {
		if b.UpperLimit.GreaterThanOrEqual(monthlyIncome) {
			bracket = b
			break
		}
	}

	marginal := money.Round2(monthlyIncome.Sub(bracket.BaseIncomeAtLimit).Mul(bracket.MarginalRate))
	monthlyTax := money.Round2(bracket.BaseTaxAtLimit.Add(marginal))
	periodTax := money.Round2(monthlyTax.Div(periodsPerMonth))

	return money.ClampZero(periodTax)
}
