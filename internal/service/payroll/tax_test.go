package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/payroll-engine-go/internal/domain/deduction"
)

func testBrackets() []deduction.TaxBracket {
	return []deduction.TaxBracket{
		{
			ID:                "b1",
			UpperLimit:        decimal.NewFromInt(500000),
			BaseTaxAtLimit:    decimal.Zero,
			BaseIncomeAtLimit: decimal.Zero,
			MarginalRate:      decimal.Zero,
		},
		{
			ID:                "b2",
			UpperLimit:        decimal.NewFromInt(1000000),
			BaseTaxAtLimit:    decimal.Zero,
			BaseIncomeAtLimit: decimal.NewFromInt(500000),
			MarginalRate:      decimal.RequireFromString("0.10"),
		},
		{
			ID:                "b3",
			UpperLimit:        decimal.NewFromInt(2000000),
			BaseTaxAtLimit:    decimal.NewFromInt(50000),
			BaseIncomeAtLimit: decimal.NewFromInt(1000000),
			MarginalRate:      decimal.RequireFromString("0.20"),
		},
	}
}

func TestCalculateTax(t *testing.T) {
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)

	t.Run("income in exempt bracket", func(t *testing.T) {
		tax := CalculateTax(decimal.NewFromInt(400000), testBrackets(), one)
		assert.True(t, tax.IsZero(), "tax: %s", tax)
	})

	t.Run("biweekly gross scaled to monthly and back", func(t *testing.T) {
		// 450000 × 2 = 900000 monthly; (900000−500000) × 0.10 = 40000; /2 = 20000
		tax := CalculateTax(decimal.NewFromInt(450000), testBrackets(), two)
		assert.True(t, tax.Equal(decimal.NewFromInt(20000)), "tax: %s", tax)
	})

	t.Run("income above the top limit uses the last bracket", func(t *testing.T) {
		// 50000 + (3000000−1000000) × 0.20 = 450000
		tax := CalculateTax(decimal.NewFromInt(3000000), testBrackets(), one)
		assert.True(t, tax.Equal(decimal.NewFromInt(450000)), "tax: %s", tax)
	})

	t.Run("income exactly at a limit stays in that bracket", func(t *testing.T) {
		tax := CalculateTax(decimal.NewFromInt(500000), testBrackets(), one)
		assert.True(t, tax.IsZero(), "tax: %s", tax)
	})

	t.Run("empty bracket table means no withholding", func(t *testing.T) {
		tax := CalculateTax(decimal.NewFromInt(900000), nil, one)
		assert.True(t, tax.IsZero())
	})

	t.Run("non-positive gross means no withholding", func(t *testing.T) {
		assert.True(t, CalculateTax(decimal.Zero, testBrackets(), one).IsZero())
		assert.True(t, CalculateTax(decimal.NewFromInt(-100), testBrackets(), one).IsZero())
	})

	t.Run("tax never decreases as income grows", func(t *testing.T) {
		prev := decimal.Zero
		for income := int64(100000); income <= 3000000; income += 100000 {
			tax := CalculateTax(decimal.NewFromInt(income), testBrackets(), one)
			assert.True(t, tax.GreaterThanOrEqual(prev), "income %d: tax %s < previous %s", income, tax, prev)
			prev = tax
		}
	})
}

func TestApplyDeductions(t *testing.T) {
	catalog := []deduction.MandatoryDeduction{
		{ID: "d1", Name: "Health", PercentRate: decimal.NewFromInt(4)},
		{ID: "d2", Name: "Pension", PercentRate: decimal.NewFromInt(5)},
		{ID: "d3", Name: "Savings club", PercentRate: decimal.NewFromInt(3), IsVoluntary: true},
	}

	t.Run("applies only mandatory rows", func(t *testing.T) {
		total, details := ApplyDeductions(decimal.NewFromInt(466875), catalog)
		require.Len(t, details, 2)
		// 4% = 18675, 5% = 23343.75
		assert.True(t, details[0].Amount.Equal(decimal.NewFromInt(18675)), "health: %s", details[0].Amount)
		assert.True(t, details[1].Amount.Equal(decimal.RequireFromString("23343.75")), "pension: %s", details[1].Amount)
		assert.True(t, total.Equal(decimal.RequireFromString("42018.75")), "total: %s", total)
	})

	t.Run("each amount rounds before summation", func(t *testing.T) {
		gross := decimal.RequireFromString("100.55")
		total, details := ApplyDeductions(gross, []deduction.MandatoryDeduction{
			{ID: "a", Name: "A", PercentRate: decimal.RequireFromString("1.5")},
			{ID: "b", Name: "B", PercentRate: decimal.RequireFromString("1.5")},
		})
		require.Len(t, details, 2)
		// 1.50825 rounds to 1.51 per item, not 3.0165 rounded once
		assert.True(t, details[0].Amount.Equal(decimal.RequireFromString("1.51")))
		assert.True(t, total.Equal(decimal.RequireFromString("3.02")), "total: %s", total)
	})

	t.Run("zero gross yields no details", func(t *testing.T) {
		total, details := ApplyDeductions(decimal.Zero, catalog)
		assert.True(t, total.IsZero())
		assert.Empty(t, details)
	})
}
