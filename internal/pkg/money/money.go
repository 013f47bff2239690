package money

import "github.com/shopspring/decimal"

// All payroll arithmetic is rounded to 2 decimals at every boundary, not only
// at the end. decimal.Round rounds half away from zero.

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns Round2(amount × rate / 100).
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate).Div(decimal.NewFromInt(100)))
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// ClampZero returns d, or zero when d is negative.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
