package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hrcore/payroll-engine-go/internal/domain/contract"
	"github.com/hrcore/payroll-engine-go/internal/pkg/money"
)

// Payroll reproducibility depends on the fixed 30-day-month and 4-week-month
// conventions. Actual days in the month never enter the rate math.
var (
	daysPerMonth  = decimal.NewFromInt(30)
	weeksPerMonth = decimal.NewFromInt(4)
)

// Rates are the wage rates derived from a contract's monthly salary.
type Rates struct {
	Daily  decimal.Decimal
	Hourly decimal.Decimal
}

// CalculateRates derives the daily and hourly rates for a contract.
// dailyRate = monthlySalary / 30, hourlyRate = monthlySalary / (weeklyHours × 4).
func CalculateRates(c contract.EmploymentContract) (Rates, error) {
	if !c.MonthlySalary.IsPositive() || !c.WeeklyHours.IsPositive() {
		return Rates{}, contract.ErrInvalidContract
	}

	return Rates{
		Daily:  money.Round2(c.MonthlySalary.Div(daysPerMonth)),
		Hourly: money.Round2(c.MonthlySalary.Div(c.WeeklyHours.Mul(weeksPerMonth))),
	}, nil
}
