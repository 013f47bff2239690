package period

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentCycle determines how a monthly salary is split across pay periods.
type PaymentCycle string

const (
	CycleMonthly  PaymentCycle = "monthly"
	CycleBiweekly PaymentCycle = "biweekly"
	CycleWeekly   PaymentCycle = "weekly"
)

var PaymentCycleValues = []string{
	string(CycleMonthly),
	string(CycleBiweekly),
	string(CycleWeekly),
}

// PeriodsPerMonth is the declared period-to-month conversion factor. Tax is
// always evaluated on a monthly-equivalent income, so this factor scales the
// period gross up before the bracket lookup and the resulting monthly tax back
// down. It never depends on the actual calendar.
func (c PaymentCycle) PeriodsPerMonth() decimal.Decimal {
	switch c {
	case CycleBiweekly:
		return decimal.NewFromInt(2)
	case CycleWeekly:
		return decimal.NewFromInt(4)
	default:
		return decimal.NewFromInt(1)
	}
}

type PeriodStatus string

const (
	StatusOpen   PeriodStatus = "open"
	StatusClosed PeriodStatus = "closed"
)

// PayPeriod is a bounded date range for which one payroll run is generated.
// Immutable once payroll lines reference it; the engine consumes it read-only.
type PayPeriod struct {
	ID           string
	StartDate    time.Time
	EndDate      time.Time
	PayDate      time.Time
	PaymentCycle PaymentCycle
	Status       PeriodStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
