package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentContract is the salary basis for one employee. The engine consumes
// contracts read-only; master-data management lives elsewhere.
type EmploymentContract struct {
	ID             string
	EmployeeID     string
	PositionID     string
	MonthlySalary  decimal.Decimal
	WeeklyHours    decimal.Decimal
	PaymentCycleID string
	StatusID       string
	StartDate      time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ResolveActive picks the contract the payroll run is computed against.
// Exactly one ACTIVE contract per employee is the normal case; when the data
// holds several, the most recent start date wins. That tie-break is a business
// rule, not an artifact of query ordering.
func ResolveActive(contracts []EmploymentContract, activeStatusID string) (EmploymentContract, error) {
	var resolved *EmploymentContract
	for i := range contracts {
		c := &contracts[i]
		if c.StatusID != activeStatusID {
			continue
		}
		if resolved == nil || c.StartDate.After(resolved.StartDate) {
			resolved = c
		}
	}
	if resolved == nil {
		return EmploymentContract{}, ErrNoActiveContract
	}
	return *resolved, nil
}
