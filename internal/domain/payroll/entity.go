package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineStatus enum
type LineStatus string

const (
	LineStatusDraft    LineStatus = "draft"
	LineStatusApproved LineStatus = "approved"
)

// PayrollLine is the engine output: one line per employee per period. At most
// one line may exist per (PeriodID, EmployeeID); recomputation is an explicit
// update path, never a second insert.
type PayrollLine struct {
	ID              string
	PeriodID        string
	EmployeeID      string
	ContractID      string
	OrdinaryHours   decimal.Decimal
	OvertimeHours   decimal.Decimal
	HolidayHours    decimal.Decimal
	NightHours      decimal.Decimal
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	Tax             decimal.Decimal
	NetPay          decimal.Decimal
	Status          LineStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DeductionDetail itemizes one mandatory deduction applied to a line.
// Rows are deleted before their line (FK discipline).
type DeductionDetail struct {
	ID            string
	PayrollLineID string
	DeductionID   string
	DeductionName string
	Amount        decimal.Decimal
}
