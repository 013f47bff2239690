package payroll

import "context"

// LineRepository defines data access for payroll lines and their deduction
// details. Uniqueness of (period, employee) is enforced by the store; Create
// surfaces a violation as ErrLineAlreadyExists so concurrent generates cannot
// produce two lines for one employee.
type LineRepository interface {
	GetByID(ctx context.Context, id string) (PayrollLine, error)
	GetByPeriodAndEmployee(ctx context.Context, periodID, employeeID string) (PayrollLine, error)
	// GetForUpdate locks the line row for the rest of the enclosing
	// transaction so a recalculation cannot be applied twice concurrently.
	GetForUpdate(ctx context.Context, periodID, employeeID string) (PayrollLine, error)
	Create(ctx context.Context, line PayrollLine, details []DeductionDetail) (PayrollLine, error)
	Update(ctx context.Context, line PayrollLine, details []DeductionDetail) error
	ListByPeriod(ctx context.Context, periodID string) ([]PayrollLine, error)
	GetDetails(ctx context.Context, lineID string) ([]DeductionDetail, error)
	Approve(ctx context.Context, lineIDs []string) (int, error)
	Delete(ctx context.Context, id string) error
	GetPeriodSummary(ctx context.Context, periodID string) (PeriodSummaryResponse, error)
}
