package payroll

import "context"

// PayrollService is the computation engine's public surface.
type PayrollService interface {
	// LoadPeriodGlobals loads the period-wide inputs once per batch.
	LoadPeriodGlobals(ctx context.Context, periodID string) (PeriodGlobals, error)
	// ComputeForEmployee computes one employee's payroll for the period.
	// Pure over the data it reads; it never writes.
	ComputeForEmployee(ctx context.Context, employeeID string, globals PeriodGlobals) (ComputationResult, error)

	// GenerateBatch computes and persists lines for the requested employees
	// inside one transaction, reporting computed/duplicates/errors.
	GenerateBatch(ctx context.Context, req BatchRequest) (GenerateBatchResponse, error)
	// RecalculateBatch recomputes pre-existing draft lines, recording the
	// previous net and the difference for audit.
	RecalculateBatch(ctx context.Context, req BatchRequest) (RecalculateBatchResponse, error)
	// SimulateBatch runs the identical computation with no persistence.
	SimulateBatch(ctx context.Context, req BatchRequest) (SimulateBatchResponse, error)

	GetLine(ctx context.Context, id string) (LineResponse, error)
	ListLines(ctx context.Context, periodID string) ([]LineResponse, error)
	ApproveLines(ctx context.Context, req ApproveLinesRequest) (int, error)
	DeleteLine(ctx context.Context, id string) error
	GetPeriodSummary(ctx context.Context, periodID string) (PeriodSummaryResponse, error)
}
