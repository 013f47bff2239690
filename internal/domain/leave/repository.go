package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// GetApprovedVacations returns approved vacation requests overlapping the range.
	GetApprovedVacations(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)
	// GetApprovedPaidLeaves returns approved paid leave requests overlapping the range.
	GetApprovedPaidLeaves(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)
	// GetIncapacities returns incapacity records overlapping the range.
	GetIncapacities(ctx context.Context, employeeID string, start, end time.Time) ([]IncapacityRecord, error)
}
