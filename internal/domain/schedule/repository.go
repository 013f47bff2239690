package schedule

import "context"

type ScheduleRepository interface {
	GetActiveByContractID(ctx context.Context, contractID, activeStatusID string) (WorkSchedule, error)
}
