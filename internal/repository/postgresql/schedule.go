package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrcore/payroll-engine-go/internal/domain/schedule"
	"github.com/hrcore/payroll-engine-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) GetActiveByContractID(ctx context.Context, contractID, activeStatusID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, contract_id, start_time, end_time, working_days, rest_days,
			   status_id, created_at, updated_at
		FROM work_schedules
		WHERE contract_id = $1 AND status_id = $2
	`

	var s schedule.WorkSchedule
	var workingDays, restDays []int32
	err := q.QueryRow(ctx, query, contractID, activeStatusID).Scan(
		&s.ID, &s.ContractID, &s.StartTime, &s.EndTime, &workingDays, &restDays,
		&s.StatusID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrNoActiveSchedule
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	s.WorkingDays = toWeekdays(workingDays)
	s.RestDays = toWeekdays(restDays)

	return s, nil
}

// Weekdays persist as smallint arrays using Go's numbering, 0=Sunday.
func toWeekdays(days []int32) []time.Weekday {
	result := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		result = append(result, time.Weekday(d))
	}
	return result
}
