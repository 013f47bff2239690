package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]DailyAttendance, error)
}

type HolidayRepository interface {
	GetByRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
}
