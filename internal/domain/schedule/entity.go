package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkSchedule defines which weekdays are laborable for a contract and the
// daily shift window. Attendance reconciliation classifies every calendar day
// against it.
type WorkSchedule struct {
	ID          string
	ContractID  string
	StartTime   time.Time
	EndTime     time.Time
	WorkingDays []time.Weekday
	RestDays    []time.Weekday
	StatusID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsWorkingDay reports whether the weekday is laborable under this schedule.
func (s WorkSchedule) IsWorkingDay(d time.Weekday) bool {
	for _, w := range s.WorkingDays {
		if w == d {
			return true
		}
	}
	return false
}

// ShiftHours is the contracted shift duration derived from the schedule's
// start and end times, in hours.
func (s WorkSchedule) ShiftHours() decimal.Decimal {
	minutes := int64(s.EndTime.Sub(s.StartTime) / time.Minute)
	if minutes < 0 {
		// Overnight shift: checkout falls on the next day.
		minutes += 24 * 60
	}
	return decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60))
}
