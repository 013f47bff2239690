package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyAttendance is one reconciled attendance row per employee per date,
// produced by the time-tracking subsystem. The engine reads it, never writes.
type DailyAttendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	OrdinaryHours decimal.Decimal
	OvertimeHours decimal.Decimal
	NightHours    decimal.Decimal
	IsHoliday     bool
	IncapacityID  *string
	VacationID    *string
	LeaveID       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Holiday is a calendar-wide holiday date.
type Holiday struct {
	ID          string
	Date        time.Time
	Name        string
	IsMandatory bool
}

// DateKey is the canonical map key for calendar dates.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
