package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/payroll-engine-go/internal/domain/attendance"
	"github.com/hrcore/payroll-engine-go/internal/domain/leave"
	"github.com/hrcore/payroll-engine-go/internal/domain/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekdaySchedule() schedule.WorkSchedule {
	return schedule.WorkSchedule{
		ID:         "sched-1",
		ContractID: "c1",
		StartTime:  time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2000, 1, 1, 16, 0, 0, 0, time.UTC),
		WorkingDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		RestDays: []time.Weekday{time.Saturday, time.Sunday},
	}
}

func attRow(d time.Time, ordinary, overtime, night string, holiday bool) attendance.DailyAttendance {
	return attendance.DailyAttendance{
		EmployeeID:    "emp-1",
		Date:          d,
		OrdinaryHours: decimal.RequireFromString(ordinary),
		OvertimeHours: decimal.RequireFromString(overtime),
		NightHours:    decimal.RequireFromString(night),
		IsHoliday:     holiday,
	}
}

func categoriesOf(days []ClassifiedDay) []DayCategory {
	cats := make([]DayCategory, 0, len(days))
	for _, d := range days {
		cats = append(cats, d.Category)
	}
	return cats
}

func TestClassifyDays(t *testing.T) {
	daily := decimal.NewFromInt(30000)

	// Mon 2025-01-06 through Sun 2025-01-12
	start, end := date(2025, 1, 6), date(2025, 1, 12)

	t.Run("rest days are non-working regardless of anything else", func(t *testing.T) {
		in := CalendarInputs{
			Schedule: weekdaySchedule(),
			Holidays: map[string]attendance.Holiday{
				attendance.DateKey(date(2025, 1, 11)): {ID: "h1", Date: date(2025, 1, 11)},
			},
		}
		days, totals := ClassifyDays(date(2025, 1, 11), date(2025, 1, 12), in, daily)
		require.Len(t, days, 2)
		assert.Equal(t, []DayCategory{DayNonWorking, DayNonWorking}, categoriesOf(days))
		assert.Equal(t, 2, totals.NonWorkingDays)
		assert.True(t, totals.AbsenceDeducted.IsZero())
	})

	t.Run("full worked week", func(t *testing.T) {
		in := CalendarInputs{Schedule: weekdaySchedule(), Attendance: map[string]attendance.DailyAttendance{}}
		for d := start; !d.After(date(2025, 1, 10)); d = d.AddDate(0, 0, 1) {
			in.Attendance[attendance.DateKey(d)] = attRow(d, "8", "0", "0", false)
		}

		days, totals := ClassifyDays(start, end, in, daily)
		require.Len(t, days, 7)
		assert.Equal(t, 5, totals.WorkedDays)
		assert.Equal(t, 2, totals.NonWorkingDays)
		assert.Equal(t, 0, totals.AbsenceDays)
	})

	t.Run("unworked holiday is paid", func(t *testing.T) {
		holiday := date(2025, 1, 6)
		in := CalendarInputs{
			Schedule: weekdaySchedule(),
			Holidays: map[string]attendance.Holiday{
				attendance.DateKey(holiday): {ID: "h1", Date: holiday},
			},
		}
		days, totals := ClassifyDays(holiday, holiday, in, daily)
		assert.Equal(t, DayHolidayUnworked, days[0].Category)
		assert.Equal(t, 1, totals.HolidayUnworkedDays)
		assert.True(t, days[0].Deduction.IsZero())
	})

	t.Run("worked holiday counts as worked and accrues premium hours", func(t *testing.T) {
		holiday := date(2025, 1, 6)
		in := CalendarInputs{
			Schedule: weekdaySchedule(),
			Holidays: map[string]attendance.Holiday{
				attendance.DateKey(holiday): {ID: "h1", Date: holiday},
			},
			Attendance: map[string]attendance.DailyAttendance{
				attendance.DateKey(holiday): attRow(holiday, "8", "0", "0", true),
			},
		}
		days, totals := ClassifyDays(holiday, holiday, in, daily)
		assert.Equal(t, DayWorked, days[0].Category)
		assert.Equal(t, 1, totals.WorkedDays)
		assert.True(t, totals.HolidayWorkedHours.Equal(decimal.NewFromInt(8)))
	})

	t.Run("vacation beats incapacity on the same date", func(t *testing.T) {
		d := date(2025, 1, 7)
		in := CalendarInputs{
			Schedule:      weekdaySchedule(),
			VacationDates: map[string]bool{attendance.DateKey(d): true},
			Incapacities: []leave.IncapacityRecord{
				{StartDate: d, EndDate: d, EmployerCoveragePercent: decimal.NewFromInt(50)},
			},
		}
		days, totals := ClassifyDays(d, d, in, daily)
		assert.Equal(t, DayVacation, days[0].Category)
		assert.Equal(t, 1, totals.VacationDays)
		assert.Equal(t, 0, totals.IncapacityDays)
		assert.True(t, totals.IncapacityDeducted.IsZero())
	})

	t.Run("paid leave day", func(t *testing.T) {
		d := date(2025, 1, 8)
		in := CalendarInputs{
			Schedule:       weekdaySchedule(),
			PaidLeaveDates: map[string]bool{attendance.DateKey(d): true},
		}
		days, totals := ClassifyDays(d, d, in, daily)
		assert.Equal(t, DayPaidLeave, days[0].Category)
		assert.Equal(t, 1, totals.PaidLeaveDays)
	})

	t.Run("incapacity deducts the uncovered share", func(t *testing.T) {
		d := date(2025, 1, 9)
		in := CalendarInputs{
			Schedule: weekdaySchedule(),
			Incapacities: []leave.IncapacityRecord{
				{StartDate: d, EndDate: d, EmployerCoveragePercent: decimal.RequireFromString("66.67")},
			},
		}
		days, totals := ClassifyDays(d, d, in, daily)
		require.Equal(t, DayIncapacity, days[0].Category)
		// 30000 × (100−66.67)/100 = 9999
		assert.True(t, days[0].Deduction.Equal(decimal.NewFromInt(9999)), "deduction: %s", days[0].Deduction)
		assert.Equal(t, 1, totals.IncapacityDays)
		assert.True(t, totals.IncapacityDeducted.Equal(decimal.NewFromInt(9999)))
	})

	t.Run("full employer coverage deducts nothing", func(t *testing.T) {
		d := date(2025, 1, 9)
		in := CalendarInputs{
			Schedule: weekdaySchedule(),
			Incapacities: []leave.IncapacityRecord{
				{StartDate: d, EndDate: d, EmployerCoveragePercent: decimal.NewFromInt(100)},
			},
		}
		days, _ := ClassifyDays(d, d, in, daily)
		assert.True(t, days[0].Deduction.IsZero())
	})

	t.Run("unexplained working day is a full-wage absence", func(t *testing.T) {
		d := date(2025, 1, 10)
		in := CalendarInputs{Schedule: weekdaySchedule()}
		days, totals := ClassifyDays(d, d, in, daily)
		assert.Equal(t, DayAbsence, days[0].Category)
		assert.True(t, days[0].Deduction.Equal(daily))
		assert.Equal(t, 1, totals.AbsenceDays)
		assert.True(t, totals.AbsenceDeducted.Equal(daily))
	})

	t.Run("overtime and night hours accrue even on rest days", func(t *testing.T) {
		sat := date(2025, 1, 11)
		in := CalendarInputs{
			Schedule: weekdaySchedule(),
			Attendance: map[string]attendance.DailyAttendance{
				attendance.DateKey(sat): attRow(sat, "0", "4", "2", false),
			},
		}
		days, totals := ClassifyDays(sat, sat, in, daily)
		assert.Equal(t, DayNonWorking, days[0].Category)
		assert.True(t, totals.OvertimeHours.Equal(decimal.NewFromInt(4)))
		assert.True(t, totals.NightHours.Equal(decimal.NewFromInt(2)))
	})
}
