package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrcore/payroll-engine-go/internal/domain/attendance"
	"github.com/hrcore/payroll-engine-go/internal/domain/leave"
	"github.com/hrcore/payroll-engine-go/internal/domain/schedule"
	"github.com/hrcore/payroll-engine-go/internal/pkg/money"
)

// DayCategory enum. Every calendar day of a period is classified into exactly
// one category.
type DayCategory string

const (
	DayWorked          DayCategory = "WORKED"
	DayNonWorking      DayCategory = "NON_WORKING"
	DayHolidayUnworked DayCategory = "HOLIDAY_UNWORKED"
	DayVacation        DayCategory = "VACATION"
	DayPaidLeave       DayCategory = "PAID_LEAVE"
	DayIncapacity      DayCategory = "INCAPACITY"
	DayAbsence         DayCategory = "ABSENCE"
)

// ClassifiedDay is the label assigned to a single calendar date, plus the
// wage withheld on it (non-zero only for absence and incapacity days).
type ClassifiedDay struct {
	Date      time.Time
	Category  DayCategory
	Deduction decimal.Decimal
}

// DayTotals are the running totals accumulated while classifying a range.
type DayTotals struct {
	WorkedDays          int
	NonWorkingDays      int
	HolidayUnworkedDays int
	VacationDays        int
	PaidLeaveDays       int
	OvertimeHours       decimal.Decimal
	NightHours          decimal.Decimal
	HolidayWorkedHours  decimal.Decimal
	AbsenceDays         int
	AbsenceDeducted     decimal.Decimal
	IncapacityDays      int
	IncapacityDeducted  decimal.Decimal
}

// CalendarInputs is the per-employee read set the day classifier works from.
// Date-keyed maps use attendance.DateKey.
type CalendarInputs struct {
	Schedule       schedule.WorkSchedule
	Holidays       map[string]attendance.Holiday
	VacationDates  map[string]bool
	PaidLeaveDates map[string]bool
	Attendance     map[string]attendance.DailyAttendance
	Incapacities   []leave.IncapacityRecord
}

func (in CalendarInputs) incapacityFor(date time.Time) (leave.IncapacityRecord, bool) {
	for _, rec := range in.Incapacities {
		if rec.Covers(date) {
			return rec, true
		}
	}
	return leave.IncapacityRecord{}, false
}

var hundred = decimal.NewFromInt(100)

// ClassifyDays labels every calendar date in [start, end] with exactly one
// DayCategory. The rule order below is the business rule itself and must not
// be reordered: in particular, an approved vacation beats an incapacity record
// covering the same date.
//
//  1. Not a scheduled working day            -> NON_WORKING
//  2. Attendance with ordinary hours > 0     -> WORKED (holiday work tagged for premium)
//  3. Calendar holiday, not worked           -> HOLIDAY_UNWORKED (paid)
//  4. Approved vacation date                 -> VACATION (paid)
//  5. Approved paid leave date               -> PAID_LEAVE (paid)
//  6. Incapacity record covers the date      -> INCAPACITY (partial deduction)
//  7. Otherwise                              -> ABSENCE (full daily wage deducted)
//
// Overtime and night hours accrue from every attendance row in the range
// regardless of the date's category; shift coverage on rest days is common.
func ClassifyDays(start, end time.Time, in CalendarInputs, dailyRate decimal.Decimal) ([]ClassifiedDay, DayTotals) {
	var days []ClassifiedDay
	var totals DayTotals

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		key := attendance.DateKey(date)
		att, hasAtt := in.Attendance[key]

		if hasAtt {
			totals.OvertimeHours = totals.OvertimeHours.Add(att.OvertimeHours)
			totals.NightHours = totals.NightHours.Add(att.NightHours)
		}

		day := ClassifiedDay{Date: date, Deduction: decimal.Zero}

		switch {
		case !in.Schedule.IsWorkingDay(date.Weekday()):
			day.Category = DayNonWorking
			totals.NonWorkingDays++

		case hasAtt && att.OrdinaryHours.IsPositive():
			day.Category = DayWorked
			totals.WorkedDays++
			if att.IsHoliday {
				totals.HolidayWorkedHours = totals.HolidayWorkedHours.Add(att.OrdinaryHours)
			}

		case isHoliday(in.Holidays, key):
			day.Category = DayHolidayUnworked
			totals.HolidayUnworkedDays++

		case in.VacationDates[key]:
			day.Category = DayVacation
			totals.VacationDays++

		case in.PaidLeaveDates[key]:
			day.Category = DayPaidLeave
			totals.PaidLeaveDays++

		default:
			if rec, ok := in.incapacityFor(date); ok {
				day.Category = DayIncapacity
				day.Deduction = incapacityDeduction(dailyRate, rec.EmployerCoveragePercent)
				totals.IncapacityDays++
				totals.IncapacityDeducted = money.Round2(totals.IncapacityDeducted.Add(day.Deduction))
			} else {
				day.Category = DayAbsence
				day.Deduction = dailyRate
				totals.AbsenceDays++
				totals.AbsenceDeducted = money.Round2(totals.AbsenceDeducted.Add(dailyRate))
			}
		}

		days = append(days, day)
	}

	return days, totals
}

func isHoliday(holidays map[string]attendance.Holiday, key string) bool {
	_, ok := holidays[key]
	return ok
}

// incapacityDeduction is the unpaid share of the daily wage on an incapacity
// day: dailyRate × (100 − employerCoverage)/100, never below zero.
func incapacityDeduction(dailyRate, employerCoveragePercent decimal.Decimal) decimal.Decimal {
	uncovered := hundred.Sub(employerCoveragePercent)
	return money.ClampZero(money.Round2(dailyRate.Mul(uncovered).Div(hundred)))
}
