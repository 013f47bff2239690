package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hrcore/payroll-engine-go/internal/domain/contract"
	"github.com/hrcore/payroll-engine-go/internal/domain/payroll"
	"github.com/hrcore/payroll-engine-go/internal/domain/schedule"
	"github.com/hrcore/payroll-engine-go/internal/pkg/money"
)

var (
	overtimeFactor = decimal.NewFromFloat(1.5)
	nightFactor    = decimal.NewFromFloat(0.25)
)

// EmployeeInputs is everything Compute reads for one employee. The loader
// assembles it from the repositories; tests build it directly.
type EmployeeInputs struct {
	EmployeeID string
	Contract   contract.EmploymentContract
	Schedule   schedule.WorkSchedule
	Calendar   CalendarInputs
}

// Compute produces one employee's payroll line for the period, with the
// itemized breakdown. Deterministic given its inputs; it performs no I/O.
func Compute(in EmployeeInputs, globals payroll.PeriodGlobals) (payroll.ComputationResult, error) {
	rates, err := CalculateRates(in.Contract)
	if err != nil {
		return payroll.ComputationResult{}, err
	}

	_, totals := ClassifyDays(globals.Period.StartDate, globals.Period.EndDate, in.Calendar, rates.Daily)

	factor := globals.Period.PaymentCycle.PeriodsPerMonth()
	periodBase := money.Round2(in.Contract.MonthlySalary.Div(factor))

	ordinaryHours := in.Schedule.ShiftHours().Mul(decimal.NewFromInt(int64(totals.WorkedDays)))
	overtimePay := money.Round2(totals.OvertimeHours.Mul(rates.Hourly).Mul(overtimeFactor))
	nightPay := money.Round2(totals.NightHours.Mul(rates.Hourly).Mul(nightFactor))
	holidayPay := money.Round2(totals.HolidayWorkedHours.Mul(rates.Hourly))

	gross := money.Round2(periodBase.
		Sub(totals.AbsenceDeducted).
		Sub(totals.IncapacityDeducted).
		Add(overtimePay).
		Add(nightPay).
		Add(holidayPay))

	totalDeductions, details := ApplyDeductions(gross, globals.Deductions)
	tax := CalculateTax(gross, globals.TaxBrackets, factor)
	net := money.Max(decimal.Zero, money.Round2(gross.Sub(totalDeductions).Sub(tax)))

	line := payroll.PayrollLine{
		PeriodID:        globals.Period.ID,
		EmployeeID:      in.EmployeeID,
		ContractID:      in.Contract.ID,
		OrdinaryHours:   ordinaryHours,
		OvertimeHours:   totals.OvertimeHours,
		HolidayHours:    totals.HolidayWorkedHours,
		NightHours:      totals.NightHours,
		GrossPay:        gross,
		TotalDeductions: totalDeductions,
		Tax:             tax,
		NetPay:          net,
		Status:          payroll.LineStatusDraft,
	}

	items := buildLineItems(in, rates, totals, periodBase, overtimePay, nightPay, holidayPay, details, gross, tax, net)

	return payroll.ComputationResult{Line: line, Details: details, Items: items}, nil
}

// buildLineItems assembles the ordered, human-auditable breakdown: reference
// salary and rates first, then every classified-day bucket, then deductions,
// tax, and the final net. The order is part of the output contract.
func buildLineItems(
	in EmployeeInputs,
	rates Rates,
	totals DayTotals,
	periodBase, overtimePay, nightPay, holidayPay decimal.Decimal,
	details []payroll.DeductionDetail,
	gross, tax, net decimal.Decimal,
) []payroll.LineItem {
	items := []payroll.LineItem{
		{Code: "reference_salary", Label: "Monthly reference salary", Amount: in.Contract.MonthlySalary},
		{Code: "period_base", Label: "Base salary for period", Amount: periodBase},
		{Code: "daily_rate", Label: "Daily rate", Amount: rates.Daily},
		{Code: "hourly_rate", Label: "Hourly rate", Amount: rates.Hourly},
		dayBucket("worked_days", "Days worked", totals.WorkedDays, decimal.Zero),
		dayBucket("holiday_unworked_days", "Unworked holidays (paid)", totals.HolidayUnworkedDays, decimal.Zero),
		dayBucket("vacation_days", "Vacation days (paid)", totals.VacationDays, decimal.Zero),
		dayBucket("paid_leave_days", "Paid leave days", totals.PaidLeaveDays, decimal.Zero),
		hourBucket("overtime", "Overtime premium", totals.OvertimeHours, overtimePay),
		hourBucket("night_hours", "Night shift premium", totals.NightHours, nightPay),
		hourBucket("holiday_worked", "Holiday hours worked", totals.HolidayWorkedHours, holidayPay),
		dayBucket("absence_days", "Unexcused absences", totals.AbsenceDays, totals.AbsenceDeducted.Neg()),
		dayBucket("incapacity_days", "Incapacity days", totals.IncapacityDays, totals.IncapacityDeducted.Neg()),
	}

	items = append(items, payroll.LineItem{Code: "gross", Label: "Gross pay", Amount: gross})
	for _, d := range details {
		items = append(items, payroll.LineItem{
			Code:   "deduction",
			Label:  d.DeductionName,
			Amount: d.Amount.Neg(),
		})
	}
	items = append(items,
		payroll.LineItem{Code: "tax", Label: "Income tax withholding", Amount: tax.Neg()},
		payroll.LineItem{Code: "net", Label: "Net pay", Amount: net},
	)

	return items
}

func dayBucket(code, label string, count int, amount decimal.Decimal) payroll.LineItem {
	qty := decimal.NewFromInt(int64(count))
	return payroll.LineItem{Code: code, Label: label, Quantity: &qty, Amount: amount}
}

func hourBucket(code, label string, hours, amount decimal.Decimal) payroll.LineItem {
	qty := hours
	return payroll.LineItem{Code: code, Label: label, Quantity: &qty, Amount: amount}
}
