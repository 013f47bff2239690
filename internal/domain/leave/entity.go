package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// LeaveRequest covers both ordinary leave and vacation requests: a bounded
// date range that is pay-relevant only once approved.
type LeaveRequest struct {
	ID             string
	EmployeeID     string
	StartDate      time.Time
	EndDate        time.Time
	ApprovalStatus ApprovalStatus
	Paid           bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Dates expands the request's range into individual calendar dates, inclusive
// on both ends. Non-approved requests expand to nothing.
func (r LeaveRequest) Dates() []time.Time {
	if r.ApprovalStatus != ApprovalApproved {
		return nil
	}
	return expandRange(r.StartDate, r.EndDate)
}

// IncapacityRecord is a medically-certified absence with partial wage
// coverage. The employer keeps paying EmployerCoveragePercent of the daily
// wage; the rest is deducted (the insurer share is settled outside payroll).
type IncapacityRecord struct {
	ID                      string
	EmployeeID              string
	StartDate               time.Time
	EndDate                 time.Time
	EmployerCoveragePercent decimal.Decimal
	InsurerCoveragePercent  decimal.Decimal
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Covers reports whether the record's range includes the given date.
func (r IncapacityRecord) Covers(date time.Time) bool {
	d := truncate(date)
	return !d.Before(truncate(r.StartDate)) && !d.After(truncate(r.EndDate))
}

func expandRange(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := truncate(start); !d.After(truncate(end)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
