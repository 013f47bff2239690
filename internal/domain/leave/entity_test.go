package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveRequestDates(t *testing.T) {
	t.Run("inclusive range", func(t *testing.T) {
		r := LeaveRequest{StartDate: day(6), EndDate: day(8), ApprovalStatus: ApprovalApproved}
		dates := r.Dates()
		require.Len(t, dates, 3)
		assert.Equal(t, day(6), dates[0])
		assert.Equal(t, day(8), dates[2])
	})

	t.Run("single day", func(t *testing.T) {
		r := LeaveRequest{StartDate: day(6), EndDate: day(6), ApprovalStatus: ApprovalApproved}
		assert.Len(t, r.Dates(), 1)
	})

	t.Run("pending request expands to nothing", func(t *testing.T) {
		r := LeaveRequest{StartDate: day(6), EndDate: day(8), ApprovalStatus: ApprovalPending}
		assert.Empty(t, r.Dates())
	})

	t.Run("rejected request expands to nothing", func(t *testing.T) {
		r := LeaveRequest{StartDate: day(6), EndDate: day(8), ApprovalStatus: ApprovalRejected}
		assert.Empty(t, r.Dates())
	})
}

func TestIncapacityCovers(t *testing.T) {
	rec := IncapacityRecord{
		StartDate:               day(6),
		EndDate:                 day(10),
		EmployerCoveragePercent: decimal.NewFromInt(50),
	}

	assert.True(t, rec.Covers(day(6)))
	assert.True(t, rec.Covers(day(8)))
	assert.True(t, rec.Covers(day(10)))
	assert.False(t, rec.Covers(day(5)))
	assert.False(t, rec.Covers(day(11)))

	// Time-of-day on the probe date is irrelevant.
	assert.True(t, rec.Covers(time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)))
}
