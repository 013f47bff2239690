package contract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activeID = "status-active"

func testContract(id, statusID string, start time.Time) EmploymentContract {
	return EmploymentContract{
		ID:            id,
		EmployeeID:    "emp-1",
		MonthlySalary: decimal.NewFromInt(900000),
		WeeklyHours:   decimal.NewFromInt(40),
		StatusID:      statusID,
		StartDate:     start,
	}
}

func TestResolveActive(t *testing.T) {
	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("single active contract", func(t *testing.T) {
		got, err := ResolveActive([]EmploymentContract{
			testContract("c1", activeID, jan),
			testContract("c2", "status-ended", jun),
		}, activeID)
		require.NoError(t, err)
		assert.Equal(t, "c1", got.ID)
	})

	t.Run("most recent start date wins among actives", func(t *testing.T) {
		got, err := ResolveActive([]EmploymentContract{
			testContract("old", activeID, jan),
			testContract("new", activeID, jun),
		}, activeID)
		require.NoError(t, err)
		assert.Equal(t, "new", got.ID)
	})

	t.Run("order of input does not matter", func(t *testing.T) {
		got, err := ResolveActive([]EmploymentContract{
			testContract("new", activeID, jun),
			testContract("old", activeID, jan),
		}, activeID)
		require.NoError(t, err)
		assert.Equal(t, "new", got.ID)
	})

	t.Run("no active contract", func(t *testing.T) {
		_, err := ResolveActive([]EmploymentContract{
			testContract("c1", "status-ended", jan),
		}, activeID)
		assert.ErrorIs(t, err, ErrNoActiveContract)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ResolveActive(nil, activeID)
		assert.ErrorIs(t, err, ErrNoActiveContract)
	})
}
