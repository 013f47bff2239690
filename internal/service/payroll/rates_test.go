package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/payroll-engine-go/internal/domain/contract"
)

func TestCalculateRates(t *testing.T) {
	t.Run("standard contract", func(t *testing.T) {
		rates, err := CalculateRates(contract.EmploymentContract{
			MonthlySalary: decimal.NewFromInt(900000),
			WeeklyHours:   decimal.NewFromInt(40),
		})
		require.NoError(t, err)
		assert.True(t, rates.Daily.Equal(decimal.NewFromInt(30000)), "daily: %s", rates.Daily)
		assert.True(t, rates.Hourly.Equal(decimal.NewFromInt(5625)), "hourly: %s", rates.Hourly)
	})

	t.Run("non-terminating division rounds to 2 places", func(t *testing.T) {
		rates, err := CalculateRates(contract.EmploymentContract{
			MonthlySalary: decimal.NewFromInt(1000000),
			WeeklyHours:   decimal.NewFromInt(45),
		})
		require.NoError(t, err)
		// 1000000/30 = 33333.333... and 1000000/180 = 5555.555...
		assert.True(t, rates.Daily.Equal(decimal.RequireFromString("33333.33")), "daily: %s", rates.Daily)
		assert.True(t, rates.Hourly.Equal(decimal.RequireFromString("5555.56")), "hourly: %s", rates.Hourly)
	})

	t.Run("zero salary is invalid", func(t *testing.T) {
		_, err := CalculateRates(contract.EmploymentContract{
			MonthlySalary: decimal.Zero,
			WeeklyHours:   decimal.NewFromInt(40),
		})
		assert.ErrorIs(t, err, contract.ErrInvalidContract)
	})

	t.Run("zero weekly hours is invalid", func(t *testing.T) {
		_, err := CalculateRates(contract.EmploymentContract{
			MonthlySalary: decimal.NewFromInt(900000),
			WeeklyHours:   decimal.Zero,
		})
		assert.ErrorIs(t, err, contract.ErrInvalidContract)
	})

	t.Run("negative salary is invalid", func(t *testing.T) {
		_, err := CalculateRates(contract.EmploymentContract{
			MonthlySalary: decimal.NewFromInt(-1),
			WeeklyHours:   decimal.NewFromInt(40),
		})
		assert.ErrorIs(t, err, contract.ErrInvalidContract)
	})
}
