package period

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPeriodsPerMonth(t *testing.T) {
	cases := []struct {
		cycle PaymentCycle
		want  int64
	}{
		{CycleMonthly, 1},
		{CycleBiweekly, 2},
		{CycleWeekly, 4},
		{PaymentCycle("unknown"), 1},
	}
	for _, c := range cases {
		got := c.cycle.PeriodsPerMonth()
		assert.True(t, got.Equal(decimal.NewFromInt(c.want)), "%s: got %s", c.cycle, got)
	}
}
