package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no rounding needed", "100.25", "100.25"},
		{"rounds half up", "100.005", "100.01"},
		{"rounds half away from zero for negatives", "-100.005", "-100.01"},
		{"rounds down below half", "100.004", "100"},
		{"long fraction", "5624.999999", "5625"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(decimal.RequireFromString(tt.input))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"got %s, want %s", got, tt.expected)
		})
	}
}

func TestPercent(t *testing.T) {
	got := Percent(decimal.RequireFromString("466875"), decimal.RequireFromString("9"))
	assert.True(t, got.Equal(decimal.RequireFromString("42018.75")), "got %s", got)

	got = Percent(decimal.RequireFromString("100.555"), decimal.RequireFromString("10"))
	assert.True(t, got.Equal(decimal.RequireFromString("10.06")), "got %s", got)
}

func TestMax(t *testing.T) {
	a := decimal.NewFromInt(5)
	b := decimal.NewFromInt(-3)
	assert.True(t, Max(a, b).Equal(a))
	assert.True(t, Max(b, a).Equal(a))
	assert.True(t, Max(a, a).Equal(a))
}

func TestClampZero(t *testing.T) {
	assert.True(t, ClampZero(decimal.NewFromInt(-10)).IsZero())
	assert.True(t, ClampZero(decimal.NewFromInt(10)).Equal(decimal.NewFromInt(10)))
	assert.True(t, ClampZero(decimal.Zero).IsZero())
}
