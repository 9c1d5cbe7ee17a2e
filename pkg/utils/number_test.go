package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1_500_000, "1.5M"},
		{2_500, "2.5K"},
		{42, "42"},
		{1_000_000, "1.0M"},
		{999, "999"},
		{12.5, "12.5"},
		{0, "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234,568", FormatCurrency(1234567.8))
	assert.Equal(t, "$0", FormatCurrency(0))
	assert.Equal(t, "-$2,500", FormatCurrency(-2500))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "85.3%", FormatPercent(85.26, 1))
	assert.Equal(t, "12.00%", FormatPercent(12, 2))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestPrettyJson(t *testing.T) {
	out, err := PrettyJson([]byte(`{"b":1,"a":2}`))
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 2,\n  \"b\": 1\n}", out)
}
