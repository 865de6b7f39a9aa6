package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		symbol string
		amount float64
		want   string
	}{
		{"$", 0, "$0.00"},
		{"$", 9.99, "$9.99"},
		{"$", 1234.5, "$1,234.50"},
		{"$", 1234567.89, "$1,234,567.89"},
		{"$", -42.1, "-$42.10"},
		{"Bs", 1000, "Bs1,000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMoney(tt.symbol, tt.amount))
	}
}

func TestTruncateStr(t *testing.T) {
	assert.Equal(t, "short", truncateStr("short", 10))
	assert.Equal(t, "exactly-10", truncateStr("exactly-10", 10))
	assert.Equal(t, "a very ...", truncateStr("a very long string", 10))
	assert.Equal(t, "ab", truncateStr("abcdef", 2))
}
