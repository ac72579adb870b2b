package currencyutils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSwiftAmount(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    string
		expectError bool
	}{
		{name: "WithFraction", raw: "123,45", expected: "123.45"},
		{name: "WholeAmount", raw: "100,", expected: "100"},
		{name: "FractionOnly", raw: "0,5", expected: "0.5"},
		{name: "Empty", raw: "", expectError: true},
		{name: "NoComma", raw: "100", expectError: true},
		{name: "TwoCommas", raw: "1,2,3", expectError: true},
		{name: "DotSeparator", raw: "100.50", expectError: true},
		{name: "Negative", raw: "-1,5", expectError: true},
		{name: "TooLong", raw: strings.Repeat("9", 15) + ",5", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseSwiftAmount(tt.raw)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}

func TestFormatSwiftAmount(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "123.45", expected: "123,45"},
		{raw: "100", expected: "100,"},
		{raw: "-50.25", expected: "50,25"},
		{raw: "0", expected: "0,"},
		{raw: "1000.00", expected: "1000,00"},
		{raw: "900.00", expected: "900,00"},
	}

	for _, tt := range tests {
		amount := decimal.RequireFromString(tt.raw)
		assert.Equal(t, tt.expected, FormatSwiftAmount(amount))
	}
}

func TestSwiftAmountRoundTrip(t *testing.T) {
	for _, raw := range []string{"123,45", "100,", "0,01", "1000,00", "0,50"} {
		amount, err := ParseSwiftAmount(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, FormatSwiftAmount(amount))
	}
}

func TestParseISOAmount(t *testing.T) {
	amount, err := ParseISOAmount("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", amount.String())

	amount, err = ParseISOAmount(" 1234,56 ")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", amount.String())

	_, err = ParseISOAmount("")
	assert.Error(t, err)
	_, err = ParseISOAmount("abc")
	assert.Error(t, err)
}
