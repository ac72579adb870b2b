package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSwiftDate(t *testing.T) {
	date, err := ParseSwiftDate("220315")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC), date)

	// two-digit-year pivot
	date, err = ParseSwiftDate("991231")
	require.NoError(t, err)
	assert.Equal(t, 1999, date.Year())

	for _, raw := range []string{"", "2203", "22031", "2203151", "22MM15"} {
		_, err := ParseSwiftDate(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestParseSwiftShortDate(t *testing.T) {
	reference := time.Date(2022, 12, 30, 0, 0, 0, 0, time.UTC)

	date, err := ParseSwiftShortDate("0102", reference)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseSwiftShortDate("102", reference)
	assert.Error(t, err)
	_, err = ParseSwiftShortDate("1302", reference)
	assert.Error(t, err)
}

func TestFormatSwiftDates(t *testing.T) {
	date := time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "220315", FormatSwiftDate(date))
	assert.Equal(t, "0315", FormatSwiftShortDate(date))
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		raw      string
		expected time.Time
	}{
		{raw: "2022-01-03", expected: time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)},
		{raw: "2022-01-03T10:30:00", expected: time.Date(2022, 1, 3, 10, 30, 0, 0, time.UTC)},
		{raw: "2022-01-03T10:30:00+01:00", expected: time.Date(2022, 1, 3, 10, 30, 0, 0, time.FixedZone("", 3600))},
	}

	for _, tt := range tests {
		date, err := ParseISODate(tt.raw)
		require.NoError(t, err, "raw %q", tt.raw)
		assert.True(t, date.Equal(tt.expected), "raw %q", tt.raw)
	}

	_, err := ParseISODate("03.01.2022")
	assert.Error(t, err)
}

func TestToISODate(t *testing.T) {
	date := time.Date(2022, 1, 3, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2022-01-03", ToISODate(date))
}
