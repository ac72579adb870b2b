// Package dateutils provides the date handling shared by the SWIFT and ISO
// 20022 codecs.
package dateutils

import (
	"fmt"
	"time"
)

// Date layouts used on the two wire formats.
const (
	// SwiftDateLayout is the YYMMDD form used by :61: and balance lines.
	SwiftDateLayout = "060102"
	// ISODateLayout is the plain ISO 20022 date.
	ISODateLayout = "2006-01-02"
)

// isoDateTimeLayouts are the ISO 20022 date-time forms tried in order.
var isoDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	ISODateLayout,
}

// ParseSwiftDate parses a YYMMDD date. The Go two-digit-year pivot applies:
// 00-68 map to 20xx, 69-99 to 19xx.
func ParseSwiftDate(raw string) (time.Time, error) {
	if len(raw) != 6 {
		return time.Time{}, fmt.Errorf("SWIFT date must be 6 digits, got %q", raw)
	}
	t, err := time.Parse(SwiftDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid SWIFT date %q: %w", raw, err)
	}
	return t, nil
}

// ParseSwiftShortDate parses an MMDD date that inherits its year from a
// reference date, as the booking-date subfield of :61: does.
func ParseSwiftShortDate(raw string, reference time.Time) (time.Time, error) {
	if len(raw) != 4 {
		return time.Time{}, fmt.Errorf("SWIFT short date must be 4 digits, got %q", raw)
	}
	t, err := time.Parse("0102", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid SWIFT short date %q: %w", raw, err)
	}
	return time.Date(reference.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatSwiftDate renders a date in YYMMDD form.
func FormatSwiftDate(t time.Time) string {
	return t.Format(SwiftDateLayout)
}

// FormatSwiftShortDate renders a date in MMDD form.
func FormatSwiftShortDate(t time.Time) string {
	return t.Format("0102")
}

// ParseISODate parses an ISO 20022 date or date-time, accepting the layouts
// that appear across schema versions (Dt vs DtTm elements).
func ParseISODate(raw string) (time.Time, error) {
	for _, layout := range isoDateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q", raw)
}

// ToISODate renders a date as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}
