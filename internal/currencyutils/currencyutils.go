// Package currencyutils provides amount parsing and formatting for the two
// wire formats: SWIFT decimal-comma amounts and ISO 20022 decimal strings.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxSwiftAmountLength is the 15d width of a SWIFT amount subfield,
// separator included.
const maxSwiftAmountLength = 15

// ParseSwiftAmount parses a SWIFT amount: digits with a comma as decimal
// separator. Fractional digits are optional, so "100," means 100.00. The
// value is always non-negative; sign is carried by the credit/debit mark.
func ParseSwiftAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	if len(raw) > maxSwiftAmountLength {
		return decimal.Zero, fmt.Errorf("amount %q exceeds %d characters", raw, maxSwiftAmountLength)
	}

	commas := strings.Count(raw, ",")
	if commas != 1 {
		return decimal.Zero, fmt.Errorf("amount %q must contain exactly one decimal comma", raw)
	}
	for _, r := range raw {
		if r != ',' && (r < '0' || r > '9') {
			return decimal.Zero, fmt.Errorf("amount %q contains invalid character %q", raw, r)
		}
	}

	normalized := strings.TrimSuffix(strings.ReplaceAll(raw, ",", "."), ".")
	if normalized == "" {
		return decimal.Zero, fmt.Errorf("amount %q has no digits", raw)
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", raw, err)
	}
	return amount, nil
}

// FormatSwiftAmount renders a decimal in SWIFT wire form: comma separator,
// no thousands grouping, the comma always present even for whole amounts.
// The decimal's own scale decides the fractional digits, so an amount parsed
// from "1000,00" keeps its trailing zeros on the way back out.
func FormatSwiftAmount(amount decimal.Decimal) string {
	abs := amount.Abs()
	s := abs.String()
	if exp := abs.Exponent(); exp < 0 {
		s = abs.StringFixed(-exp)
	}
	s = strings.ReplaceAll(s, ".", ",")
	if !strings.Contains(s, ",") {
		s += ","
	}
	return s
}

// ParseISOAmount parses an ISO 20022 amount string. The schema uses a dot
// separator, but real exports occasionally ship a comma; both are accepted.
func ParseISOAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	s = strings.ReplaceAll(s, ",", ".")
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", raw, err)
	}
	return amount, nil
}
