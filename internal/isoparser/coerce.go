package isoparser

import (
	"fmt"
	"strconv"
	"strings"

	"finwire/statement-codec/internal/currency"
	"finwire/statement-codec/internal/currencyutils"
	"finwire/statement-codec/internal/dateutils"
	"finwire/statement-codec/internal/models"
)

// CoerceKind names the target type of a field coercion. The names are stable
// because YAML mapping files refer to them.
type CoerceKind string

const (
	KindString      CoerceKind = "string"
	KindInt         CoerceKind = "int"
	KindDecimal     CoerceKind = "decimal"
	KindBool        CoerceKind = "bool"
	KindDate        CoerceKind = "date"
	KindDateTime    CoerceKind = "datetime"
	KindCurrency    CoerceKind = "currency"
	KindCreditDebit CoerceKind = "creditdebit"
)

// Coerce converts the raw string extracted from the document into the typed
// value for the given kind. Unknown currency codes and unparseable values
// are coercion failures.
func Coerce(kind CoerceKind, raw string) (interface{}, error) {
	switch kind {
	case KindString, "":
		return raw, nil
	case KindInt:
		value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer")
		}
		return value, nil
	case KindDecimal:
		return currencyutils.ParseISOAmount(raw)
	case KindBool:
		return CoerceBool(raw)
	case KindDate, KindDateTime:
		return dateutils.ParseISODate(raw)
	case KindCurrency:
		return currency.Parse(raw)
	case KindCreditDebit:
		return models.ParseIndicator(strings.TrimSpace(raw), false)
	}
	return nil, fmt.Errorf("unknown coercion kind %q", kind)
}

// CoerceBool parses the boolean spellings ISO 20022 exports use.
func CoerceBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean value")
}

// CoerceCreditDebit parses a CRDT/DBIT indicator with the reversal-aware
// sign flip: a set reversal flag inverts the direction.
func CoerceCreditDebit(raw string, reversal bool) (models.CreditDebit, error) {
	return models.ParseIndicator(strings.TrimSpace(raw), reversal)
}

// ParseCoerceKind validates a kind name from a YAML mapping file.
func ParseCoerceKind(name string) (CoerceKind, error) {
	switch CoerceKind(name) {
	case KindString, KindInt, KindDecimal, KindBool, KindDate, KindDateTime, KindCurrency, KindCreditDebit:
		return CoerceKind(name), nil
	case "":
		return KindString, nil
	}
	return "", fmt.Errorf("unknown coercion kind %q", name)
}
