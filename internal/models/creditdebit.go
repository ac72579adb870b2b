package models

import "fmt"

// CreditDebit is the effective direction of a balance or transaction. The
// sign of an amount is always carried here, never by the amount itself.
type CreditDebit string

const (
	// Credit marks an inflow on the account.
	Credit CreditDebit = "C"
	// Debit marks an outflow on the account.
	Debit CreditDebit = "D"
)

// Invert flips the direction.
func (cd CreditDebit) Invert() CreditDebit {
	if cd == Credit {
		return Debit
	}
	return Credit
}

// String returns the single-letter SWIFT form.
func (cd CreditDebit) String() string {
	return string(cd)
}

// ParseMark decodes a SWIFT credit/debit mark (C, D, RC, RD). RC and RD are
// reversal variants: the effective direction is inverted relative to the
// nominal letter and the reversal flag is set.
func ParseMark(mark string) (CreditDebit, bool, error) {
	switch mark {
	case "C":
		return Credit, false, nil
	case "D":
		return Debit, false, nil
	case "RC":
		return Debit, true, nil
	case "RD":
		return Credit, true, nil
	}
	return "", false, fmt.Errorf("invalid credit/debit mark %q", mark)
}

// FormatMark is the exact inverse of ParseMark.
func FormatMark(cd CreditDebit, reversal bool) string {
	if reversal {
		return "R" + cd.Invert().String()
	}
	return cd.String()
}

// ParseIndicator decodes an ISO 20022 credit/debit indicator (CRDT, DBIT).
// When the sibling reversal flag is set the direction is inverted, mirroring
// the SWIFT RC/RD semantics.
func ParseIndicator(indicator string, reversal bool) (CreditDebit, error) {
	var cd CreditDebit
	switch indicator {
	case "CRDT":
		cd = Credit
	case "DBIT":
		cd = Debit
	default:
		return "", fmt.Errorf("invalid credit/debit indicator %q", indicator)
	}
	if reversal {
		cd = cd.Invert()
	}
	return cd, nil
}
