package models

import (
	"time"

	"github.com/shopspring/decimal"

	"finwire/statement-codec/internal/currency"
)

// MaxReferenceLength is the wire limit for customer and bank references on a
// :61: line. Longer sources are truncated, matching the format's own limit.
const MaxReferenceLength = 16

// MaxSupplementaryLength is the wire limit for the supplementary-details
// subfield of a transaction.
const MaxSupplementaryLength = 34

// NoReference is the placeholder customer reference used when the source
// carries none.
const NoReference = "NONREF"

// StatementHeader carries the identifying fields of a statement block. It is
// created once per parsed block and not modified after assembly.
type StatementHeader struct {
	// AccountID is the account identifier from :25: or :25P:.
	AccountID string
	// ReferenceID is the transaction reference number from :20:.
	ReferenceID string
	// RelatedReference is the optional related reference from :21:.
	RelatedReference string
	// StatementNumber is the statement number from :28C: (or :28:).
	StatementNumber string
	// SequenceNumber is the optional sequence part after the slash in :28C:.
	SequenceNumber string
}

// Reference groups the reference subfields of a :61: line.
type Reference struct {
	// Kind is the single transaction kind letter (N, S or F).
	Kind string
	// TypeCode is the 3-character transaction type code, e.g. "TRF".
	TypeCode string
	// CustomerRef is the customer reference, at most 16 characters. It
	// defaults to NoReference when the source carries none.
	CustomerRef string
	// BankRef is the optional bank reference after "//", at most 16 characters.
	BankRef string
	// BookingKey is an optional single booking-key letter some institutions
	// append after the bank reference.
	BookingKey string
}

// Transaction is one movement on the account. Amount is non-negative; the
// direction lives in CreditDebit and reversals are flagged explicitly.
type Transaction struct {
	BookingDate time.Time
	ValutaDate  time.Time
	Amount      decimal.Decimal
	Currency    currency.Code
	CreditDebit CreditDebit
	IsReversal  bool
	// FundsCode is the optional third letter of the currency code carried on
	// the :61: line.
	FundsCode string
	Reference  Reference
	// Purpose is the free-text purpose from the :86: block, possibly
	// assembled from multiple ?NN segments.
	Purpose string
	// Supplementary holds the optional supplementary-details line, at most 34
	// characters.
	Supplementary string
}

// Statement is the fully assembled aggregate: header, the two mandatory
// balance endpoints, the ordered transaction list and the optional extras.
type Statement struct {
	Header       StatementHeader
	Opening      Balance
	Closing      Balance
	Transactions []Transaction
	// AvailableBalances holds the repeatable :64: balances.
	AvailableBalances []Balance
	// ForwardBalances holds the repeatable :65: balances.
	ForwardBalances []Balance
	// Narrative is the statement-level :86: block that follows the closing
	// balance, as opposed to per-transaction purpose text.
	Narrative string
}

// DateOrderViolations returns the indexes of transactions whose booking date
// is earlier than their predecessor's. An ordered statement returns nil.
func (s *Statement) DateOrderViolations() []int {
	var violations []int
	for i := 1; i < len(s.Transactions); i++ {
		if s.Transactions[i].BookingDate.Before(s.Transactions[i-1].BookingDate) {
			violations = append(violations, i)
		}
	}
	return violations
}
