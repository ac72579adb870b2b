package models

import (
	"github.com/shopspring/decimal"
)

// TransactionRecord is the flattened CSV row shared by the MT and ISO 20022
// conversion paths. Amounts are unsigned; the direction column carries the
// sign.
type TransactionRecord struct {
	StatementID   string          `csv:"StatementID"`
	AccountID     string          `csv:"AccountID"`
	BookingDate   string          `csv:"BookingDate"`
	ValueDate     string          `csv:"ValueDate"`
	Amount        decimal.Decimal `csv:"Amount"`
	Currency      string          `csv:"Currency"`
	CreditDebit   string          `csv:"CreditDebit"`
	Reversal      bool            `csv:"Reversal"`
	TypeCode      string          `csv:"TypeCode"`
	Reference     string          `csv:"Reference"`
	BankReference string          `csv:"BankReference"`
	Description   string          `csv:"Description"`
}

// DirectionLabel spells a direction for CSV output.
func DirectionLabel(cd CreditDebit) string {
	if cd == Debit {
		return "DBIT"
	}
	return "CRDT"
}
