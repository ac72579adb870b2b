package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finwire/statement-codec/internal/currency"
)

// BalanceType tags the role a balance plays within a statement.
type BalanceType string

const (
	BalanceOpening             BalanceType = "opening"
	BalanceIntermediateOpening BalanceType = "intermediate-opening"
	BalanceClosing             BalanceType = "closing"
	BalanceIntermediateClosing BalanceType = "intermediate-closing"
	BalanceAvailable           BalanceType = "available"
	BalanceForwardAvailable    BalanceType = "forward-available"
)

// Balance is one balance endpoint of a statement. Amount is always
// non-negative; the sign is carried by CreditDebit.
type Balance struct {
	CreditDebit CreditDebit
	Date        time.Time
	Currency    currency.Code
	Amount      decimal.Decimal
	Type        BalanceType
}

// Signed returns the balance as a signed Money value: positive for credit,
// negative for debit.
func (b Balance) Signed() Money {
	amount := b.Amount
	if b.CreditDebit == Debit {
		amount = amount.Neg()
	}
	return NewMoney(amount, b.Currency)
}

// Equal reports whether two balances agree in direction, currency and amount.
// Date and type tag are deliberately excluded: reconciliation compares the
// arithmetic endpoints, not their labels.
func (b Balance) Equal(other Balance) bool {
	return b.CreditDebit == other.CreditDebit &&
		b.Currency == other.Currency &&
		b.Amount.Equal(other.Amount)
}

// String renders the balance as "C 2022-01-01 EUR 1000.00".
func (b Balance) String() string {
	return fmt.Sprintf("%s %s %s %s", b.CreditDebit, b.Date.Format("2006-01-02"), b.Currency, b.Amount.StringFixed(2))
}
