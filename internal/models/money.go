package models

import (
	"fmt"

	"github.com/shopspring/decimal"

	"finwire/statement-codec/internal/currency"
)

// Money is a signed monetary value with its currency. The statement model
// itself keeps amounts non-negative with an explicit CreditDebit; Money is
// the signed form used for balance arithmetic.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Code
}

// NewMoney creates a Money value.
func NewMoney(amount decimal.Decimal, code currency.Code) Money {
	return Money{Amount: amount, Currency: code}
}

// ZeroMoney returns a zero value in the given currency.
func ZeroMoney(code currency.Code) Money {
	return Money{Amount: decimal.Zero, Currency: code}
}

// Add adds another Money value. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot add different currencies: %s and %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub subtracts another Money value. Currencies must match.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot subtract different currencies: %s and %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Neg returns the negated value.
func (m Money) Neg() Money {
	return Money{Amount: m.Amount.Neg(), Currency: m.Currency}
}

// Abs returns the absolute value.
func (m Money) Abs() Money {
	return Money{Amount: m.Amount.Abs(), Currency: m.Currency}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Equal reports whether amount and currency both match.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// String renders the value as "123.45 EUR".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}
