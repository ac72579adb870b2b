package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBalanceSigned(t *testing.T) {
	credit := Balance{CreditDebit: Credit, Currency: "EUR", Amount: decimal.RequireFromString("100.50")}
	assert.Equal(t, "100.5", credit.Signed().Amount.String())

	debit := Balance{CreditDebit: Debit, Currency: "EUR", Amount: decimal.RequireFromString("100.50")}
	assert.True(t, debit.Signed().IsNegative())
}

func TestBalanceEqualIgnoresDateAndType(t *testing.T) {
	a := Balance{
		CreditDebit: Credit,
		Date:        time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Currency:    "EUR",
		Amount:      decimal.RequireFromString("100"),
		Type:        BalanceOpening,
	}
	b := a
	b.Date = b.Date.AddDate(0, 0, 5)
	b.Type = BalanceClosing
	assert.True(t, a.Equal(b))

	b.CreditDebit = Debit
	assert.False(t, a.Equal(b))

	c := a
	c.Currency = "CHF"
	assert.False(t, a.Equal(c))
}

func TestBalanceString(t *testing.T) {
	b := Balance{
		CreditDebit: Credit,
		Date:        time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Currency:    "EUR",
		Amount:      decimal.RequireFromString("1000"),
	}
	assert.Equal(t, "C 2022-01-01 EUR 1000.00", b.String())
}

func TestDateOrderViolations(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2022, 1, d, 0, 0, 0, 0, time.UTC) }

	ordered := Statement{Transactions: []Transaction{
		{BookingDate: day(1)}, {BookingDate: day(1)}, {BookingDate: day(3)},
	}}
	assert.Nil(t, ordered.DateOrderViolations())

	unordered := Statement{Transactions: []Transaction{
		{BookingDate: day(3)}, {BookingDate: day(1)}, {BookingDate: day(2)}, {BookingDate: day(1)},
	}}
	assert.Equal(t, []int{1, 3}, unordered.DateOrderViolations())
}
