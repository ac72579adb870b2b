package mtparser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finwire/statement-codec/internal/models"
	"finwire/statement-codec/internal/parsererror"
)

func openingBalance(direction models.CreditDebit, amount string) models.Balance {
	return models.Balance{
		CreditDebit: direction,
		Date:        time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Currency:    "EUR",
		Amount:      decimal.RequireFromString(amount),
		Type:        models.BalanceOpening,
	}
}

func transaction(direction models.CreditDebit, amount string, day int) models.Transaction {
	return models.Transaction{
		BookingDate: time.Date(2022, 1, day, 0, 0, 0, 0, time.UTC),
		ValutaDate:  time.Date(2022, 1, day, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString(amount),
		Currency:    "EUR",
		CreditDebit: direction,
	}
}

func TestReconcile(t *testing.T) {
	opening := openingBalance(models.Credit, "1000")
	transactions := []models.Transaction{
		transaction(models.Debit, "50.25", 2),
		transaction(models.Credit, "200", 3),
	}

	closing, err := Reconcile(opening, transactions)
	require.NoError(t, err)

	assert.Equal(t, models.Credit, closing.CreditDebit)
	assert.Equal(t, "1149.75", closing.Amount.String())
	assert.Equal(t, models.BalanceClosing, closing.Type)
	assert.Equal(t, time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC), closing.Date)
}

func TestReconcileCrossesZero(t *testing.T) {
	opening := openingBalance(models.Credit, "100")
	transactions := []models.Transaction{transaction(models.Debit, "150", 2)}

	closing, err := Reconcile(opening, transactions)
	require.NoError(t, err)

	assert.Equal(t, models.Debit, closing.CreditDebit)
	assert.Equal(t, "50", closing.Amount.String())
}

func TestReconcileDebitOpening(t *testing.T) {
	opening := openingBalance(models.Debit, "100")
	transactions := []models.Transaction{transaction(models.Credit, "100", 2)}

	closing, err := Reconcile(opening, transactions)
	require.NoError(t, err)

	// a zero total is reported as credit
	assert.Equal(t, models.Credit, closing.CreditDebit)
	assert.True(t, closing.Amount.IsZero())
}

func TestReconcileEmptyTransactionList(t *testing.T) {
	opening := openingBalance(models.Credit, "1000")

	closing, err := Reconcile(opening, nil)
	require.NoError(t, err)

	assert.True(t, closing.Equal(models.Balance{
		CreditDebit: models.Credit,
		Currency:    "EUR",
		Amount:      decimal.RequireFromString("1000"),
	}))
	assert.Equal(t, opening.Date, closing.Date)
}

func TestReconcileIntermediateTypePropagates(t *testing.T) {
	opening := openingBalance(models.Credit, "10")
	opening.Type = models.BalanceIntermediateOpening

	closing, err := Reconcile(opening, nil)
	require.NoError(t, err)
	assert.Equal(t, models.BalanceIntermediateClosing, closing.Type)
}

func TestReverseInvertsReconcile(t *testing.T) {
	opening := openingBalance(models.Credit, "1000")
	transactions := []models.Transaction{
		transaction(models.Debit, "50.25", 2),
		transaction(models.Credit, "200", 3),
	}

	closing, err := Reconcile(opening, transactions)
	require.NoError(t, err)

	derived, err := Reverse(closing, transactions)
	require.NoError(t, err)
	assert.True(t, derived.Equal(opening))
	assert.Equal(t, models.BalanceOpening, derived.Type)
}

func TestValidateClosing(t *testing.T) {
	opening := openingBalance(models.Credit, "1000")
	transactions := []models.Transaction{transaction(models.Debit, "100", 2)}

	declared := openingBalance(models.Credit, "900")
	declared.Type = models.BalanceClosing
	assert.NoError(t, ValidateClosing(opening, declared, transactions, BalanceStrict))

	wrong := openingBalance(models.Credit, "950")
	wrong.Type = models.BalanceClosing
	err := ValidateClosing(opening, wrong, transactions, BalanceStrict)
	require.Error(t, err)

	var mismatch *parsererror.BalanceMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, mismatch.Declared, "950")
	assert.Contains(t, mismatch.Computed, "900")

	assert.NoError(t, ValidateClosing(opening, wrong, transactions, BalanceLenient))
}
