package mtparser

import (
	"time"

	"finwire/statement-codec/internal/models"
	"finwire/statement-codec/internal/parsererror"
)

// BalancePolicy selects how a declared closing balance is checked against the
// computed one.
type BalancePolicy string

const (
	// BalanceStrict raises a BalanceMismatchError when the declared and the
	// computed balance disagree. This is the default.
	BalanceStrict BalancePolicy = "strict"
	// BalanceLenient skips verification. Real-world statements often carry
	// rounding, retained fees or pending items not itemized in the
	// transaction list.
	BalanceLenient BalancePolicy = "lenient"
)

// Reconcile derives the closing balance from an opening balance and the
// transaction list: a signed running total starting at the opening balance,
// credits added, debits subtracted. The result is deterministic for the same
// inputs.
func Reconcile(opening models.Balance, transactions []models.Transaction) (models.Balance, error) {
	total := opening.Signed()

	for _, tx := range transactions {
		amount := models.NewMoney(tx.Amount, opening.Currency)
		var err error
		if tx.CreditDebit == models.Credit {
			total, err = total.Add(amount)
		} else {
			total, err = total.Sub(amount)
		}
		if err != nil {
			return models.Balance{}, err
		}
	}

	date := opening.Date
	if n := len(transactions); n > 0 {
		date = transactions[n-1].BookingDate
	}

	balanceType := models.BalanceClosing
	if opening.Type == models.BalanceIntermediateOpening {
		balanceType = models.BalanceIntermediateClosing
	}
	return balanceFromTotal(total, date, balanceType), nil
}

// Reverse derives the opening balance from a closing balance and the
// transaction list, used when only the closing endpoint is supplied. It runs
// the reconciliation loop with the signs flipped.
func Reverse(closing models.Balance, transactions []models.Transaction) (models.Balance, error) {
	total := closing.Signed()

	for _, tx := range transactions {
		amount := models.NewMoney(tx.Amount, closing.Currency)
		var err error
		if tx.CreditDebit == models.Credit {
			total, err = total.Sub(amount)
		} else {
			total, err = total.Add(amount)
		}
		if err != nil {
			return models.Balance{}, err
		}
	}

	date := closing.Date
	if len(transactions) > 0 {
		date = transactions[0].BookingDate
	}

	balanceType := models.BalanceOpening
	if closing.Type == models.BalanceIntermediateClosing {
		balanceType = models.BalanceIntermediateOpening
	}
	return balanceFromTotal(total, date, balanceType), nil
}

// ValidateClosing checks a declared closing balance against the one computed
// from the opening balance and the transactions, honoring the policy.
func ValidateClosing(opening, declared models.Balance, transactions []models.Transaction, policy BalancePolicy) error {
	if policy == BalanceLenient {
		return nil
	}
	computed, err := Reconcile(opening, transactions)
	if err != nil {
		return err
	}
	if !computed.Equal(declared) {
		return &parsererror.BalanceMismatchError{
			Declared: declared.String(),
			Computed: computed.String(),
		}
	}
	return nil
}

func balanceFromTotal(total models.Money, date time.Time, balanceType models.BalanceType) models.Balance {
	direction := models.Credit
	if total.IsNegative() {
		direction = models.Debit
	}
	return models.Balance{
		CreditDebit: direction,
		Date:        date,
		Currency:    total.Currency,
		Amount:      total.Amount.Abs(),
		Type:        balanceType,
	}
}
