package mtparser

import (
	"strings"

	"finwire/statement-codec/internal/currency"
	"finwire/statement-codec/internal/currencyutils"
	"finwire/statement-codec/internal/dateutils"
	"finwire/statement-codec/internal/models"
	"finwire/statement-codec/internal/parsererror"
)

// balanceTags maps statement tags to the balance type they carry.
var balanceTags = map[string]models.BalanceType{
	"60F": models.BalanceOpening,
	"60M": models.BalanceIntermediateOpening,
	"62F": models.BalanceClosing,
	"62M": models.BalanceIntermediateClosing,
	"64":  models.BalanceAvailable,
	"65":  models.BalanceForwardAvailable,
}

// DecodeBalanceLine decodes the content of a balance line (grammar
// 1!a6!n3!a15d) into a Balance of the type implied by the tag.
func DecodeBalanceLine(tag, line string) (models.Balance, error) {
	fail := func(reason string) (models.Balance, error) {
		return models.Balance{}, &parsererror.GrammarMismatchError{Tag: tag, Line: line, Reason: reason}
	}

	balanceType, ok := balanceTags[tag]
	if !ok {
		return fail("not a balance tag")
	}
	if len(line) < 11 {
		return fail("line shorter than the minimal field width")
	}

	creditDebit, reversal, err := models.ParseMark(string(line[0]))
	if err != nil || reversal {
		return fail("balance mark must be C or D")
	}

	date, err := dateutils.ParseSwiftDate(line[1:7])
	if err != nil {
		return fail("invalid balance date: " + err.Error())
	}

	code, err := currency.Parse(line[7:10])
	if err != nil {
		return fail(err.Error())
	}

	amount, err := currencyutils.ParseSwiftAmount(line[10:])
	if err != nil {
		return fail(err.Error())
	}

	return models.Balance{
		CreditDebit: creditDebit,
		Date:        date,
		Currency:    code,
		Amount:      amount,
		Type:        balanceType,
	}, nil
}

// EncodeBalanceLine renders a balance in wire form, tag excluded.
func EncodeBalanceLine(b models.Balance) string {
	var sb strings.Builder
	sb.WriteString(b.CreditDebit.String())
	sb.WriteString(dateutils.FormatSwiftDate(b.Date))
	sb.WriteString(b.Currency.String())
	sb.WriteString(currencyutils.FormatSwiftAmount(b.Amount))
	return sb.String()
}

// balanceTag returns the statement tag for a balance type.
func balanceTag(t models.BalanceType) string {
	for tag, balanceType := range balanceTags {
		if balanceType == t {
			return tag
		}
	}
	return "62F"
}
