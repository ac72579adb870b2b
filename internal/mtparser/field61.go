// Package mtparser implements the SWIFT MT9xx statement codec: the :61:
// field grammar, balance lines, balance reconciliation and the single-pass
// statement assembler with its serializer.
package mtparser

import (
	"strings"
	"time"

	"finwire/statement-codec/internal/currencyutils"
	"finwire/statement-codec/internal/dateutils"
	"finwire/statement-codec/internal/models"
	"finwire/statement-codec/internal/parsererror"
)

// DecodeTransactionLine decodes the content of one :61: line (tag already
// stripped) against the grammar 6!n[4!n]2a[1!a]15d1!a3!c16x[//16x]:
// valuta date, optional booking date, credit/debit mark, optional funds code,
// decimal-comma amount, kind letter plus 3-character transaction code,
// customer reference and optional bank reference.
//
// A line that does not match the grammar yields no transaction; the caller
// decides whether that aborts the statement parse.
func DecodeTransactionLine(line string) (models.Transaction, error) {
	fail := func(reason string) (models.Transaction, error) {
		return models.Transaction{}, &parsererror.GrammarMismatchError{Tag: "61", Line: line, Reason: reason}
	}

	if len(line) < 12 {
		return fail("line shorter than the minimal field width")
	}

	valuta, err := dateutils.ParseSwiftDate(line[:6])
	if err != nil {
		return fail("invalid valuta date: " + err.Error())
	}
	pos := 6

	// The booking date is MMDD and inherits the valuta year. Its presence is
	// unambiguous: the credit/debit mark that follows is always a letter.
	booking := valuta
	if pos+4 <= len(line) && allDigits(line[pos:pos+4]) {
		booking, err = dateutils.ParseSwiftShortDate(line[pos:pos+4], valuta)
		if err != nil {
			return fail("invalid booking date: " + err.Error())
		}
		pos += 4
	}

	markLen := 1
	if line[pos] == 'R' {
		markLen = 2
	}
	if pos+markLen > len(line) {
		return fail("truncated credit/debit mark")
	}
	creditDebit, reversal, err := models.ParseMark(line[pos : pos+markLen])
	if err != nil {
		return fail(err.Error())
	}
	pos += markLen

	fundsCode := ""
	if pos < len(line) && isUpperAlpha(line[pos]) {
		fundsCode = string(line[pos])
		pos++
	}

	amountStart := pos
	for pos < len(line) && (isDigit(line[pos]) || line[pos] == ',') {
		pos++
	}
	amount, err := currencyutils.ParseSwiftAmount(line[amountStart:pos])
	if err != nil {
		return fail(err.Error())
	}

	if pos+4 > len(line) {
		return fail("missing transaction type")
	}
	kind := string(line[pos])
	if !isUpperAlpha(line[pos]) {
		return fail("transaction kind must be a letter")
	}
	typeCode := line[pos+1 : pos+4]
	if !allAlnum(typeCode) {
		return fail("transaction code must be 3 alphanumeric characters")
	}
	pos += 4

	customerRef := line[pos:]
	bankRef := ""
	if idx := strings.Index(customerRef, "//"); idx >= 0 {
		bankRef = truncate(customerRef[idx+2:], models.MaxReferenceLength)
		customerRef = customerRef[:idx]
	}
	customerRef = truncate(customerRef, models.MaxReferenceLength)
	if customerRef == "" {
		customerRef = models.NoReference
	}

	return models.Transaction{
		BookingDate: booking,
		ValutaDate:  valuta,
		Amount:      amount,
		CreditDebit: creditDebit,
		IsReversal:  reversal,
		FundsCode:   fundsCode,
		Reference: models.Reference{
			Kind:        kind,
			TypeCode:    typeCode,
			CustomerRef: customerRef,
			BankRef:     bankRef,
		},
	}, nil
}

// EncodeTransactionLine reverses DecodeTransactionLine exactly. The booking
// date is emitted only when it differs from the valuta date; references
// longer than the wire limit are truncated.
func EncodeTransactionLine(tx models.Transaction) string {
	var b strings.Builder
	b.WriteString(dateutils.FormatSwiftDate(tx.ValutaDate))
	if !sameDay(tx.BookingDate, tx.ValutaDate) {
		b.WriteString(dateutils.FormatSwiftShortDate(tx.BookingDate))
	}
	b.WriteString(models.FormatMark(tx.CreditDebit, tx.IsReversal))
	b.WriteString(tx.FundsCode)
	b.WriteString(currencyutils.FormatSwiftAmount(tx.Amount))

	kind := tx.Reference.Kind
	if kind == "" {
		kind = "N"
	}
	b.WriteString(kind)
	b.WriteString(tx.Reference.TypeCode)

	customerRef := tx.Reference.CustomerRef
	if customerRef == "" {
		customerRef = models.NoReference
	}
	b.WriteString(truncate(customerRef, models.MaxReferenceLength))
	if tx.Reference.BankRef != "" {
		b.WriteString("//")
		b.WriteString(truncate(tx.Reference.BankRef, models.MaxReferenceLength))
	}
	return b.String()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

func allAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) && !isUpperAlpha(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isUpperAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
