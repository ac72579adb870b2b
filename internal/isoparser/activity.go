package isoparser

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finwire/statement-codec/internal/currency"
	"finwire/statement-codec/internal/models"
	"finwire/statement-codec/internal/parsererror"
)

var errRequiredMissing = errors.New("required parameter not found")

// ActivityEntry is one booked movement inside a statement, report or
// notification message.
type ActivityEntry struct {
	Amount      decimal.Decimal
	Currency    currency.Code
	CreditDebit models.CreditDebit
	IsReversal  bool
	BookingDate time.Time
	ValueDate   time.Time
	Reference   string
	Status      string
	Info        string
}

// ActivityBalance is one reported balance, tagged with its ISO balance code
// (OPBD, CLBD, CLAV, FWAV, ...).
type ActivityBalance struct {
	Code        string
	Amount      decimal.Decimal
	Currency    currency.Code
	CreditDebit models.CreditDebit
	Date        time.Time
}

// AccountActivity is the shared shape of the camt.052/053/054 families:
// account movements with balances. The concrete message types embed it and
// contribute only their type id.
type AccountActivity struct {
	MessageID      string
	Identification string
	CreatedAt      time.Time
	SequenceNumber int64
	AccountID      string
	Currency       currency.Code
	Balances       []ActivityBalance
	Entries        []ActivityEntry
}

// Apply sets one mapped parameter.
func (d *AccountActivity) Apply(field string, value interface{}) error {
	switch field {
	case "messageId":
		return setString(&d.MessageID, value)
	case "identification":
		return setString(&d.Identification, value)
	case "createdAt":
		return setTime(&d.CreatedAt, value)
	case "sequenceNumber":
		return setInt(&d.SequenceNumber, value)
	case "accountId":
		return setString(&d.AccountID, value)
	case "currency":
		return setCurrency(&d.Currency, value)
	}
	return fmt.Errorf("unknown parameter %s", field)
}

// Validate requires the message identification that every camt activity
// message carries.
func (d *AccountActivity) Validate() error {
	if d.Identification == "" {
		return fmt.Errorf("activity message requires a non-empty identification")
	}
	return nil
}

func (d *AccountActivity) appendBalance(balance ActivityBalance) {
	d.Balances = append(d.Balances, balance)
}

func (d *AccountActivity) appendEntry(entry ActivityEntry) {
	d.Entries = append(d.Entries, entry)
}

// AccountStatement is a camt.053 bank-to-customer statement.
type AccountStatement struct {
	AccountActivity
}

// TypeID identifies the message family.
func (d *AccountStatement) TypeID() string { return "camt.053" }

// AccountReport is a camt.052 bank-to-customer account report.
type AccountReport struct {
	AccountActivity
}

// TypeID identifies the message family.
func (d *AccountReport) TypeID() string { return "camt.052" }

// DebitCreditNotification is a camt.054 debit/credit notification.
type DebitCreditNotification struct {
	AccountActivity
}

// TypeID identifies the message family.
func (d *DebitCreditNotification) TypeID() string { return "camt.054" }

// activityAppender is what the activity post-processor needs from its target.
type activityAppender interface {
	Document
	appendBalance(ActivityBalance)
	appendEntry(ActivityEntry)
}

// activityPost populates the repeated Bal and Ntry collections that do not
// fit the flat field table.
func activityPost(doc Document, ctx *Context) error {
	target, ok := doc.(activityAppender)
	if !ok {
		return nil
	}

	for _, node := range ctx.Nodes("Bal") {
		sub := ctx.Sub(node)
		balance, err := mapActivityBalance(doc.TypeID(), sub)
		if err != nil {
			return err
		}
		target.appendBalance(balance)
	}

	for _, node := range ctx.Nodes("Ntry") {
		sub := ctx.Sub(node)
		entry, err := mapActivityEntry(doc.TypeID(), sub)
		if err != nil {
			return err
		}
		target.appendEntry(entry)
	}
	return nil
}

func mapActivityBalance(typeID string, ctx *Context) (ActivityBalance, error) {
	var balance ActivityBalance
	balance.Code, _ = ctx.First("Tp/CdOrPrtry/Cd", "Tp/Cd")

	raw, ok := ctx.String("Amt")
	if !ok {
		return balance, mappingError(typeID, "balance.amount", "", errRequiredMissing)
	}
	amount, err := Coerce(KindDecimal, raw)
	if err != nil {
		return balance, mappingError(typeID, "balance.amount", raw, err)
	}
	balance.Amount = amount.(decimal.Decimal)

	if raw, ok := ctx.String("Amt/@Ccy"); ok {
		code, err := currency.Parse(raw)
		if err != nil {
			return balance, mappingError(typeID, "balance.currency", raw, err)
		}
		balance.Currency = code
	}

	if raw, ok := ctx.String("CdtDbtInd"); ok {
		direction, err := CoerceCreditDebit(raw, false)
		if err != nil {
			return balance, mappingError(typeID, "balance.creditDebit", raw, err)
		}
		balance.CreditDebit = direction
	}

	if raw, ok := ctx.First("Dt/Dt", "Dt/DtTm"); ok {
		date, err := Coerce(KindDate, raw)
		if err != nil {
			return balance, mappingError(typeID, "balance.date", raw, err)
		}
		balance.Date = date.(time.Time)
	}
	return balance, nil
}

func mapActivityEntry(typeID string, ctx *Context) (ActivityEntry, error) {
	var entry ActivityEntry

	raw, ok := ctx.String("Amt")
	if !ok {
		return entry, mappingError(typeID, "entry.amount", "", errRequiredMissing)
	}
	amount, err := Coerce(KindDecimal, raw)
	if err != nil {
		return entry, mappingError(typeID, "entry.amount", raw, err)
	}
	entry.Amount = amount.(decimal.Decimal)

	if raw, ok := ctx.String("Amt/@Ccy"); ok {
		code, err := currency.Parse(raw)
		if err != nil {
			return entry, mappingError(typeID, "entry.currency", raw, err)
		}
		entry.Currency = code
	}

	if raw, ok := ctx.String("RvslInd"); ok {
		reversal, err := CoerceBool(raw)
		if err != nil {
			return entry, mappingError(typeID, "entry.reversal", raw, err)
		}
		entry.IsReversal = reversal
	}

	if raw, ok := ctx.String("CdtDbtInd"); ok {
		direction, err := CoerceCreditDebit(raw, entry.IsReversal)
		if err != nil {
			return entry, mappingError(typeID, "entry.creditDebit", raw, err)
		}
		entry.CreditDebit = direction
	}

	if raw, ok := ctx.First("BookgDt/Dt", "BookgDt/DtTm"); ok {
		date, err := Coerce(KindDate, raw)
		if err != nil {
			return entry, mappingError(typeID, "entry.bookingDate", raw, err)
		}
		entry.BookingDate = date.(time.Time)
	}

	if raw, ok := ctx.First("ValDt/Dt", "ValDt/DtTm"); ok {
		date, err := Coerce(KindDate, raw)
		if err != nil {
			return entry, mappingError(typeID, "entry.valueDate", raw, err)
		}
		entry.ValueDate = date.(time.Time)
	} else {
		entry.ValueDate = entry.BookingDate
	}

	entry.Reference, _ = ctx.First(
		"NtryDtls/TxDtls/Refs/EndToEndId",
		"NtryDtls/TxDtls/Refs/TxId",
		"AcctSvcrRef",
		"NtryRef",
	)
	entry.Status, _ = ctx.First("Sts/Cd", "Sts")
	entry.Info, _ = ctx.First("NtryDtls/TxDtls/RmtInf/Ustrd", "AddtlNtryInf")
	return entry, nil
}

func mappingError(typeID, parameter, value string, err error) error {
	return &parsererror.DocumentMappingError{
		Type:      typeID,
		Parameter: parameter,
		Value:     value,
		Err:       err,
	}
}
