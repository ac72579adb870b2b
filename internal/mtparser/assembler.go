package mtparser

import (
	"strconv"
	"strings"

	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/models"
	"finwire/statement-codec/internal/parsererror"
)

// GrammarPolicy selects how the assembler reacts to a malformed :61: or
// balance line.
type GrammarPolicy string

const (
	// GrammarStrict aborts the whole statement parse on the first malformed
	// line. This is the default.
	GrammarStrict GrammarPolicy = "strict"
	// GrammarLenient drops the malformed line, records a warning and
	// continues. A transaction dropped this way takes its supplementary and
	// :86: lines with it.
	GrammarLenient GrammarPolicy = "lenient"
)

// Warning is a recoverable condition surfaced by a lenient parse or by an
// invariant check that is reportable but not fatal.
type Warning struct {
	Tag    string
	Line   string
	Reason string
}

func (w Warning) String() string {
	if w.Line == "" {
		return w.Reason
	}
	return w.Reason + " (line: " + w.Line + ")"
}

// Assembler is the single-pass scanner over an MT9xx statement block. It
// drives the field codecs and the balance reconciler and produces the
// Statement aggregate.
type Assembler struct {
	// GrammarPolicy controls malformed-line handling; default strict.
	GrammarPolicy GrammarPolicy
	// BalancePolicy controls closing-balance verification; default strict.
	BalancePolicy BalancePolicy

	log logging.Logger
}

// NewAssembler creates an Assembler with strict grammar and balance policies.
func NewAssembler(logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Assembler{
		GrammarPolicy: GrammarStrict,
		BalancePolicy: BalanceStrict,
		log:           logger,
	}
}

// parseRun holds the mutable state of one Parse call.
type parseRun struct {
	stmt     models.Statement
	warnings []Warning

	hasAccount bool
	hasOpening bool
	hasClosing bool

	// pending transaction state
	tx           *models.Transaction
	txDropped    bool
	suppDone     bool
	purposeLines []string

	// statement-level narrative state
	narrativeLines []string
	inNarrative    bool

	// target for continuation lines of header free-text fields
	lastFree *string
}

// Parse scans a statement block and assembles the Statement. Recoverable
// conditions are returned as warnings; structural failures abort with an
// error and no statement. If the input carries a SWIFT envelope, only the
// text block ({4:...-}) is considered.
func (a *Assembler) Parse(text string) (*models.Statement, []Warning, error) {
	run := &parseRun{}

	for _, line := range strings.Split(ExtractTextBlock(text), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if line == "-" || line == "-}" {
			break
		}

		tag, value, isTag := splitTag(line)
		if !isTag {
			run.continuation(line)
			continue
		}
		if err := a.handleTag(run, tag, value, line); err != nil {
			return nil, nil, err
		}
	}
	run.finalizeTx()
	run.finalizeNarrative()

	if err := a.checkMandatory(run); err != nil {
		return nil, nil, err
	}

	for i := range run.stmt.Transactions {
		run.stmt.Transactions[i].Currency = run.stmt.Opening.Currency
	}

	for _, idx := range run.stmt.DateOrderViolations() {
		run.warn(Warning{Tag: "61", Reason: "booking dates not in non-decreasing order at transaction " + strconv.Itoa(idx)})
	}

	if err := ValidateClosing(run.stmt.Opening, run.stmt.Closing, run.stmt.Transactions, a.BalancePolicy); err != nil {
		return nil, nil, err
	}

	a.log.Info("assembled statement",
		logging.F(logging.FieldAccount, run.stmt.Header.AccountID),
		logging.F(logging.FieldCount, len(run.stmt.Transactions)))
	return &run.stmt, run.warnings, nil
}

// handleTag dispatches one recognized tag line.
func (a *Assembler) handleTag(run *parseRun, tag, value, line string) error {
	switch tag {
	case "20":
		run.stmt.Header.ReferenceID = value
		run.lastFree = &run.stmt.Header.ReferenceID
	case "21":
		run.stmt.Header.RelatedReference = value
		run.lastFree = &run.stmt.Header.RelatedReference
	case "25", "25P":
		run.stmt.Header.AccountID = value
		run.hasAccount = true
		run.lastFree = &run.stmt.Header.AccountID
	case "28", "28C":
		number, sequence := splitStatementNumber(value)
		run.stmt.Header.StatementNumber = number
		run.stmt.Header.SequenceNumber = sequence
		run.lastFree = nil
	case "60F", "60M":
		run.finalizeTx()
		balance, err := DecodeBalanceLine(tag, value)
		if err != nil {
			return a.grammarFailure(run, tag, line, err)
		}
		run.stmt.Opening = balance
		run.hasOpening = true
	case "62F", "62M":
		run.finalizeTx()
		balance, err := DecodeBalanceLine(tag, value)
		if err != nil {
			return a.grammarFailure(run, tag, line, err)
		}
		run.stmt.Closing = balance
		run.hasClosing = true
	case "64":
		run.finalizeTx()
		balance, err := DecodeBalanceLine(tag, value)
		if err != nil {
			return a.grammarFailure(run, tag, line, err)
		}
		run.stmt.AvailableBalances = append(run.stmt.AvailableBalances, balance)
	case "65":
		run.finalizeTx()
		balance, err := DecodeBalanceLine(tag, value)
		if err != nil {
			return a.grammarFailure(run, tag, line, err)
		}
		run.stmt.ForwardBalances = append(run.stmt.ForwardBalances, balance)
	case "61":
		run.finalizeTx()
		tx, err := DecodeTransactionLine(value)
		if err != nil {
			if ferr := a.grammarFailure(run, tag, line, err); ferr != nil {
				return ferr
			}
			run.txDropped = true
			return nil
		}
		run.tx = &tx
		run.suppDone = false
		a.log.Debug("decoded transaction line", logging.F(logging.FieldTag, tag))
	case "86":
		// Position decides ownership: a :86: with an open transaction is that
		// transaction's purpose, anything else is statement-level narrative.
		switch {
		case run.tx != nil:
			run.purposeLines = append(run.purposeLines, value)
			run.suppDone = true
		case run.txDropped:
			// the block belongs to a dropped transaction
		default:
			run.narrativeLines = append(run.narrativeLines, value)
			run.inNarrative = true
		}
	default:
		// Unrecognized tags are continuations of the preceding free text.
		run.continuation(line)
	}
	return nil
}

// grammarFailure applies the configured policy to a malformed line: strict
// returns the error, lenient records a warning and returns nil.
func (a *Assembler) grammarFailure(run *parseRun, tag, line string, err error) error {
	if a.GrammarPolicy == GrammarStrict {
		return err
	}
	a.log.WithError(err).Warn("dropping malformed line",
		logging.F(logging.FieldTag, tag),
		logging.F(logging.FieldPolicy, string(GrammarLenient)))
	run.warn(Warning{Tag: tag, Line: line, Reason: err.Error()})
	return nil
}

func (a *Assembler) checkMandatory(run *parseRun) error {
	if !run.hasAccount || run.stmt.Header.AccountID == "" {
		return &parsererror.MissingRequiredFieldError{Field: "account identification (:25:)"}
	}
	if !run.hasOpening {
		return &parsererror.MissingRequiredFieldError{Field: "opening balance (:60F:)"}
	}
	if !run.hasClosing {
		return &parsererror.MissingRequiredFieldError{Field: "closing balance (:62F:)"}
	}
	return nil
}

// continuation routes a non-tag line to whichever free-text field is open.
func (run *parseRun) continuation(line string) {
	switch {
	case run.tx != nil && !run.suppDone && len(run.purposeLines) == 0:
		run.tx.Supplementary = truncate(line, models.MaxSupplementaryLength)
		run.suppDone = true
	case run.tx != nil && len(run.purposeLines) > 0:
		run.purposeLines = append(run.purposeLines, line)
	case run.txDropped:
		// swallow lines belonging to a dropped transaction
	case run.inNarrative:
		run.narrativeLines = append(run.narrativeLines, line)
	case run.lastFree != nil:
		*run.lastFree += "\n" + line
	default:
		run.warn(Warning{Line: line, Reason: "continuation line with no preceding field"})
	}
}

// finalizeTx closes the pending transaction, decoding its purpose block.
func (run *parseRun) finalizeTx() {
	if run.tx != nil {
		purpose, bookingKey := DecodePurpose(run.purposeLines)
		run.tx.Purpose = purpose
		run.tx.Reference.BookingKey = bookingKey
		run.stmt.Transactions = append(run.stmt.Transactions, *run.tx)
	}
	run.tx = nil
	run.txDropped = false
	run.suppDone = false
	run.purposeLines = nil
}

func (run *parseRun) finalizeNarrative() {
	if len(run.narrativeLines) == 0 {
		return
	}
	narrative, _ := DecodePurpose(run.narrativeLines)
	run.stmt.Narrative = narrative
}

func (run *parseRun) warn(w Warning) {
	run.warnings = append(run.warnings, w)
}

// ExtractTextBlock returns the content of the SWIFT text block ({4:...-})
// when the input carries a network envelope, and the input unchanged
// otherwise. Full envelope handling (blocks 1/2/3/5) is out of scope.
func ExtractTextBlock(raw string) string {
	start := strings.Index(raw, "{4:")
	if start < 0 {
		return raw
	}
	body := raw[start+len("{4:"):]
	if end := strings.Index(body, "-}"); end >= 0 {
		body = body[:end]
	}
	return body
}

// splitTag splits a ":NN:value" line into tag and value. Lines that do not
// carry a colon-delimited tag report false.
func splitTag(line string) (tag, value string, ok bool) {
	if len(line) < 3 || line[0] != ':' {
		return "", "", false
	}
	end := strings.IndexByte(line[1:], ':')
	if end <= 0 {
		return "", "", false
	}
	return line[1 : end+1], line[end+2:], true
}

// splitStatementNumber splits a :28C: value into statement and sequence
// number.
func splitStatementNumber(value string) (number, sequence string) {
	if idx := strings.IndexByte(value, '/'); idx >= 0 {
		return value[:idx], value[idx+1:]
	}
	return value, ""
}
