package mtparser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"finwire/statement-codec/internal/dateutils"
	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/models"
	"finwire/statement-codec/internal/parser"
)

// Adapter implements parser.Parser for MT9xx statement text.
type Adapter struct {
	parser.BaseParser
	assembler *Assembler
}

// NewAdapter creates an MT adapter with default strict policies.
func NewAdapter(logger logging.Logger) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(logger),
		assembler:  NewAssembler(logger),
	}
}

// Assembler exposes the underlying assembler so callers can adjust the
// grammar and balance policies before parsing.
func (a *Adapter) Assembler() *Assembler {
	return a.assembler
}

// Parse reads one MT statement and flattens it to transaction records.
func (a *Adapter) Parse(r io.Reader) ([]models.TransactionRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	stmt, warnings, err := a.assembler.Parse(string(data))
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		a.Logger().Warn(w.Reason,
			logging.F(logging.FieldTag, w.Tag),
			logging.F(logging.FieldLine, w.Line))
	}
	return StatementRecords(stmt), nil
}

// ValidateFormat checks the file head for MT tag structure.
func (a *Adapter) ValidateFormat(file string) (bool, error) {
	f, err := os.Open(file)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			a.Logger().WithError(err).Warn("Failed to close file")
		}
	}()

	buffer := make([]byte, 4096)
	n, err := f.Read(buffer)
	if err != nil && err != io.EOF {
		return false, err
	}
	head := string(buffer[:n])
	return strings.Contains(head, ":20:") || strings.Contains(head, "{4:"), nil
}

// ConvertToCSV parses the input file and writes the records as CSV.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	return parser.ConvertFile(a, inputFile, outputFile, a.Logger())
}

// StatementRecords flattens a parsed statement into CSV rows.
func StatementRecords(stmt *models.Statement) []models.TransactionRecord {
	records := make([]models.TransactionRecord, 0, len(stmt.Transactions))
	for _, tx := range stmt.Transactions {
		record := models.TransactionRecord{
			StatementID:   stmt.Header.ReferenceID,
			AccountID:     stmt.Header.AccountID,
			BookingDate:   tx.BookingDate.Format(dateutils.ISODateLayout),
			ValueDate:     tx.ValutaDate.Format(dateutils.ISODateLayout),
			Amount:        tx.Amount,
			Currency:      string(tx.Currency),
			CreditDebit:   models.DirectionLabel(tx.CreditDebit),
			Reversal:      tx.IsReversal,
			TypeCode:      tx.Reference.Kind + tx.Reference.TypeCode,
			Reference:     tx.Reference.CustomerRef,
			BankReference: tx.Reference.BankRef,
			Description:   strings.ReplaceAll(tx.Purpose, "\n", " "),
		}
		records = append(records, record)
	}
	return records
}
