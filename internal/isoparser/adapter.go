package isoparser

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

// Adapter implements parser.Parser for ISO 20022 XML messages.
type Adapter struct {
	parser.BaseParser
	mapper *Mapper
}

// NewAdapter creates an ISO adapter over a registry. A nil registry uses the
// built-in registrations.
func NewAdapter(registry *Registry, logger logging.Logger) *Adapter {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Adapter{
		BaseParser: parser.NewBaseParser(logger),
		mapper:     NewMapper(registry, logger),
	}
}

// Mapper exposes the underlying mapper for direct document decoding.
func (a *Adapter) Mapper() *Mapper {
	return a.mapper
}

// Parse decodes one ISO 20022 message and flattens it to transaction
// records. Message types without booked entries produce no records.
func (a *Adapter) Parse(r io.Reader) ([]models.TransactionRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	doc, err := a.mapper.Decode(data)
	if err != nil {
		return nil, err
	}
	a.Logger().Info("Decoded ISO 20022 document",
		logging.F(logging.FieldMessage, doc.TypeID()))

	records := DocumentRecords(doc)
	if records == nil {
		records = []models.TransactionRecord{}
	}
	return records, nil
}

// ValidateFormat checks the file head for XML with an ISO 20022 document root.
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
	if !strings.Contains(head, "<") {
		return false, nil
	}
	return strings.Contains(head, "Document"), nil
}

// ConvertToCSV parses the input file and writes the records as CSV.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	return parser.ConvertFile(a, inputFile, outputFile, a.Logger())
}

// DocumentRecords flattens an activity document into CSV rows. Documents of
// other families return nil.
func DocumentRecords(doc Document) []models.TransactionRecord {
	activity, ok := activityOf(doc)
	if !ok {
		return nil
	}

	records := make([]models.TransactionRecord, 0, len(activity.Entries))
	for _, entry := range activity.Entries {
		currencyCode := entry.Currency
		if currencyCode == "" {
			currencyCode = activity.Currency
		}
		record := models.TransactionRecord{
			StatementID: activity.Identification,
			AccountID:   activity.AccountID,
			Amount:      entry.Amount,
			Currency:    string(currencyCode),
			CreditDebit: models.DirectionLabel(entry.CreditDebit),
			Reversal:    entry.IsReversal,
			TypeCode:    entry.Status,
			Reference:   entry.Reference,
			Description: entry.Info,
		}
		if !entry.BookingDate.IsZero() {
			record.BookingDate = entry.BookingDate.Format(dateutils.ISODateLayout)
		}
		if !entry.ValueDate.IsZero() {
			record.ValueDate = entry.ValueDate.Format(dateutils.ISODateLayout)
		}
		records = append(records, record)
	}
	return records
}

func activityOf(doc Document) (*AccountActivity, bool) {
	switch d := doc.(type) {
	case *AccountStatement:
		return &d.AccountActivity, true
	case *AccountReport:
		return &d.AccountActivity, true
	case *DebitCreditNotification:
		return &d.AccountActivity, true
	}
	return nil, false
}
