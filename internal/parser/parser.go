// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fmt"
	"io"
	"os"

	"finwire/statement-codec/internal/common"
	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/models"
)

// Parser is the interface shared by the MT and ISO 20022 conversion paths.
// Implementations understand one input format and flatten it into
// TransactionRecord rows.
type Parser interface {
	// Parse reads one message from the reader and flattens it to records.
	Parse(r io.Reader) ([]models.TransactionRecord, error)
	// ValidateFormat cheaply checks whether the file looks like this
	// parser's input format.
	ValidateFormat(file string) (bool, error)
	// ConvertToCSV parses the input file and writes the records as CSV.
	ConvertToCSV(inputFile, outputFile string) error
	// SetLogger configures the parser's logger.
	SetLogger(logger logging.Logger)
}

// BaseParser provides the shared logger plumbing and CSV writing for parser
// implementations. Embed it:
//
//	type MyParser struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger falls back to the default.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the parser's logger. Nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Logger returns the current logger.
func (b *BaseParser) Logger() logging.Logger {
	return b.logger
}

// WriteToCSV writes records through the common CSV writer.
func (b *BaseParser) WriteToCSV(records []models.TransactionRecord, csvFile string) error {
	return common.WriteRecordsToCSV(records, csvFile, b.logger)
}

// ConvertFile is the standard ConvertToCSV implementation: validate, parse,
// write. Parser adapters delegate to it.
func ConvertFile(p Parser, inputFile, outputFile string, log logging.Logger) error {
	if log == nil {
		log = logging.NewLogrusAdapter("info", "text")
	}
	log.Info("Converting file to CSV",
		logging.F(logging.FieldFile, inputFile),
		logging.F("output", outputFile))

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}

	valid, err := p.ValidateFormat(inputFile)
	if err != nil {
		return fmt.Errorf("error validating file format: %w", err)
	}
	if !valid {
		return fmt.Errorf("invalid file format: %s", inputFile)
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	records, err := p.Parse(file)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}
	if err := common.WriteRecordsToCSV(records, outputFile, log); err != nil {
		return fmt.Errorf("error writing records to CSV: %w", err)
	}

	log.Info("Successfully converted file to CSV",
		logging.F(logging.FieldFile, inputFile),
		logging.F(logging.FieldCount, len(records)))
	return nil
}
