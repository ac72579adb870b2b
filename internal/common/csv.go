// Package common provides shared functionality across the parsers.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/models"
)

// Delimiter is the CSV output delimiter. It is set once from configuration
// during startup.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// WriteRecordsToCSV writes transaction records to a CSV file, creating the
// target directory when needed. Every conversion path goes through this
// function so the output format stays uniform.
func WriteRecordsToCSV(records []models.TransactionRecord, csvFile string, log logging.Logger) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}
	if log == nil {
		log = logging.NewLogrusAdapter("info", "text")
	}

	log.Info("Writing records to CSV file",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(records)))

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	for i := range records {
		records[i].Amount = records[i].Amount.Round(2)
	}

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(writer)); err != nil {
		log.WithError(err).Error("Failed to marshal records to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Successfully wrote records to CSV file",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(records)))
	return nil
}

// ReadRecordsFromCSV reads a previously written record CSV back into memory.
func ReadRecordsFromCSV(csvFile string, log logging.Logger) ([]models.TransactionRecord, error) {
	if log == nil {
		log = logging.NewLogrusAdapter("info", "text")
	}
	log.Info("Reading CSV file", logging.F(logging.FieldFile, csvFile))

	file, err := os.Open(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var records []models.TransactionRecord
	reader := csv.NewReader(file)
	reader.Comma = Delimiter
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Info("Successfully read CSV data", logging.F(logging.FieldCount, len(records)))
	return records, nil
}
