// Package common contains shared functionality for command handlers.
package common

import (
	"fmt"

	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/parser"
)

// ProcessFile processes a single file using the given parser.
func ProcessFile(p parser.Parser, inputFile, outputFile string, validate bool, log logging.Logger) error {
	p.SetLogger(log)

	if inputFile == "" {
		return fmt.Errorf("no input file given (use --input)")
	}
	if outputFile == "" {
		return fmt.Errorf("no output file given (use --output)")
	}

	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return fmt.Errorf("the file is not in a valid format")
		}
		log.Info("Validation successful.")
	}

	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		return fmt.Errorf("error converting to CSV: %w", err)
	}
	log.Info("Conversion completed successfully!")
	return nil
}
