// Package factory creates parser instances by input format.
package factory

import (
	"fmt"

	"finwire/statement-codec/internal/isoparser"
	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/mtparser"
	"finwire/statement-codec/internal/parser"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	MT  ParserType = "mt"
	ISO ParserType = "iso"
)

// GetParser returns a new instance of the appropriate parser for the given
// type.
func GetParser(parserType ParserType, logger logging.Logger) (parser.Parser, error) {
	switch parserType {
	case MT:
		return mtparser.NewAdapter(logger), nil
	case ISO:
		return isoparser.NewAdapter(nil, logger), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}
