// Package convert handles format-agnostic conversion commands.
package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"finwire/statement-codec/cmd/common"
	"finwire/statement-codec/cmd/root"
	"finwire/statement-codec/internal/factory"
	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/parser"
)

var formatType string

// Cmd represents the convert command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a statement file to CSV, detecting the format",
	Long: `Convert a SWIFT MT9xx or ISO 20022 file to CSV. The input format is
detected automatically unless --type is given.`,
	RunE: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&formatType, "type", "t", "", "Input format (mt or iso), detected when empty")
}

func convertFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Convert command called",
		logging.F(logging.FieldFile, root.SharedFlags.Input))

	p, err := selectParser(root.SharedFlags.Input)
	if err != nil {
		return err
	}
	return common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.Log)
}

// selectParser returns the parser for the --type flag, or probes the input
// file against each known format when the flag is empty.
func selectParser(inputFile string) (parser.Parser, error) {
	if formatType != "" {
		return factory.GetParser(factory.ParserType(formatType), root.Log)
	}
	if inputFile == "" {
		return nil, fmt.Errorf("no input file given (use --input)")
	}

	for _, parserType := range []factory.ParserType{factory.MT, factory.ISO} {
		p, err := factory.GetParser(parserType, root.Log)
		if err != nil {
			return nil, err
		}
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return nil, fmt.Errorf("error probing file format: %w", err)
		}
		if valid {
			root.Log.Info("Detected input format",
				logging.F(logging.FieldParameter, string(parserType)))
			return p, nil
		}
	}
	return nil, fmt.Errorf("could not detect the input format of %s", inputFile)
}
