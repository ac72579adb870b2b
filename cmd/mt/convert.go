// Package mt handles SWIFT MT9xx statement commands.
package mt

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finwire/statement-codec/cmd/common"
	"finwire/statement-codec/cmd/root"
	"finwire/statement-codec/internal/fileutils"
	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/mtparser"
)

var roundtrip bool

// Cmd represents the mt command.
var Cmd = &cobra.Command{
	Use:   "mt",
	Short: "Process SWIFT MT9xx statement files",
	Long:  `Process SWIFT MT940/941/942/950 statement files and convert them to CSV.`,
	RunE:  mtFunc,
}

func init() {
	Cmd.Flags().BoolVar(&roundtrip, "roundtrip", false, "Re-serialize the parsed statement and print it")
}

func mtFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("MT statement process command called",
		logging.F(logging.FieldFile, root.SharedFlags.Input))

	adapter := mtparser.NewAdapter(root.Log)
	adapter.Assembler().GrammarPolicy = mtparser.GrammarPolicy(root.Cfg.MT.GrammarPolicy)
	adapter.Assembler().BalancePolicy = mtparser.BalancePolicy(root.Cfg.MT.BalanceValidation)

	if roundtrip {
		return roundtripFunc(adapter)
	}
	return common.ProcessFile(adapter, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.Log)
}

// roundtripFunc parses the statement and writes the re-serialized text to the
// output file, or stdout when none is given.
func roundtripFunc(adapter *mtparser.Adapter) error {
	data, err := fileutils.ReadFile(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	stmt, warnings, err := adapter.Assembler().Parse(string(data))
	if err != nil {
		return fmt.Errorf("error parsing statement: %w", err)
	}
	for _, w := range warnings {
		root.Log.Warn(w.Reason,
			logging.F(logging.FieldTag, w.Tag),
			logging.F(logging.FieldLine, w.Line))
	}

	text := mtparser.Serialize(stmt)
	if root.SharedFlags.Output == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(root.SharedFlags.Output, []byte(text), 0600); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	root.Log.Info("Wrote re-serialized statement",
		logging.F(logging.FieldFile, root.SharedFlags.Output))
	return nil
}
