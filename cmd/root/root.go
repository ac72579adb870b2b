// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"finwire/statement-codec/internal/common"
	"finwire/statement-codec/internal/config"
	"finwire/statement-codec/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "statement-codec",
		Short: "Convert SWIFT MT9xx statements and ISO 20022 messages to CSV.",
		Long: `statement-codec parses SWIFT MT940/941/942/950 statement text and
ISO 20022 CAMT/PAIN XML messages and converts them to CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-codec!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = cfg.NewLogger()
			common.SetDelimiter(cfg.DelimiterRune())
			return nil
		},
	}

	// SharedFlags holds common flags accessible to all commands.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}
