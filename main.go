// Package main provides the entry point for the statement-codec CLI
// application.
package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"finwire/statement-codec/cmd/convert"
	"finwire/statement-codec/cmd/iso"
	"finwire/statement-codec/cmd/mt"
	"finwire/statement-codec/cmd/root"
)

func init() {
	loadEnvSilently()

	root.Init()
	root.Cmd.AddCommand(mt.Cmd)
	root.Cmd.AddCommand(iso.Cmd)
	root.Cmd.AddCommand(convert.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
