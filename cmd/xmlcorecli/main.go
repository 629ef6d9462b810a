// Command xmlcorecli exposes the xml package's parse/print/query
// surface from the shell: fmt, validate, query, and json subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xmlcorecli",
		Short: "Parse, validate, query, and reformat XML documents",
	}

	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "logfmt", "log format: logfmt, json")
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file (see internal/xconfig)")

	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newJSONCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
