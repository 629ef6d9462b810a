package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var compact bool
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty-print an XML document",
		Long: `Pretty-print an XML document to stdout.

If a file is provided, it is read directly. Otherwise, reads XML from
stdin. Use -w to overwrite the file in place (requires a file
argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogger(cmd); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("compact") {
				compact = cfg.Compact
			}

			r, source, err := getInputReader(args)
			if err != nil {
				return err
			}
			doc, err := parseDocument(cmd.Context(), r, source, cfg)
			if err != nil {
				return err
			}

			var out string
			if compact {
				out = doc.CompactString()
			} else {
				out = doc.String()
			}

			if overwrite {
				if len(args) == 0 {
					return fmt.Errorf("-w requires a file argument")
				}
				return os.WriteFile(args[0], []byte(out), 0o644)
			}
			_, err = fmt.Fprint(os.Stdout, out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "strip insignificant whitespace")
	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")
	return cmd
}
