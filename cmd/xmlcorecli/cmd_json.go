package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Convert an XML document to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogger(cmd); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			r, source, err := getInputReader(args)
			if err != nil {
				return err
			}
			doc, err := parseDocument(cmd.Context(), r, source, cfg)
			if err != nil {
				return err
			}

			out, err := doc.ToJSON()
			if err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(out))
			return nil
		},
	}
	return cmd
}
