package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	xmlcore "github.com/arturoeanton/go-xmlcore/xml"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Parse an XML document and report the first error, if any",
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
			_, err = parseDocument(cmd.Context(), r, source, cfg)
			if err != nil {
				var xerr *xmlcore.Error
				if errors.As(err, &xerr) {
					fmt.Fprintf(os.Stdout, "%s: %s\n", xerr.ID, xerr.Error())
					os.Exit(1)
				}
				return err
			}
			fmt.Fprintln(os.Stdout, "ok")
			return nil
		},
	}
	return cmd
}
