package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arturoeanton/go-xmlcore/internal/xconfig"
	"github.com/arturoeanton/go-xmlcore/internal/xlog"
	xmlcore "github.com/arturoeanton/go-xmlcore/xml"
)

// getInputReader returns a file reader for args[0], or os.Stdin if no
// file argument was given and stdin is piped.
func getInputReader(args []string) (io.Reader, string, error) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, "", err
		}
		return f, args[0], nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		return os.Stdin, "<stdin>", nil
	}

	return nil, "", fmt.Errorf("no input provided (pipe or file)")
}

// loadConfig reads the --config flag, falling back to xconfig.Default.
func loadConfig(cmd *cobra.Command) (*xconfig.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return xconfig.Default(), nil
	}
	return xconfig.Load(path)
}

// setupLogger builds a *slog.Logger from the root command's persistent
// flags, for subcommands that want diagnostics beyond their return
// error.
func setupLogger(cmd *cobra.Command) error {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	logger, err := xlog.New(os.Stderr, level, format)
	if err != nil {
		return err
	}
	cmd.SetContext(withLogger(cmd.Context(), logger))
	return nil
}

// parseDocument reads r fully and parses it with cfg's policy, wrapping
// any *xml.Error with the source name for a more useful CLI message.
func parseDocument(ctx context.Context, r io.Reader, source string, cfg *xconfig.Config) (*xmlcore.Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	doc := xmlcore.NewDocument(cfg.DocumentOptions()...)
	if err := doc.Parse(buf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	loggerFromContext(ctx).Debug("parsed document", "source", source, "bytes", len(buf))
	return doc, nil
}
