package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	xmlcore "github.com/arturoeanton/go-xmlcore/xml"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <path> [file]",
		Short: "Select elements by a slash-separated tag path",
		Long: `Select elements by a slash-separated tag path, e.g.:

  xmlcorecli query root/items/item data.xml

Each path segment matches a child element by tag name; a segment
matching more than one child fans out to all of them for the
remaining segments. Results are printed as a JSON array.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogger(cmd); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			fileArgs := args[1:]

			r, source, err := getInputReader(fileArgs)
			if err != nil {
				return err
			}
			doc, err := parseDocument(cmd.Context(), r, source, cfg)
			if err != nil {
				return err
			}

			root := doc.RootElement()
			if root == nil {
				return fmt.Errorf("query: document has no root element")
			}

			segments := make([]string, 0)
			for _, seg := range strings.Split(path, "/") {
				if seg != "" {
					segments = append(segments, seg)
				}
			}
			if len(segments) > 0 && segments[0] == root.Name() {
				segments = segments[1:]
			}

			matches := []*xmlcore.Element{root}
			for _, seg := range segments {
				var next []*xmlcore.Element
				for _, m := range matches {
					for c := m.FirstChildElement(seg); c != nil; c = c.NextSiblingElement(seg) {
						next = append(next, c)
					}
				}
				matches = next
			}

			results := make([]map[string]any, 0, len(matches))
			for _, m := range matches {
				results = append(results, m.ToMap())
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		},
	}
	return cmd
}
