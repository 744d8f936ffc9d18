// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/schema-extract/internal/export"
	"github.com/pdiddy/schema-extract/internal/markdown"
	"github.com/pdiddy/schema-extract/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <draft.md>",
	Short: "Summarise a reviewed schema draft",
	Long: `Inspect reads a Markdown draft written by schema-extract, including one
that has been edited by hand, and lists its tables with their column counts.
Column types outside Text, Number, Currency, Date, Memo, and Yes/No are
reported as warnings on stderr.

Use --format yaml or --format json to print the whole schema instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading draft: %w", err)
	}
	s := markdown.Load(data, cmd.ErrOrStderr())

	switch format {
	case "text", "":
		formatInspectOutput(cmd.OutOrStdout(), s)
		return nil
	case string(types.ExportYAML), string(types.ExportJSON):
		out, err := export.Marshal(export.NewDocument(args[0], s), types.ExportFormat(format))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

func formatInspectOutput(w io.Writer, s *types.Schema) {
	if s.Len() == 0 {
		fmt.Fprintln(w, "No tables found.")
		return
	}

	fmt.Fprintf(w, "%-40s  %s\n", "Table", "Columns")
	fmt.Fprintln(w, strings.Repeat("-", 50))

	total := 0
	for _, t := range s.Tables() {
		name := t.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Fprintf(w, "%-40s  %d\n", name, len(t.Columns))
		total += len(t.Columns)
	}

	fmt.Fprintf(w, "\n%d tables, %d columns\n", s.Len(), total)
}
