// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one extraction end to end: PDF text, table/column
// parsing, Markdown rendering, and writing the draft.
package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/schema-extract/internal/export"
	"github.com/pdiddy/schema-extract/internal/markdown"
	"github.com/pdiddy/schema-extract/internal/pdftext"
	"github.com/pdiddy/schema-extract/internal/schema"
	"github.com/pdiddy/schema-extract/pkg/types"
)

// Result summarises a completed run.
type Result struct {
	// Tables is the number of tables found.
	Tables int

	// OutputFile is the Markdown draft that was written.
	OutputFile string

	// SidecarFile is the YAML or JSON export, empty when none was requested.
	SidecarFile string
}

// extractFunc reads the text of a PDF. Tests replace it.
type extractFunc func(path string, cfg types.ExtractionConfig, w io.Writer) (string, error)

// reviewItems are the things a recovered draft never contains.
var reviewItems = []string{
	"Missing columns",
	"Primary keys",
	"Foreign keys",
	"Relationships",
}

// Run extracts the schema from the PDF at pdfPath and writes the Markdown
// draft to cfg.OutputFile, overwriting it. Progress goes to w.
func Run(pdfPath string, cfg types.ExtractionConfig, w io.Writer) (Result, error) {
	return run(pdftext.ExtractFile, pdfPath, cfg, w)
}

func run(extract extractFunc, pdfPath string, cfg types.ExtractionConfig, w io.Writer) (Result, error) {
	cfg.Defaults()
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Extracting text from %s...\n", pdfPath)
	text, err := extract(pdfPath, cfg, w)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintln(w, "\nParsing tables...")
	s := schema.Parse(text, w)

	fmt.Fprintf(w, "\nFound %d tables\n", s.Len())

	if err := os.WriteFile(cfg.OutputFile, []byte(markdown.Render(s)), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", cfg.OutputFile, err)
	}
	result := Result{Tables: s.Len(), OutputFile: cfg.OutputFile}

	fmt.Fprintf(w, "\nSchema saved to: %s\n", cfg.OutputFile)

	if cfg.Export != types.ExportNone {
		result.SidecarFile = export.SidecarPath(cfg.OutputFile, cfg.Export)
		doc := export.NewDocument(pdfPath, s)
		if err := export.WriteFile(result.SidecarFile, doc, cfg.Export); err != nil {
			return result, err
		}
		fmt.Fprintf(w, "Export saved to: %s\n", result.SidecarFile)
	}

	fmt.Fprintln(w, "\nPlease review and edit the file to add:")
	for _, item := range reviewItems {
		fmt.Fprintf(w, "- %s\n", item)
	}

	return result, nil
}
