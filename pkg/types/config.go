// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ExtractionBackend identifies the tool used to pull text out of a PDF.
type ExtractionBackend string

const (
	// BackendNative reads PDFs in-process with a pure Go parser.
	BackendNative ExtractionBackend = "native"
	// BackendPdftotext shells out to poppler's pdfinfo and pdftotext.
	BackendPdftotext ExtractionBackend = "pdftotext"
)

// ExportFormat selects the optional machine-readable sidecar written next to
// the Markdown draft.
type ExportFormat string

const (
	ExportNone ExportFormat = ""
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)

const (
	DefaultMaxPages      = 50
	DefaultProgressEvery = 10
	DefaultOutputFile    = "database_schema_extracted.md"
)

// ExtractionConfig holds settings for a single extraction run.
type ExtractionConfig struct {
	// MaxPages caps how many leading pages are read (default 50).
	MaxPages int `json:"max_pages" yaml:"max_pages" mapstructure:"max_pages"`

	// ProgressEvery prints a progress marker for every page index divisible
	// by this value (default 10).
	ProgressEvery int `json:"progress_every" yaml:"progress_every" mapstructure:"progress_every"`

	// OutputFile is the Markdown draft path (default database_schema_extracted.md).
	OutputFile string `json:"output" yaml:"output" mapstructure:"output"`

	// Backend selects the extractor: native or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Normalize applies NFKC normalisation to page text before parsing.
	Normalize bool `json:"normalize" yaml:"normalize" mapstructure:"normalize"`

	// Export optionally writes a yaml or json sidecar beside OutputFile.
	Export ExportFormat `json:"export" yaml:"export" mapstructure:"export"`
}

// Defaults fills zero-valued fields with their default values.
func (c *ExtractionConfig) Defaults() {
	if c.MaxPages == 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.ProgressEvery == 0 {
		c.ProgressEvery = DefaultProgressEvery
	}
	if c.OutputFile == "" {
		c.OutputFile = DefaultOutputFile
	}
	if c.Backend == "" {
		c.Backend = BackendNative
	}
}

// Validate rejects settings that cannot be acted on.
func (c ExtractionConfig) Validate() error {
	if c.MaxPages < 0 {
		return fmt.Errorf("max_pages must not be negative, got %d", c.MaxPages)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("progress_every must not be negative, got %d", c.ProgressEvery)
	}
	switch c.Backend {
	case BackendNative, BackendPdftotext:
	default:
		return fmt.Errorf("unsupported backend %q: use native or pdftotext", c.Backend)
	}
	switch c.Export {
	case ExportNone, ExportYAML, ExportJSON:
	default:
		return fmt.Errorf("unsupported export format %q: use yaml or json", c.Export)
	}
	return nil
}
