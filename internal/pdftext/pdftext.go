// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext pulls plain text out of the leading pages of a PDF.
// Two backends are available: an in-process pure Go reader and poppler's
// pdftotext binaries. Both expose pages through PageSource so the page loop,
// progress output and page cap live in one place.
package pdftext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/schema-extract/pkg/types"
)

// ErrBackendUnavailable reports that the selected PDF reader cannot run in
// this environment. It is the one condition the CLI treats as a missing
// dependency rather than an ordinary failure.
var ErrBackendUnavailable = errors.New("PDF reading backend not available")

// PageSource gives indexed access to the pages of an open PDF.
type PageSource interface {
	// NumPage returns the total number of pages in the document.
	NumPage() int

	// PageText returns the extracted text of the page at 0-based index i.
	PageText(i int) (string, error)
}

// Document is a PageSource backed by an open file.
type Document interface {
	PageSource
	io.Closer
}

// opener opens a PDF at path with a specific backend.
type opener func(path string) (Document, error)

// openers maps each backend to its constructor. Tests swap entries.
var openers = map[types.ExtractionBackend]opener{
	types.BackendNative:    openNative,
	types.BackendPdftotext: openPdftotext,
}

// Open opens path with the given backend. An unknown backend or a backend
// whose tooling is missing yields an error wrapping ErrBackendUnavailable.
func Open(path string, backend types.ExtractionBackend) (Document, error) {
	open, ok := openers[backend]
	if !ok {
		return nil, fmt.Errorf("%w: unknown backend %q", ErrBackendUnavailable, backend)
	}
	return open(path)
}

// Extract reads pages [0, min(cfg.MaxPages, NumPage)) from src and joins
// their text with a single newline. The total page count is written to w
// once, and a progress line for every page index divisible by
// cfg.ProgressEvery.
func Extract(src PageSource, cfg types.ExtractionConfig, w io.Writer) (string, error) {
	cfg.Defaults()
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	total := src.NumPage()
	fmt.Fprintf(w, "Total pages: %d\n", total)

	maxPages := min(cfg.MaxPages, total)
	pages := make([]string, 0, maxPages)
	for i := 0; i < maxPages; i++ {
		text, err := src.PageText(i)
		if err != nil {
			return "", fmt.Errorf("extracting page %d: %w", i+1, err)
		}
		if cfg.Normalize {
			text = norm.NFKC.String(text)
		}
		pages = append(pages, text)
		if i%cfg.ProgressEvery == 0 {
			fmt.Fprintf(w, "Processing page %d...\n", i)
		}
	}

	return strings.Join(pages, "\n"), nil
}

// ExtractFile opens the PDF at path with cfg.Backend, extracts its leading
// pages, and closes the file before returning.
func ExtractFile(path string, cfg types.ExtractionConfig, w io.Writer) (string, error) {
	cfg.Defaults()

	doc, err := Open(path, cfg.Backend)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return Extract(doc, cfg, w)
}
