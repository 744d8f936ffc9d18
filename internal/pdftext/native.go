// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// nativeDocument reads pages in-process with ledongthuc/pdf.
type nativeDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func openNative(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	return newNativeDocument(f, r), nil
}

func newNativeDocument(f *os.File, r *pdf.Reader) *nativeDocument {
	return &nativeDocument{file: f, reader: r}
}

func (d *nativeDocument) NumPage() int { return d.reader.NumPage() }

// PageText returns the plain text of page i. Pages without a page object
// yield empty text. Font names are scoped to each page's resources, so every
// page resolves its own fonts.
func (d *nativeDocument) PageText(i int) (string, error) {
	p := d.reader.Page(i + 1)
	if p.V.IsNull() {
		return "", nil
	}

	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("reading page text: %w", err)
	}
	return text, nil
}

func (d *nativeDocument) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}
