// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const (
	binPdfinfo   = "pdfinfo"
	binPdftotext = "pdftotext"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

var defaultExec executor = &osExecutor{}

// popplerDocument extracts pages one at a time with pdftotext. The page
// count comes from pdfinfo when the document is opened.
type popplerDocument struct {
	path  string
	pages int
	exec  executor
}

func openPdftotext(path string) (Document, error) {
	return newPopplerDocument(path, defaultExec)
}

func newPopplerDocument(path string, ex executor) (*popplerDocument, error) {
	for _, bin := range []string{binPdfinfo, binPdftotext} {
		if _, err := ex.LookPath(bin); err != nil {
			return nil, fmt.Errorf("%w: %s not found on PATH", ErrBackendUnavailable, bin)
		}
	}

	out, err := ex.Output(binPdfinfo, path)
	if err != nil {
		return nil, fmt.Errorf("running %s on %s: %w", binPdfinfo, path, err)
	}
	pages, err := parsePageCount(out)
	if err != nil {
		return nil, fmt.Errorf("reading page count of %s: %w", path, err)
	}

	return &popplerDocument{path: path, pages: pages, exec: ex}, nil
}

func (d *popplerDocument) NumPage() int { return d.pages }

func (d *popplerDocument) PageText(i int) (string, error) {
	n := strconv.Itoa(i + 1)
	out, err := d.exec.Output(binPdftotext, "-f", n, "-l", n, "-enc", "UTF-8", d.path, "-")
	if err != nil {
		return "", fmt.Errorf("running %s: %w", binPdftotext, err)
	}
	// pdftotext terminates every page with a form feed.
	return strings.TrimSuffix(string(out), "\f"), nil
}

func (d *popplerDocument) Close() error { return nil }

// parsePageCount finds the "Pages:" line in pdfinfo output.
func parsePageCount(info []byte) (int, error) {
	sc := bufio.NewScanner(bytes.NewReader(info))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok || strings.TrimSpace(key) != "Pages" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("parsing %q: %w", value, err)
		}
		return n, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("no Pages entry in %s output", binPdfinfo)
}
