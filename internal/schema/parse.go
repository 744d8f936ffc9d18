// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema recovers table and column definitions from the plain text
// of database documentation reports.
//
// Parsing is a best-effort line scan with two independent patterns: a
// "Table:" header and a "<name> <type>" column line. No grammar is applied
// across lines beyond remembering the most recent table header.
package schema

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdiddy/schema-extract/pkg/types"
)

// word matches one Unicode word character: a letter, digit or underscore.
const word = `[\p{L}\p{N}_]`

// space matches one Unicode whitespace character, including the no-break
// and em spaces PDF text extraction tends to produce.
const space = `[\t-\r\x1c-\x1f\x{85}\p{Z}]`

// tablePattern matches a table header such as "Table: Customers".
var tablePattern = regexp.MustCompile(`Table:` + space + `*(` + word + `+)`)

// columnPattern matches a column definition such as "CustName Text". The
// type literal is not anchored on the right, so "Notes Memorandum" still
// yields a Memo column.
var columnPattern = regexp.MustCompile(`(` + word + `+)` + space + `+(` + typeAlternation() + `)`)

func typeAlternation() string {
	cts := types.ColumnTypes()
	alts := make([]string, len(cts))
	for i, ct := range cts {
		alts[i] = regexp.QuoteMeta(string(ct))
	}
	return strings.Join(alts, "|")
}

// Parse scans text line by line and returns the tables it found, in the
// order their headers first appear. A "Found table" line is written to w
// for every header match.
//
// A header sets the current table; a repeated header reuses the existing
// entry. A column line is attributed to the current table and ignored when
// no header has been seen. Both patterns are tried on every line, so a
// header line that also carries a type literal contributes a column to the
// table it names.
func Parse(text string, w io.Writer) *types.Schema {
	s := types.NewSchema()
	current := ""

	for _, line := range strings.Split(text, "\n") {
		if m := tablePattern.FindStringSubmatch(line); m != nil {
			current = m[1]
			s.Ensure(current)
			fmt.Fprintf(w, "Found table: %s\n", current)
		}

		if current == "" {
			continue
		}
		if m := columnPattern.FindStringSubmatch(line); m != nil {
			col := types.Column{Name: m[1], Type: types.ColumnType(m[2])}
			// current is always a key of s here.
			_ = s.Append(current, col)
		}
	}

	return s
}
