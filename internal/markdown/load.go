// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/schema-extract/pkg/types"
)

// Load reads a draft produced by Render, possibly edited by hand, back into
// a schema. Every level-2 "Table: <name>" heading opens a table and the
// rows of the Markdown tables that follow it become columns. Type cells
// outside the recognised set are kept verbatim and reported on w, as are
// tables that appear before any table heading.
func Load(source []byte, w io.Writer) *types.Schema {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(source))

	s := types.NewSchema()
	current := ""

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level != 2 {
				continue
			}
			title := inlineText(node, source)
			name, ok := strings.CutPrefix(title, tableHeadingPrefix)
			if !ok {
				current = ""
				continue
			}
			current = strings.TrimSpace(name)
			s.Ensure(current)

		case *extast.Table:
			if current == "" {
				fmt.Fprintln(w, "warning: skipping table outside a \"## Table:\" section")
				continue
			}
			for _, c := range tableColumns(node, source) {
				if _, known := types.ParseColumnType(string(c.Type)); !known {
					fmt.Fprintf(w, "warning: %s.%s has unrecognised type %q\n", current, c.Name, c.Type)
				}
				_ = s.Append(current, c)
			}
		}
	}

	return s
}

// tableColumns returns one column per body row, taken from the first two
// cells. Rows with an empty name are skipped.
func tableColumns(tbl *extast.Table, source []byte) []types.Column {
	var cols []types.Column
	for row := tbl.FirstChild(); row != nil; row = row.NextSibling() {
		if _, ok := row.(*extast.TableRow); !ok {
			continue
		}
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, inlineText(cell, source))
		}
		if len(cells) < 2 || cells[0] == "" {
			continue
		}
		cols = append(cols, types.Column{Name: cells[0], Type: types.ColumnType(cells[1])})
	}
	return cols
}

// inlineText concatenates the literal text under n.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
