// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown renders a recovered schema as a Markdown draft and reads
// reviewed drafts back.
package markdown

import (
	"fmt"
	"strings"

	"github.com/pdiddy/schema-extract/pkg/types"
)

const (
	// Title is the first line of every draft.
	Title = "# Database Schema Extracted from PDF"

	tableHeadingPrefix = "Table: "
	headerRow          = "| Column Name | Data Type |"
	separatorRow       = "|-------------|-----------|"
)

// Render returns the Markdown draft for s: a title, then one section per
// table in discovery order with a two-column name/type table. Tables with
// no columns keep their header rows.
func Render(s *types.Schema) string {
	lines := []string{Title + "\n"}

	for _, t := range s.Tables() {
		lines = append(lines, fmt.Sprintf("\n## %s%s\n", tableHeadingPrefix, t.Name))
		lines = append(lines, headerRow, separatorRow)
		for _, c := range t.Columns {
			lines = append(lines, fmt.Sprintf("| %s | %s |", c.Name, c.Type))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
