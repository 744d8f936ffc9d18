// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ColumnType is the data type recorded next to a column in Access-style
// database documentation. Only the literals below are recognised.
type ColumnType string

const (
	ColumnText     ColumnType = "Text"
	ColumnNumber   ColumnType = "Number"
	ColumnCurrency ColumnType = "Currency"
	ColumnDate     ColumnType = "Date"
	ColumnMemo     ColumnType = "Memo"
	ColumnYesNo    ColumnType = "Yes/No"
)

// ColumnTypes returns the recognised column types in matching order.
func ColumnTypes() []ColumnType {
	return []ColumnType{ColumnText, ColumnNumber, ColumnCurrency, ColumnDate, ColumnMemo, ColumnYesNo}
}

// ParseColumnType reports whether s is one of the recognised type literals.
// The comparison is case-sensitive.
func ParseColumnType(s string) (ColumnType, bool) {
	for _, ct := range ColumnTypes() {
		if string(ct) == s {
			return ct, true
		}
	}
	return ColumnType(s), false
}

// Column is one (name, type) pair belonging to a table.
type Column struct {
	Name string     `json:"name" yaml:"name"`
	Type ColumnType `json:"type" yaml:"type"`
}

// Table is a named group of columns discovered in the source text.
// Columns are kept in the order they were matched.
type Table struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []Column `json:"columns" yaml:"columns"`
}

// ErrUnknownTable is returned when a column is appended to a table that is
// not part of the schema.
var ErrUnknownTable = errors.New("unknown table")

// Schema maps table names to tables and remembers discovery order.
// The zero value is not usable; call NewSchema.
type Schema struct {
	order  []*Table
	byName map[string]*Table
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{byName: make(map[string]*Table)}
}

// Ensure returns the table called name, creating an empty one at the end of
// the discovery order if it does not exist yet. created reports whether a
// new entry was added.
func (s *Schema) Ensure(name string) (t *Table, created bool) {
	if t, ok := s.byName[name]; ok {
		return t, false
	}
	t = &Table{Name: name, Columns: []Column{}}
	s.byName[name] = t
	s.order = append(s.order, t)
	return t, true
}

// Lookup returns the table called name, if present.
func (s *Schema) Lookup(name string) (*Table, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// Append adds col to the end of the named table's column list.
func (s *Schema) Append(table string, col Column) error {
	t, ok := s.byName[table]
	if !ok {
		return fmt.Errorf("appending column %s: %w %q", col.Name, ErrUnknownTable, table)
	}
	t.Columns = append(t.Columns, col)
	return nil
}

// Tables returns the tables in discovery order.
func (s *Schema) Tables() []*Table {
	return s.order
}

// Len returns the number of tables.
func (s *Schema) Len() int {
	return len(s.order)
}
