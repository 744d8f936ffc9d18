// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_EnsureKeepsDiscoveryOrder(t *testing.T) {
	s := NewSchema()

	_, created := s.Ensure("Orders")
	assert.True(t, created)
	_, created = s.Ensure("Customers")
	assert.True(t, created)
	again, created := s.Ensure("Orders")
	assert.False(t, created)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "Orders", s.Tables()[0].Name)
	assert.Equal(t, "Customers", s.Tables()[1].Name)
	assert.Same(t, s.Tables()[0], again)
}

func TestSchema_Append(t *testing.T) {
	s := NewSchema()
	s.Ensure("Customers")

	require.NoError(t, s.Append("Customers", Column{Name: "CustName", Type: ColumnText}))
	require.NoError(t, s.Append("Customers", Column{Name: "Balance", Type: ColumnCurrency}))

	tbl, ok := s.Lookup("Customers")
	require.True(t, ok)
	assert.Equal(t, []Column{
		{Name: "CustName", Type: ColumnText},
		{Name: "Balance", Type: ColumnCurrency},
	}, tbl.Columns)
}

func TestSchema_AppendUnknownTable(t *testing.T) {
	s := NewSchema()
	err := s.Append("Ghost", Column{Name: "X", Type: ColumnText})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTable)
	assert.Equal(t, 0, s.Len())
}

func TestSchema_EmptyTableHasNonNilColumns(t *testing.T) {
	s := NewSchema()
	tbl, _ := s.Ensure("Empty")
	assert.NotNil(t, tbl.Columns)
	assert.Empty(t, tbl.Columns)
}

func TestParseColumnType(t *testing.T) {
	tests := []struct {
		in     string
		want   ColumnType
		wantOK bool
	}{
		{"Text", ColumnText, true},
		{"Number", ColumnNumber, true},
		{"Currency", ColumnCurrency, true},
		{"Date", ColumnDate, true},
		{"Memo", ColumnMemo, true},
		{"Yes/No", ColumnYesNo, true},
		{"text", "text", false},
		{"Integer", "Integer", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColumnType(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
