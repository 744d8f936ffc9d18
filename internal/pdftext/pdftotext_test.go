// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/schema-extract/pkg/types"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool
	outputs       map[string]string // "bin arg1 arg2" -> stdout
	calls         []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Output(name string, args ...string) ([]byte, error) {
	key := name + " " + strings.Join(args, " ")
	m.calls = append(m.calls, key)
	if out, ok := m.outputs[key]; ok {
		return []byte(out), nil
	}
	return nil, errors.New("command failed: " + key)
}

const pdfinfoOutput = `Title:          Relationships for KeToan.mdb
Producer:       Microsoft Access
Pages:          2
Encrypted:      no
`

func popplerExec() *mockExecutor {
	return &mockExecutor{
		availableBins: map[string]bool{"pdfinfo": true, "pdftotext": true},
		outputs: map[string]string{
			"pdfinfo doc.pdf": pdfinfoOutput,
			"pdftotext -f 1 -l 1 -enc UTF-8 doc.pdf -": "Table: Customers\nCustName Text\n\f",
			"pdftotext -f 2 -l 2 -enc UTF-8 doc.pdf -": "Balance Currency\n\f",
		},
	}
}

func TestPopplerDocument(t *testing.T) {
	ex := popplerExec()
	doc, err := newPopplerDocument("doc.pdf", ex)
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, 2, doc.NumPage())

	var log bytes.Buffer
	text, err := Extract(doc, types.ExtractionConfig{}, &log)
	require.NoError(t, err)
	assert.Equal(t, "Table: Customers\nCustName Text\n\nBalance Currency\n", text)
	assert.Len(t, ex.calls, 3)
}

func TestPopplerDocument_MissingBinaries(t *testing.T) {
	tests := []struct {
		name string
		bins map[string]bool
		want string
	}{
		{name: "nothing installed", bins: map[string]bool{}, want: "pdfinfo"},
		{name: "pdftotext missing", bins: map[string]bool{"pdfinfo": true}, want: "pdftotext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &mockExecutor{availableBins: tt.bins}
			_, err := newPopplerDocument("doc.pdf", ex)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBackendUnavailable)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, ex.calls, "no command should run without the binaries")
		})
	}
}

func TestPopplerDocument_PdfinfoFails(t *testing.T) {
	ex := popplerExec()
	_, err := newPopplerDocument("other.pdf", ex)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "running pdfinfo")
}

func TestParsePageCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "typical output", input: pdfinfoOutput, want: 2},
		{name: "zero pages", input: "Pages: 0\n", want: 0},
		{name: "missing entry", input: "Title: x\n", wantErr: true},
		{name: "garbage count", input: "Pages: many\n", wantErr: true},
		{name: "page size line is not the count", input: "Page size: 612 x 792 pts\nPages: 7\n", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePageCount([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
