// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes a recovered schema as YAML or JSON so other tools
// can consume the draft without parsing Markdown.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/schema-extract/pkg/types"
)

// Document is the serialised form of a schema.
type Document struct {
	// Source is the PDF the schema was recovered from.
	Source string `json:"source" yaml:"source"`

	// Tables lists the tables in discovery order.
	Tables []types.Table `json:"tables" yaml:"tables"`
}

// NewDocument copies s into a serialisable document.
func NewDocument(source string, s *types.Schema) Document {
	doc := Document{Source: source, Tables: make([]types.Table, 0, s.Len())}
	for _, t := range s.Tables() {
		doc.Tables = append(doc.Tables, *t)
	}
	return doc
}

// SidecarPath returns the path of the export written beside the Markdown
// draft at mdPath: same directory and stem, format extension.
func SidecarPath(mdPath string, format types.ExportFormat) string {
	stem := strings.TrimSuffix(mdPath, filepath.Ext(mdPath))
	return stem + "." + string(format)
}

// Marshal encodes doc in the given format.
func Marshal(doc Document, format types.ExportFormat) ([]byte, error) {
	switch format {
	case types.ExportYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	case types.ExportJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q: use yaml or json", format)
	}
}

// WriteFile encodes doc and writes it to path, replacing any existing file.
func WriteFile(path string, doc Document, format types.ExportFormat) error {
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
