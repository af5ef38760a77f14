// Package catalog provides the built-in skill catalog and loads extension
// catalogs from disk. Parsing stops here: the matrix package only ever sees
// materialized documents.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forgeworks/stackforge/internal/matrix"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Default parses the embedded catalog document.
func Default() (matrix.Document, error) {
	var doc matrix.Document
	if err := yaml.Unmarshal(embeddedCatalog, &doc); err != nil {
		return matrix.Document{}, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return doc, nil
}

// LoadFile parses an extension catalog document from disk.
func LoadFile(path string) (matrix.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return matrix.Document{}, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	var doc matrix.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return matrix.Document{}, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return doc, nil
}

// Build loads the default catalog plus any extension files, in order, and
// merges them into a matrix. Extension documents override the default at the
// whole-skill level and may append categories and subcategories.
func Build(extends ...string) (*matrix.Matrix, error) {
	docs := make([]matrix.Document, 0, len(extends)+1)

	base, err := Default()
	if err != nil {
		return nil, err
	}
	docs = append(docs, base)

	for _, path := range extends {
		doc, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	m, err := matrix.Load(docs...)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill matrix: %w", err)
	}
	return m, nil
}
