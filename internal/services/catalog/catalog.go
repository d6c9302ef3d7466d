// Package catalog loads and serves the static replacement-model
// reference table.
package catalog

import (
	"fmt"
	"os"

	"aircon-subsidy-engine/internal/models"
)

// Catalog is the read-only set of replacement models a user can choose
// from. Loaded once at startup; safe for concurrent reads.
type Catalog struct {
	entries []models.CatalogEntry
	byCode  map[string]models.CatalogEntry
}

// LoadFromFile reads the catalog CSV from disk.
func LoadFromFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Load(string(content))
}

// Load parses catalog CSV content into a Catalog.
func Load(content string) (*Catalog, error) {
	parser := NewCSVParser()
	entries, parseErrors := parser.ParseEntries(content)
	if len(entries) == 0 {
		if len(parseErrors) > 0 {
			return nil, fmt.Errorf("catalog contains no usable rows: %v", parseErrors[0])
		}
		return nil, fmt.Errorf("catalog contains no usable rows")
	}

	byCode := make(map[string]models.CatalogEntry, len(entries))
	for _, e := range entries {
		byCode[e.ModelCode] = e
	}

	return &Catalog{entries: entries, byCode: byCode}, nil
}

// Entries returns all catalog rows in file order.
func (c *Catalog) Entries() []models.CatalogEntry {
	out := make([]models.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// FindByCode looks up a catalog row by exact model code. A miss should
// never happen with a fixed selection list, but is guarded anyway.
func (c *Catalog) FindByCode(modelCode string) (models.CatalogEntry, error) {
	entry, ok := c.byCode[modelCode]
	if !ok {
		return models.CatalogEntry{}, fmt.Errorf("%w: %q", models.ErrUnknownModel, modelCode)
	}
	return entry, nil
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int {
	return len(c.entries)
}
