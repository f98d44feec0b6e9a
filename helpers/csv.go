package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/verdex-org/verdex/catalog"
)

// ============================================================================
// CSV HELPER — Parses CSV bytes into a raw table, then into a Catalog
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, S3, Sheets).
// Parsing stays dumb on purpose: header + string cells, no typing. All
// interpretation happens in catalog.Normalize.
// ============================================================================

// Table is an untyped parsed CSV: one header row plus data rows. Rows may
// be ragged; normalization pads short rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// ParseTable parses CSV bytes. The header must be readable; malformed data
// rows are skipped rather than failing the whole file.
func ParseTable(data []byte) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// ParseCatalog parses CSV bytes straight into a normalized catalog
// (convenience wrapper over ParseTable + catalog.Normalize).
func ParseCatalog(data []byte) (*catalog.Catalog, error) {
	tbl, err := ParseTable(data)
	if err != nil {
		return nil, err
	}
	return catalog.Normalize(tbl.Header, tbl.Rows), nil
}

// LoadCatalog reads a CSV file from disk and normalizes it.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return c, nil
}
