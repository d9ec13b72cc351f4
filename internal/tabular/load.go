package tabular

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a tabular file, selecting the codec by filename suffix.
// The first row is the header. Every loaded table has at least three
// columns (identifier plus two or more criteria) and rectangular rows.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	var (
		table *Table
		err   error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		table, err = loadCSV(path)
	case ".xlsx":
		table, err = loadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	if len(table.Header) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientColumns, len(table.Header))
	}
	for rowIdx, row := range table.Rows {
		if len(row) != len(table.Header) {
			return nil, fmt.Errorf("tabular: row %d has %d cells, header has %d",
				rowIdx+1, len(row), len(table.Header))
		}
	}

	return table, nil
}

// Write serializes the table, selecting the codec by filename suffix.
// Nothing is written on error.
func Write(path string, table *Table) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, table)
	case ".xlsx":
		return writeXLSX(path, table)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
