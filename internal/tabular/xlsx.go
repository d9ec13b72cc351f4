package tabular

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

func loadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("tabular: %s needs a header row and at least one data row", path)
	}

	// GetRows drops trailing empty cells, so pad every row back out to
	// the header width before shape validation.
	header := rows[0]
	data := make([][]string, len(rows)-1)
	for i, row := range rows[1:] {
		for len(row) < len(header) {
			row = append(row, "")
		}
		data[i] = row
	}

	return &Table{Header: header, Rows: data}, nil
}

func writeXLSX(path string, table *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &table.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for rowIdx, row := range table.Rows {
		cells := make([]any, len(row))
		for colIdx, cell := range row {
			// Numeric cells are stored as numbers so spreadsheet
			// consumers can sort and aggregate them.
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				cells[colIdx] = v
			} else {
				cells[colIdx] = cell
			}
		}

		ref, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, ref, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", rowIdx+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}
