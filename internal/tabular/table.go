// Package tabular loads and writes the flat tables surrounding a TOPSIS
// run: a header row, an identifier column, and numeric criteria columns.
// CSV and XLSX are supported, selected by filename suffix.
package tabular

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/rankworks/topsis/internal/topsis"
)

// Table is a loaded tabular file. The first column identifies each
// alternative and is carried through to the output unchanged; columns
// 2..N are the criteria.
type Table struct {
	Header []string
	Rows   [][]string
}

// NumCriteria returns the number of criteria columns.
func (t *Table) NumCriteria() int {
	return len(t.Header) - 1
}

// Labels returns the identifier column.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		labels[i] = row[0]
	}
	return labels
}

// DecisionMatrix parses the criteria columns into a dense matrix, one row
// per alternative. Any cell that does not parse as a float fails the
// whole load; the error names the offending cell.
func (t *Table) DecisionMatrix() (*mat.Dense, error) {
	rows := len(t.Rows)
	cols := t.NumCriteria()

	matrix := mat.NewDense(rows, cols, nil)

	for rowIdx, row := range t.Rows {
		for colIdx := 0; colIdx < cols; colIdx++ {
			cell := row[colIdx+1]
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %q has %q",
					ErrNonNumericData, rowIdx+1, t.Header[colIdx+1], cell)
			}
			matrix.Set(rowIdx, colIdx, value)
		}
	}

	return matrix, nil
}

// AppendResults returns a copy of the table with "Topsis Score" and
// "Rank" columns appended, one result per row.
func (t *Table) AppendResults(results []topsis.Result) (*Table, error) {
	if len(results) != len(t.Rows) {
		return nil, fmt.Errorf("tabular: %d results for %d rows", len(results), len(t.Rows))
	}

	out := &Table{
		Header: append(append([]string{}, t.Header...), "Topsis Score", "Rank"),
		Rows:   make([][]string, len(t.Rows)),
	}

	for i, row := range t.Rows {
		out.Rows[i] = append(append([]string{}, row...),
			strconv.FormatFloat(results[i].Score, 'f', -1, 64),
			strconv.Itoa(results[i].Rank),
		)
	}

	return out, nil
}
