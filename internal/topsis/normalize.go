package topsis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// normalizeColumns divides every column by its Euclidean norm so that
// criteria measured on different scales become comparable. A zero-norm
// column would divide by zero, so it is rejected up front.
func normalizeColumns(matrix *mat.Dense) (*mat.Dense, error) {
	rows, cols := matrix.Dims()

	normalized := mat.NewDense(rows, cols, nil)
	col := make([]float64, rows)

	for colIdx := range cols {
		mat.Col(col, colIdx, matrix)

		norm := floats.Norm(col, 2)
		if norm == 0 {
			return nil, fmt.Errorf("%w: column %d", ErrDegenerateColumn, colIdx+1)
		}

		floats.Scale(1.0/norm, col)
		normalized.SetCol(colIdx, col)
	}

	return normalized, nil
}
