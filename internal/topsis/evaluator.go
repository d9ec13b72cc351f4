// Package topsis implements the TOPSIS multi-criteria decision method:
// alternatives are ranked by relative closeness to an ideal solution built
// from the best and worst weighted value of every criterion.
package topsis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Evaluator ranks the rows of a decision matrix. Defaults are dense tie
// ranking and a 0.5 score for degenerate rows; both are overridable with
// options. An Evaluator is stateless and safe for concurrent use.
type Evaluator struct {
	tiePolicy        TiePolicy
	degeneratePolicy DegeneratePolicy
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTiePolicy sets how equal scores are ranked.
func WithTiePolicy(policy TiePolicy) Option {
	return func(e *Evaluator) {
		e.tiePolicy = policy
	}
}

// WithDegenerateScorePolicy sets the handling of 0/0 scores.
func WithDegenerateScorePolicy(policy DegeneratePolicy) Option {
	return func(e *Evaluator) {
		e.degeneratePolicy = policy
	}
}

// NewEvaluator builds an Evaluator with the given options.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		tiePolicy:        TieDense,
		degeneratePolicy: DegenerateMidpoint,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate scores and ranks every row of matrix. Rows are alternatives,
// columns are criteria; weights and impacts must have one entry per
// column. The matrix is never mutated.
func (e *Evaluator) Evaluate(matrix *mat.Dense, weights []float64, impacts []Impact) ([]Result, error) {
	rows, cols := matrix.Dims()

	if len(weights) != cols {
		return nil, fmt.Errorf("%w: %d weights for %d criteria", ErrDimensionMismatch, len(weights), cols)
	}
	if len(impacts) != cols {
		return nil, fmt.Errorf("%w: %d impacts for %d criteria", ErrDimensionMismatch, len(impacts), cols)
	}
	for colIdx, impact := range impacts {
		if impact != Benefit && impact != Cost {
			return nil, fmt.Errorf("%w: impact %d", ErrInvalidImpact, colIdx+1)
		}
	}

	weighted, err := normalizeColumns(matrix)
	if err != nil {
		return nil, err
	}
	applyWeights(weighted, weights)

	idealBest, idealWorst := idealPoints(weighted, impacts)

	scores := make([]float64, rows)
	row := make([]float64, cols)
	for rowIdx := range rows {
		mat.Row(row, rowIdx, weighted)

		distBest := floats.Distance(row, idealBest, 2)
		distWorst := floats.Distance(row, idealWorst, 2)

		if distBest+distWorst == 0 {
			if e.degeneratePolicy == DegenerateError {
				return nil, fmt.Errorf("%w: row %d", ErrDegenerateScore, rowIdx+1)
			}
			scores[rowIdx] = 0.5
			continue
		}

		scores[rowIdx] = distWorst / (distBest + distWorst)
	}

	ranks := rankDescending(scores, e.tiePolicy)

	results := make([]Result, rows)
	for rowIdx := range rows {
		results[rowIdx] = Result{Score: scores[rowIdx], Rank: ranks[rowIdx]}
	}

	return results, nil
}

// applyWeights multiplies every column of the normalized matrix by its
// weight, in place.
func applyWeights(normalized *mat.Dense, weights []float64) {
	rows, cols := normalized.Dims()

	col := make([]float64, rows)
	for colIdx := range cols {
		mat.Col(col, colIdx, normalized)
		floats.Scale(weights[colIdx], col)
		normalized.SetCol(colIdx, col)
	}
}

// idealPoints returns the per-column ideal best and worst values of the
// weighted matrix. Benefit criteria take their maximum as best; cost
// criteria take their minimum.
func idealPoints(weighted *mat.Dense, impacts []Impact) (best, worst []float64) {
	rows, cols := weighted.Dims()

	best = make([]float64, cols)
	worst = make([]float64, cols)

	col := make([]float64, rows)
	for colIdx := range cols {
		mat.Col(col, colIdx, weighted)

		colMax := floats.Max(col)
		colMin := floats.Min(col)

		if impacts[colIdx] == Benefit {
			best[colIdx], worst[colIdx] = colMax, colMin
		} else {
			best[colIdx], worst[colIdx] = colMin, colMax
		}
	}

	return best, worst
}

// Evaluate runs a single evaluation with the default policies.
func Evaluate(matrix *mat.Dense, weights []float64, impacts []Impact) ([]Result, error) {
	return NewEvaluator().Evaluate(matrix, weights, impacts)
}
