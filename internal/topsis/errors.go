package topsis

import "errors"

// Sentinel errors returned by Evaluate. Callers match with errors.Is;
// the evaluator wraps them with the offending dimension or column.
var (
	ErrDimensionMismatch = errors.New("topsis: weights/impacts length must equal criteria count")
	ErrInvalidImpact     = errors.New("topsis: impact must be '+' or '-'")
	ErrDegenerateColumn  = errors.New("topsis: column has zero Euclidean norm")
	ErrDegenerateScore   = errors.New("topsis: row is at zero distance from both ideal points")
)
