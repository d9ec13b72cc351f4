package topsis

// Result is the outcome for a single alternative (row).
type Result struct {
	Score float64 // relative closeness to the ideal solution, in [0,1]
	Rank  int     // 1 = best
}

// TiePolicy selects how equal scores are ranked.
type TiePolicy int

const (
	// TieDense gives rows with identical scores the same rank; the next
	// distinct score takes the next consecutive rank (1,1,2).
	TieDense TiePolicy = iota
	// TieOrdinal gives every row a unique rank; exact ties keep their
	// original row order (1,2,3).
	TieOrdinal
)

// DegeneratePolicy selects what happens when a row is equidistant from
// both ideal points at distance zero, making the score 0/0.
type DegeneratePolicy int

const (
	// DegenerateMidpoint defines the 0/0 score as 0.5.
	DegenerateMidpoint DegeneratePolicy = iota
	// DegenerateError surfaces ErrDegenerateScore instead.
	DegenerateError
)
