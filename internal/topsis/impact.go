package topsis

import (
	"fmt"
	"strings"
)

// Impact is the direction of a criterion.
type Impact int

const (
	// Benefit means higher raw values are better.
	Benefit Impact = iota
	// Cost means lower raw values are better.
	Cost
)

func (im Impact) String() string {
	switch im {
	case Benefit:
		return "+"
	case Cost:
		return "-"
	default:
		return fmt.Sprintf("Impact(%d)", int(im))
	}
}

// ParseImpact converts a single token to an Impact.
func ParseImpact(token string) (Impact, error) {
	switch token {
	case "+":
		return Benefit, nil
	case "-":
		return Cost, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidImpact, token)
	}
}

// ParseImpacts converts a comma-separated impact list, e.g. "+,-,+".
func ParseImpacts(csv string) ([]Impact, error) {
	tokens := strings.Split(csv, ",")
	impacts := make([]Impact, len(tokens))
	for i, token := range tokens {
		impact, err := ParseImpact(strings.TrimSpace(token))
		if err != nil {
			return nil, fmt.Errorf("impact %d: %w", i+1, err)
		}
		impacts[i] = impact
	}
	return impacts, nil
}
