package topsis

import "sort"

// rankDescending assigns ranks so that the highest score gets rank 1.
// Dense ranking shares a rank across exact ties and never skips; ordinal
// ranking numbers rows 1..n with ties broken by original row order.
func rankDescending(scores []float64, policy TiePolicy) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	ranks := make([]int, len(scores))

	switch policy {
	case TieOrdinal:
		for pos, rowIdx := range order {
			ranks[rowIdx] = pos + 1
		}
	default:
		rank := 0
		for pos, rowIdx := range order {
			if pos == 0 || scores[rowIdx] != scores[order[pos-1]] {
				rank++
			}
			ranks[rowIdx] = rank
		}
	}

	return ranks
}
