package topsis

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// PlotScoresTerminal renders a horizontal bar chart of the scores to w,
// best rank first. labels carries the identifier column; when shorter
// than results the row number is used instead.
func PlotScoresTerminal(w io.Writer, labels []string, results []Result, title string) {
	type rankedRow struct {
		Label  string
		Result Result
	}

	rows := make([]rankedRow, len(results))
	for i, res := range results {
		label := fmt.Sprintf("row %d", i+1)
		if i < len(labels) {
			label = labels[i]
		}
		rows[i] = rankedRow{Label: label, Result: res}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Result.Rank < rows[j].Result.Rank
	})

	const maxBarWidth = 50

	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintln(w, "Rank | Alternative          | Score    | Bar")
	fmt.Fprintln(w, "-----|----------------------|----------|"+strings.Repeat("-", maxBarWidth))

	for _, row := range rows {
		barWidth := int(row.Result.Score * float64(maxBarWidth))

		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}

		fmt.Fprintf(w, "%4d | %-20s | %.6f | %s\n", row.Result.Rank, row.Label, row.Result.Score, bar)
	}
}
