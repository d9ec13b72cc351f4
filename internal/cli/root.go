// Package cli provides the command-line interface for topsis.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rankworks/topsis/internal/config"
	"github.com/rankworks/topsis/internal/tabular"
	"github.com/rankworks/topsis/internal/topsis"
)

var plotScores bool

// rootCmd is the single topsis command; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "topsis <input_file> <weights_csv> <impacts_csv> <output_file>",
	Short: "Rank alternatives with the TOPSIS multi-criteria decision method",
	Long: `Topsis ranks the rows of a tabular file by closeness to an ideal solution.

The input file's first column identifies each alternative; the remaining
columns are numeric criteria. Weights are comma-separated positive reals,
one per criterion. Impacts are comma-separated '+' (benefit, higher is
better) or '-' (cost, lower is better) tokens, one per criterion.

Supported formats for input and output, selected by suffix: .csv, .xlsx.
The output is the input table with 'Topsis Score' and 'Rank' appended.

Examples:
  topsis data.csv 1,1,2,1 +,+,-,+ result.csv
  topsis data.xlsx 0.25,0.25,0.5 +,-,+ result.xlsx --plot`,
	Args:          cobra.ExactArgs(4),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTopsis,
}

func init() {
	rootCmd.Flags().BoolVar(&plotScores, "plot", false, "print a terminal bar chart of the scores")
}

// Execute runs the CLI and returns the first error encountered.
func Execute() error {
	return rootCmd.Execute()
}

func runTopsis(cmd *cobra.Command, args []string) error {
	inputPath, weightsCSV, impactsCSV, outputPath := args[0], args[1], args[2], args[3]

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	evaluator, err := buildEvaluator(&cfg.EvaluatorEnvConfig)
	if err != nil {
		return err
	}

	weights, err := parseWeights(weightsCSV)
	if err != nil {
		return err
	}
	impacts, err := topsis.ParseImpacts(impactsCSV)
	if err != nil {
		return err
	}

	table, err := tabular.Load(inputPath)
	if err != nil {
		return err
	}
	log.Debug().
		Str("input", inputPath).
		Int("alternatives", len(table.Rows)).
		Int("criteria", table.NumCriteria()).
		Msg("loaded input table")

	matrix, err := table.DecisionMatrix()
	if err != nil {
		return err
	}

	results, err := evaluator.Evaluate(matrix, weights, impacts)
	if err != nil {
		return err
	}

	augmented, err := table.AppendResults(results)
	if err != nil {
		return err
	}
	if err := tabular.Write(outputPath, augmented); err != nil {
		return err
	}

	if plotScores {
		topsis.PlotScoresTerminal(os.Stdout, table.Labels(), results, "TOPSIS scores")
	}

	fmt.Printf("Output saved to %s\n", outputPath)
	return nil
}

func buildEvaluator(cfg *config.EvaluatorEnvConfig) (*topsis.Evaluator, error) {
	tiePolicy, err := cfg.ParseTiePolicy()
	if err != nil {
		return nil, err
	}
	degeneratePolicy, err := cfg.ParseDegeneratePolicy()
	if err != nil {
		return nil, err
	}

	return topsis.NewEvaluator(
		topsis.WithTiePolicy(tiePolicy),
		topsis.WithDegenerateScorePolicy(degeneratePolicy),
	), nil
}

// parseWeights converts a comma-separated list of positive reals.
func parseWeights(csv string) ([]float64, error) {
	tokens := strings.Split(csv, ",")
	weights := make([]float64, len(tokens))
	for i, token := range tokens {
		w, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %d: %q is not a number", i+1, token)
		}
		if w <= 0 {
			return nil, fmt.Errorf("weight %d: must be positive, got %v", i+1, w)
		}
		weights[i] = w
	}
	return weights, nil
}
