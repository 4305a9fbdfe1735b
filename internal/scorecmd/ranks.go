package scorecmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/lehigh-university-libraries/lcscores/internal/config"
	"github.com/lehigh-university-libraries/lcscores/internal/curve"
	"github.com/lehigh-university-libraries/lcscores/internal/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewRanksCmd creates the ranks command
func NewRanksCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranks <results-dir>",
		Short: "Show the data.id assigned to every size label",
		Long: `Index a results directory and print the rank of each learning-curve
size label per corpus, including the synthetic "full" rank.

Useful for checking how data.id values in a report were derived.`,
		Example: `  # Print ranks as CSV
  lcscores ranks ./results

  # Print ranks as YAML
  lcscores ranks ./results --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRanks(cmd.Context(), args[0], opts.Config, cmd.OutOrStdout())
		},
	}

	return cmd
}

type labelRank struct {
	Label string
	Rank  int
}

func executeRanks(ctx context.Context, dir string, cfg *config.Config, out io.Writer) error {
	resultsDir, err := config.ResolveDir(dir)
	if err != nil {
		return err
	}

	table, err := curve.BuildIndex(ctx, resultsDir)
	if err != nil {
		return fmt.Errorf("failed to index results: %w", err)
	}

	switch cfg.Format {
	case report.FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(table); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	case report.FormatCSV:
		return writeRanksCSV(table, out)
	default:
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}

func writeRanksCSV(table curve.RankTable, out io.Writer) error {
	writer := report.NewLineWriter(out)

	if err := writer.WriteLine([]string{"corpus", "label", "data.id"}); err != nil {
		return err
	}

	for _, corpus := range table.Corpora() {
		for _, lr := range sortedRanks(table[corpus]) {
			if err := writer.WriteLine([]string{corpus, lr.Label, strconv.Itoa(lr.Rank)}); err != nil {
				return err
			}
		}
	}

	return nil
}

// sortedRanks orders labels by rank, so "full" comes last.
func sortedRanks(ranks map[string]int) []labelRank {
	out := make([]labelRank, 0, len(ranks))
	for label, rank := range ranks {
		out = append(out, labelRank{Label: label, Rank: rank})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Label < out[j].Label
	})
	return out
}
