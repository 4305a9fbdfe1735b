package cmd

import (
	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/lcscores/internal/scorecmd"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	opts := &scorecmd.Options{}

	cmd := &cobra.Command{
		Use:   "lcscores <results-dir>",
		Short: "Collect learning-curve evaluation scores into a CSV report",
		Long: `lcscores reads a directory of model evaluation result files and writes one
CSV row per file that contains a score line.

Result files are named <corpus>.<...>.<function-states>.<content-states>.<model>.<size>.<ext>,
where <size> is a learning-curve label such as learningcurve0032 or "full".
Each size label is converted to an ordinal data.id per corpus.`,
		Example: `  # Write the report to a file
  lcscores ./results > scores.csv

  # Inspect the same rows as YAML with debug logging
  lcscores ./results --format yaml --verbose`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return opts.Setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := scorecmd.ExecuteReport(cmd.Context(), args[0], opts.Config, cmd.OutOrStdout())
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "Output format: csv or yaml (default from LCSCORES_FORMAT, else csv)")
	cmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Verbose logging")

	cmd.AddCommand(scorecmd.NewRanksCmd(opts))

	return cmd
}
