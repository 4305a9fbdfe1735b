package scorecmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lehigh-university-libraries/lcscores/internal/config"
	"github.com/lehigh-university-libraries/lcscores/internal/curve"
	"github.com/lehigh-university-libraries/lcscores/internal/report"
	"github.com/lehigh-university-libraries/lcscores/internal/resultfile"
)

// Summary counts what a report run did.
type Summary struct {
	Files   int
	Rows    int
	Skipped int
}

// ExecuteReport indexes the size labels in dir, then writes one row per
// result file that carries a score line.
func ExecuteReport(ctx context.Context, dir string, cfg *config.Config, out io.Writer) (*Summary, error) {
	resultsDir, err := config.ResolveDir(dir)
	if err != nil {
		return nil, err
	}

	slog.Info("Indexing size labels", "dir", resultsDir)
	table, err := curve.BuildIndex(ctx, resultsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to index results: %w", err)
	}
	slog.Debug("Index built", "corpora", len(table))

	writer, err := report.NewWriter(cfg.Format, out)
	if err != nil {
		return nil, err
	}
	if err := writer.WriteHeader(); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	names, err := resultfile.List(resultsDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Files++

		rec, err := resultfile.Read(resultsDir, name)
		if err != nil {
			return summary, err
		}
		if rec == nil {
			summary.Skipped++
			slog.Debug("No score line", "file", name)
			continue
		}

		if len(rec.Scores) != len(report.ScoreColumns) {
			slog.Warn("Score count does not match header", "file", name, "scores", len(rec.Scores), "columns", len(report.ScoreColumns))
		}

		row, err := report.NewRow(table, rec)
		if err != nil {
			return summary, fmt.Errorf("%s: %w", name, err)
		}
		if err := writer.WriteRow(row); err != nil {
			return summary, fmt.Errorf("failed to write row for %s: %w", name, err)
		}
		summary.Rows++
	}

	if err := writer.Flush(); err != nil {
		return summary, fmt.Errorf("failed to write report: %w", err)
	}

	slog.Info("Report complete", "files", summary.Files, "rows", summary.Rows, "skipped", summary.Skipped)
	return summary, nil
}
