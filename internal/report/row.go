// Package report renders parsed result files as a score table.
package report

import (
	"strconv"

	"github.com/lehigh-university-libraries/lcscores/internal/curve"
	"github.com/lehigh-university-libraries/lcscores/internal/resultfile"
)

// MetadataColumns precede the score columns in every row.
var MetadataColumns = []string{
	"model.id",
	"corpus",
	"data.id",
	"function.states",
	"content.states",
	"states",
}

// ScoreColumns name the values on a score line, in order.
var ScoreColumns = []string{
	"f1to1", "fmto1", "r1to1", "rmto1",
	"fprecision", "frecall", "ffscore", "fvi",
	"rprecision", "rrecall", "rfscore", "rvi",
}

// Header returns the full column list.
func Header() []string {
	header := make([]string, 0, len(MetadataColumns)+len(ScoreColumns))
	header = append(header, MetadataColumns...)
	return append(header, ScoreColumns...)
}

// Row is one line of the report.
type Row struct {
	Model          string   `yaml:"model"`
	Corpus         string   `yaml:"corpus"`
	DataID         int      `yaml:"data_id"`
	FunctionStates string   `yaml:"function_states"`
	ContentStates  string   `yaml:"content_states"`
	States         int      `yaml:"states"`
	Scores         []string `yaml:"scores,flow"`
}

// NewRow joins a parsed record with its rank from table.
func NewRow(table curve.RankTable, rec *resultfile.Record) (Row, error) {
	rank, err := table.Lookup(rec.Name.Corpus, rec.Name.Label)
	if err != nil {
		return Row{}, err
	}

	return Row{
		Model:          rec.Name.Model,
		Corpus:         rec.Name.Corpus,
		DataID:         rank,
		FunctionStates: rec.Name.FunctionStates,
		ContentStates:  rec.Name.ContentStates,
		States:         rec.States,
		Scores:         rec.Scores,
	}, nil
}

// Fields flattens the row in header order. Scores are passed through untouched.
func (r Row) Fields() []string {
	fields := []string{
		r.Model,
		r.Corpus,
		strconv.Itoa(r.DataID),
		r.FunctionStates,
		r.ContentStates,
		strconv.Itoa(r.States),
	}
	return append(fields, r.Scores...)
}
