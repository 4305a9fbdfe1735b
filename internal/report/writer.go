package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Writer receives the header once and then every row of a report.
type Writer interface {
	WriteHeader() error
	WriteRow(Row) error
	Flush() error
}

// NewWriter returns the Writer for format.
func NewWriter(format string, out io.Writer) (Writer, error) {
	switch format {
	case FormatCSV:
		return NewCSVWriter(out), nil
	case FormatYAML:
		return NewYAMLWriter(out), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// LineWriter writes fields joined by commas, one line per call, with no quoting.
// Fields are expected to be comma-free.
type LineWriter struct {
	w *bufio.Writer
}

func NewLineWriter(out io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(out)}
}

// WriteLine writes and flushes one line so lines already emitted survive a later failure.
func (l *LineWriter) WriteLine(fields []string) error {
	if _, err := l.w.WriteString(strings.Join(fields, ",")); err != nil {
		return err
	}
	if err := l.w.WriteByte('\n'); err != nil {
		return err
	}
	return l.w.Flush()
}

// CSVWriter streams rows as comma-separated lines.
type CSVWriter struct {
	w *LineWriter
}

func NewCSVWriter(out io.Writer) *CSVWriter {
	return &CSVWriter{w: NewLineWriter(out)}
}

func (c *CSVWriter) WriteHeader() error {
	return c.w.WriteLine(Header())
}

func (c *CSVWriter) WriteRow(row Row) error {
	return c.w.WriteLine(row.Fields())
}

func (c *CSVWriter) Flush() error {
	return c.w.w.Flush()
}

// YAMLWriter buffers rows and encodes a single document on Flush.
type YAMLWriter struct {
	out io.Writer
	doc yamlReport
}

type yamlReport struct {
	ScoreColumns []string `yaml:"score_columns,flow"`
	Rows         []Row    `yaml:"rows"`
}

func NewYAMLWriter(out io.Writer) *YAMLWriter {
	return &YAMLWriter{out: out}
}

func (y *YAMLWriter) WriteHeader() error {
	y.doc.ScoreColumns = ScoreColumns
	y.doc.Rows = make([]Row, 0)
	return nil
}

func (y *YAMLWriter) WriteRow(row Row) error {
	y.doc.Rows = append(y.doc.Rows, row)
	return nil
}

func (y *YAMLWriter) Flush() error {
	encoder := yaml.NewEncoder(y.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(&y.doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
