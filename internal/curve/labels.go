// Package curve maps learning-curve size labels to ordinal ranks per corpus.
package curve

import (
	"errors"
	"fmt"
)

// Full is the label of runs trained on the complete corpus.
const Full = "full"

// Labels is the reference ordering of learning-curve sizes. A label's rank is its index.
var Labels = [...]string{
	"learningcurve0008",
	"learningcurve0016",
	"learningcurve0032",
	"learningcurve0064",
	"learningcurve0128",
	"learningcurve0256",
	"learningcurve0512",
	"learningcurve1024",
}

// ErrUnknownLabel reports a size label missing from Labels.
var ErrUnknownLabel = errors.New("unknown data size label")

// Rank returns the position of label in Labels.
func Rank(label string) (int, error) {
	for i, l := range Labels {
		if l == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
}
