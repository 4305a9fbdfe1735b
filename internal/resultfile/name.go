package resultfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinFields is the smallest number of dot-separated fields a result file name can carry.
const MinFields = 5

var (
	// ErrMalformedFilename reports a file name with fewer than MinFields fields.
	ErrMalformedFilename = errors.New("malformed result filename")
	// ErrInvalidStateCount reports a state count field that is not an integer.
	ErrInvalidStateCount = errors.New("invalid state count")
)

// Name holds the metadata encoded in a result file name such as
// corpus.run.<function-states>.<content-states>.<model>.<size-label>.out
type Name struct {
	Corpus         string
	FunctionStates string
	ContentStates  string
	Model          string
	Label          string
}

// ParseName splits a file name on "." and reads the fields by position,
// counting back from the end for everything except the corpus.
func ParseName(filename string) (Name, error) {
	fields := strings.Split(filename, ".")
	n := len(fields)
	if n < MinFields {
		return Name{}, fmt.Errorf("%w: %q has %d fields, need at least %d", ErrMalformedFilename, filename, n, MinFields)
	}

	return Name{
		Corpus:         fields[0],
		FunctionStates: fields[n-5],
		ContentStates:  fields[n-4],
		Model:          fields[n-3],
		Label:          fields[n-2],
	}, nil
}

// States returns the sum of the function and content state counts.
func (n Name) States() (int, error) {
	fn, err := strconv.Atoi(n.FunctionStates)
	if err != nil {
		return 0, fmt.Errorf("%w: function states %q", ErrInvalidStateCount, n.FunctionStates)
	}
	cn, err := strconv.Atoi(n.ContentStates)
	if err != nil {
		return 0, fmt.Errorf("%w: content states %q", ErrInvalidStateCount, n.ContentStates)
	}
	return fn + cn, nil
}
