package resultfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Record is everything the report needs from one result file.
type Record struct {
	File   string
	Name   Name
	States int
	Scores []string
}

// Read parses the result file called name inside dir.
// It returns nil without an error when the file has no score line.
func Read(dir, name string) (*Record, error) {
	parsed, err := ParseName(name)
	if err != nil {
		return nil, err
	}

	states, err := parsed.States()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	file, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open result file: %w", err)
	}
	defer file.Close()

	scores, found, err := FindScoreLine(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if !found {
		return nil, nil
	}

	return &Record{
		File:   name,
		Name:   parsed,
		States: states,
		Scores: scores,
	}, nil
}
