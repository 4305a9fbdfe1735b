package resultfile

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// scoreLine matches a line made only of decimal fractions such as "0.91 0.87 0.5".
// RE2's \s leaves out vertical tab, so it is listed explicitly.
var scoreLine = regexp.MustCompile(`^(0\.\d+[\s\v]*)+$`)

// Result files can carry very long diagnostic lines.
const maxLineSize = 10 * 1024 * 1024

// FindScoreLine returns the tokens of the first score line in r.
// The bool is false when r holds no such line.
func FindScoreLine(r io.Reader) ([]string, bool, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if scoreLine.MatchString(line) {
			return strings.Fields(line), true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to scan lines: %w", err)
	}

	return nil, false, nil
}
