package resultfile

import (
	"fmt"
	"os"
)

// List returns the names of the regular files in dir, sorted by name.
// Directories, symlinks and other special files are left out.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}
