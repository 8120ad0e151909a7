package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Discover scans a directory for supported document files and returns their
// paths in sorted order. Subdirectories are not descended into.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read documents directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsSupportedExtension(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
