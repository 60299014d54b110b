// Package corpus loads line-delimited practice texts and word lists.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/typit/internal/apperr"
)

// Load reads one entry per line from path, skipping empty lines.
// A file that cannot be opened yields no entries and an error wrapping
// apperr.ErrResourceUnavailable.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open file: %s: %v", apperr.ErrResourceUnavailable, path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only corpus.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// Dir resolves corpus resource names inside a directory.
type Dir struct {
	Root string
}

// Load reads the named resource from the directory.
func (d Dir) Load(name string) ([]string, error) {
	return Load(d.Path(name))
}

// Path returns the file path for a resource name.
func (d Dir) Path(name string) string {
	return filepath.Join(d.Root, name)
}
