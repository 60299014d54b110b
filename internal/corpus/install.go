package corpus

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

//go:embed defaults/*.txt
var defaults embed.FS

// DefaultNames lists the bundled corpus resources.
func DefaultNames() []string {
	entries, err := fs.ReadDir(defaults, "defaults")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// Install writes the bundled corpora into dir. Existing files are left alone
// unless force is set. It returns the paths that were written.
func Install(dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create corpus dir: %w", err)
	}
	var written []string
	for _, name := range DefaultNames() {
		outPath := filepath.Join(dir, name)
		if !force {
			if _, err := os.Stat(outPath); err == nil {
				continue
			} else if !os.IsNotExist(err) {
				return written, fmt.Errorf("failed to stat corpus: %w", err)
			}
		}
		data, err := defaults.ReadFile("defaults/" + name)
		if err != nil {
			return written, fmt.Errorf("failed to read bundled %s: %w", name, err)
		}
		if err := writeFileAtomic(outPath, data); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		written = append(written, outPath)
	}
	return written, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "corpus-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp corpus: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write corpus: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close corpus: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write corpus: %w", err)
	}
	return nil
}
