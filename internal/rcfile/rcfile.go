// Package rcfile loads shell configuration files for scanning. The scanner
// itself never touches the filesystem; this is the boundary that reads,
// size-checks, and hands over plain text.
package rcfile

import (
	"fmt"
	"os"
	"path/filepath"

	"zrc/internal/config"
)

// File is a loaded configuration file.
type File struct {
	Path    string
	Content string
}

// Load reads the file at path after tilde expansion, enforcing the
// configured size cap so the scanner only ever sees bounded input.
func Load(path string) (*File, error) {
	return LoadMax(path, config.GetMaxFileSize())
}

// LoadMax reads the file at path, rejecting files larger than maxSize bytes.
func LoadMax(path string, maxSize int64) (*File, error) {
	expanded := config.ExpandTilde(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", abs)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%s is %d bytes, exceeds the %d byte limit", abs, info.Size(), maxSize)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", abs, err)
	}

	return &File{Path: abs, Content: string(data)}, nil
}
