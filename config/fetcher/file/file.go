package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathIsDirectory is returned when the fetcher path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrEmptyPath is returned when the fetcher is created without a file name.
var ErrEmptyPath = errors.New("empty file path")

// Fetcher implements config.DataFetcher for documents stored on disk.
// The file is read on every Fetch, so edits made between loads are picked up.
type Fetcher struct {
	filepath string
}

// NewFetcher validates fpath and returns a Fetcher for it.
func NewFetcher(fpath string) (*Fetcher, error) {
	if fpath == "" {
		return nil, ErrEmptyPath
	}

	return &Fetcher{filepath: filepath.Clean(fpath)}, nil
}

// Path returns the cleaned file path.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Format returns the lowercase file extension without the leading dot,
// for example "json" or "yml".
func (f *Fetcher) Format() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.filepath)), ".")
}

// Fetch reads the whole file.
func (f *Fetcher) Fetch() ([]byte, error) {
	stat, err := os.Stat(f.filepath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned and supplied by the caller
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	return data, nil
}
