// Package dotenv reads .env files into KEY=VALUE environment entries.
//
// The entries have the same shape as os.Environ, so they can be passed
// straight to config.Node.MergeWithEnv:
//
//	environ, err := dotenv.NewFetcher(".env", ".env.local").Environ()
//	if err != nil {
//	    return err
//	}
//	err = cfg.MergeWithEnv("APP", environ)
package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"github.com/joho/godotenv"
)

// Fetcher reads one or more .env files.
type Fetcher struct {
	files         []string
	ignoreMissing bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithIgnoreMissing skips files that do not exist instead of failing.
func WithIgnoreMissing(ignore bool) Option {
	return func(f *Fetcher) {
		f.ignoreMissing = ignore
	}
}

// NewFetcher creates a Fetcher for files. Without files it reads ".env"
// from the working directory.
func NewFetcher(files []string, opts ...Option) *Fetcher {
	fetcher := &Fetcher{files: slices.Clone(files)}
	if len(fetcher.files) == 0 {
		fetcher.files = []string{".env"}
	}

	for _, opt := range opts {
		opt(fetcher)
	}

	return fetcher
}

// Read returns the variables of all files. A variable defined in a later
// file replaces the same variable from an earlier one.
func (f *Fetcher) Read() (map[string]string, error) {
	variables := make(map[string]string)

	for _, file := range f.files {
		values, err := godotenv.Read(file)
		if err != nil {
			if f.ignoreMissing && errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("reading env file %q: %w", file, err)
		}

		maps.Copy(variables, values)
	}

	return variables, nil
}

// Environ returns the variables as sorted KEY=VALUE entries.
func (f *Fetcher) Environ() ([]string, error) {
	variables, err := f.Read()
	if err != nil {
		return nil, err
	}

	environ := make([]string, 0, len(variables))
	for _, name := range slices.Sorted(maps.Keys(variables)) {
		environ = append(environ, name+"="+variables[name])
	}

	return environ, nil
}
