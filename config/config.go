package config

import (
	"fmt"
	"log/slog"
)

// Parser decodes raw document bytes into an ordered mapping.
//
// The path parameter selects a sub-document using dotted segments, for
// example "database.connection". An empty path returns the whole document.
type Parser interface {
	Parse(data []byte, path string) (Mapping, error)
}

// DataFetcher reads raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating bound configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in bound configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Load fetches, parses and builds a root configuration.
func Load(parser Parser, fetcher DataFetcher, opts ...Option) (*Config, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	doc, err := parser.Parse(data, "")
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return New(doc, opts...), nil
}

// Provider returns a function that binds the section at path into target,
// sets defaults, and validates it. An empty path binds the whole configuration.
func Provider[T any](target *T, path string) func(*Config) (*T, error) {
	return func(cfg *Config) (*T, error) {
		node := cfg.Node

		if path != "" {
			value, err := cfg.Get(path)
			if err != nil {
				return nil, fmt.Errorf("resolving section: %w", err)
			}

			section, ok := value.(*Node)
			if !ok {
				return nil, fmt.Errorf("%w: section %q holds %T", ErrNotNode, path, value)
			}

			node = section
		}

		err := node.Decode(target)
		if err != nil {
			return nil, fmt.Errorf("binding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				node.logger.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
