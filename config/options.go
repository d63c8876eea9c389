package config

import (
	"log/slog"

	"github.com/0xalexb/jsonconfig/config/keypath"
)

// Option configures node construction.
type Option func(*settings)

type settings struct {
	path     keypath.Path
	access   Access
	required []keypath.Path
	optional []keypath.Path
	logger   *slog.Logger
}

func newSettings(opts []Option) settings {
	var s settings

	for _, apply := range opts {
		apply(&s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// WithStrictAccess sets whether missing fields are errors (true) or resolve to nil (false).
func WithStrictAccess(strict bool) Option {
	return func(s *settings) {
		s.access = AccessFor(strict)
	}
}

// WithAccess sets the access mode directly, including AccessDefault.
func WithAccess(access Access) Option {
	return func(s *settings) {
		s.access = access
	}
}

// WithRequiredFields marks dotted paths that always fail when missing, whatever the access mode.
func WithRequiredFields(paths ...string) Option {
	return func(s *settings) {
		for _, path := range paths {
			s.required = append(s.required, keypath.Normalize(path))
		}
	}
}

// WithOptionalFields marks dotted paths that resolve to nil when missing, whatever the access mode.
func WithOptionalFields(paths ...string) Option {
	return func(s *settings) {
		for _, path := range paths {
			s.optional = append(s.optional, keypath.Normalize(path))
		}
	}
}

// WithRequiredPaths is WithRequiredFields for explicit segment lists.
func WithRequiredPaths(paths ...keypath.Path) Option {
	return func(s *settings) {
		s.required = append(s.required, paths...)
	}
}

// WithOptionalPaths is WithOptionalFields for explicit segment lists.
func WithOptionalPaths(paths ...keypath.Path) Option {
	return func(s *settings) {
		s.optional = append(s.optional, paths...)
	}
}

// WithLogger sets the logger used for warnings. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithPath sets the path of the node being built, relative to the document root.
// Root configurations leave it empty.
func WithPath(path keypath.Path) Option {
	return func(s *settings) {
		s.path = path.Clone()
	}
}
