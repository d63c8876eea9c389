package jsonconfig

import (
	"log/slog"
	"os"

	"github.com/0xalexb/jsonconfig/config"
	"github.com/0xalexb/jsonconfig/schema"
)

// Options holds the settings a Builder applies to every document it builds.
type Options struct {
	Access         config.Access
	RequiredFields []string
	OptionalFields []string
	EnvPrefix      string
	DotEnvFiles    []string
	Environ        func() []string
	Schema         *schema.Validator
	Logger         *slog.Logger
}

// Option defines a function type for applying builder options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Access:  config.AccessDefault,
		Environ: os.Environ,
		Logger:  slog.Default(),
	}
}

// WithStrictAccess sets whether missing fields fail (true) or resolve to nil (false).
func WithStrictAccess(strict bool) Option {
	return func(opts *Options) {
		opts.Access = config.AccessFor(strict)
	}
}

// WithRequiredFields marks dotted field paths that always fail when missing.
func WithRequiredFields(paths ...string) Option {
	return func(opts *Options) {
		opts.RequiredFields = append(opts.RequiredFields, paths...)
	}
}

// WithOptionalFields marks dotted field paths that resolve to nil when missing.
func WithOptionalFields(paths ...string) Option {
	return func(opts *Options) {
		opts.OptionalFields = append(opts.OptionalFields, paths...)
	}
}

// WithEnvPrefix merges environment variables named PREFIX_<PATH> into every
// built configuration. An empty prefix disables the merge.
func WithEnvPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.EnvPrefix = prefix
	}
}

// WithDotEnvFiles reads variables from .env files before the process
// environment. Missing files are skipped. Requires WithEnvPrefix.
func WithDotEnvFiles(files ...string) Option {
	return func(opts *Options) {
		opts.DotEnvFiles = append(opts.DotEnvFiles, files...)
	}
}

// WithEnviron replaces os.Environ as the source of process variables.
func WithEnviron(environ func() []string) Option {
	return func(opts *Options) {
		if environ != nil {
			opts.Environ = environ
		}
	}
}

// WithSchema validates every raw document against validator before the
// configuration tree is built.
func WithSchema(validator *schema.Validator) Option {
	return func(opts *Options) {
		opts.Schema = validator
	}
}

// WithLogger sets the logger used by the builder and the built configuration.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}
