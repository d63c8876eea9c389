package jsonconfig

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/0xalexb/jsonconfig/config"
	"github.com/0xalexb/jsonconfig/config/fetcher/dotenv"
	filefetcher "github.com/0xalexb/jsonconfig/config/fetcher/file"
	jsonparser "github.com/0xalexb/jsonconfig/config/parser/json"
	tomlparser "github.com/0xalexb/jsonconfig/config/parser/toml"
	yamlparser "github.com/0xalexb/jsonconfig/config/parser/yaml"
	"github.com/0xalexb/jsonconfig/validators"
)

var (
	// ErrSchemaValidation is returned when a document does not match the configured schema.
	ErrSchemaValidation = errors.New("schema validation failed")
	// ErrValidation is returned when a field value is rejected by its validator.
	ErrValidation = errors.New("invalid config field value")
	// ErrTransform is returned when a field transformer fails.
	ErrTransform = errors.New("config field transformation failed")
	// ErrUnsupportedFormat is returned by ParseConfig for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)

// TransformFunc replaces a field value with a derived one.
type TransformFunc func(value any) (any, error)

// Builder turns documents into configurations. It validates the raw
// document against an optional schema, builds the tree, merges environment
// variables, then checks field types, checks field values and finally
// transforms field values, in that order.
//
// A Builder is not safe for concurrent rule registration.
type Builder struct {
	options    Options
	types      rules[reflect.Type]
	values     rules[validators.Func]
	transforms rules[TransformFunc]
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...Option) *Builder {
	options := defaultOptions()

	for _, apply := range opts {
		apply(&options)
	}

	return &Builder{options: options}
}

// ValidateFieldType requires the value at path to be assignable to fieldType.
func (b *Builder) ValidateFieldType(path string, fieldType reflect.Type) *Builder {
	b.types.set(path, fieldType)

	return b
}

// ValidateFieldValue requires the value at path to pass validate.
func (b *Builder) ValidateFieldValue(path string, validate validators.Func) *Builder {
	b.values.set(path, validate)

	return b
}

// TransformFieldValue replaces the value at path with the result of transform.
func (b *Builder) TransformFieldValue(path string, transform TransformFunc) *Builder {
	b.transforms.set(path, transform)

	return b
}

// ParseConfig reads filename and builds a configuration from it. The parser
// is chosen from the extension: .json, .yaml, .yml or .toml.
func (b *Builder) ParseConfig(filename string) (*config.Config, error) {
	fetcher, err := filefetcher.NewFetcher(filename)
	if err != nil {
		return nil, fmt.Errorf("creating fetcher: %w", err)
	}

	parser, err := ParserFor(fetcher.Format())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, filename)
	}

	return b.Load(parser, fetcher)
}

// ParserFor returns the parser registered for a file format such as "json".
//
//nolint:ireturn // parsers are selected at runtime
func ParserFor(format string) (config.Parser, error) {
	switch format {
	case "json":
		return jsonparser.NewParser(), nil
	case "yaml", "yml":
		return yamlparser.NewParser(), nil
	case "toml":
		return tomlparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

// Load fetches and parses a document, then builds it.
func (b *Builder) Load(parser config.Parser, fetcher config.DataFetcher) (*config.Config, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	doc, err := parser.Parse(data, "")
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return b.Build(doc)
}

// Build validates doc and turns it into a configuration.
func (b *Builder) Build(doc config.Mapping) (*config.Config, error) {
	logger := b.options.Logger

	if b.options.Schema != nil {
		err := b.options.Schema.Validate(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaValidation, err)
		}

		logger.Debug("schema validation passed")
	}

	cfg := config.New(doc,
		config.WithAccess(b.options.Access),
		config.WithRequiredFields(b.options.RequiredFields...),
		config.WithOptionalFields(b.options.OptionalFields...),
		config.WithLogger(logger),
	)

	err := b.mergeEnv(cfg)
	if err != nil {
		return nil, err
	}

	for _, stage := range []func(*config.Config) error{b.validateTypes, b.validateValues, b.transformValues} {
		err = stage(cfg)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("config built",
		slog.Int("type_rules", b.types.len()),
		slog.Int("value_rules", b.values.len()),
		slog.Int("transforms", b.transforms.len()),
	)

	return cfg, nil
}

func (b *Builder) mergeEnv(cfg *config.Config) error {
	prefix := b.options.EnvPrefix
	if prefix == "" {
		return nil
	}

	if len(b.options.DotEnvFiles) > 0 {
		environ, err := dotenv.NewFetcher(b.options.DotEnvFiles, dotenv.WithIgnoreMissing(true)).Environ()
		if err != nil {
			return fmt.Errorf("reading env files: %w", err)
		}

		err = cfg.MergeWithEnv(prefix, environ)
		if err != nil {
			return err
		}
	}

	err := cfg.MergeWithEnv(prefix, b.options.Environ())
	if err != nil {
		return err
	}

	b.options.Logger.Info("environment variables merged", slog.String("prefix", prefix))

	return nil
}

func (b *Builder) validateTypes(cfg *config.Config) error {
	return b.types.each(func(path string, fieldType reflect.Type) error {
		value, err := lookup(cfg, path)
		if err != nil {
			return err
		}

		if !isInstance(value, fieldType) {
			return fmt.Errorf("%w: config field %q with value %v is not of type %s",
				config.ErrTypeMismatch, path, value, fieldType)
		}

		return nil
	})
}

// isInstance reports whether value can be held by a variable of fieldType.
// nil only satisfies interface types.
func isInstance(value any, fieldType reflect.Type) bool {
	if value == nil {
		return fieldType.Kind() == reflect.Interface
	}

	return reflect.TypeOf(value).AssignableTo(fieldType)
}

func (b *Builder) validateValues(cfg *config.Config) error {
	return b.values.each(func(path string, validate validators.Func) error {
		value, err := lookup(cfg, path)
		if err != nil {
			return err
		}

		ok, message := validate(value)
		if ok {
			return nil
		}

		if message != "" {
			return fmt.Errorf("%w: config field %q contains invalid value %v: %s", ErrValidation, path, value, message)
		}

		return fmt.Errorf("%w: config field %q contains invalid value %v", ErrValidation, path, value)
	})
}

func (b *Builder) transformValues(cfg *config.Config) error {
	return b.transforms.each(func(path string, transform TransformFunc) error {
		value, err := lookup(cfg, path)
		if err != nil {
			return err
		}

		transformed, err := transform(value)
		if err != nil {
			return fmt.Errorf("%w: config field %q with value %v: %w", ErrTransform, path, value, err)
		}

		err = cfg.Update(path, transformed, true)
		if err != nil {
			return fmt.Errorf("updating config field %q: %w", path, err)
		}

		return nil
	})
}

func lookup(cfg *config.Config, path string) (any, error) {
	value, err := cfg.Get(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config field %q: %w", path, err)
	}

	return value, nil
}
