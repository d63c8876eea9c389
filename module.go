package jsonconfig

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/jsonconfig/config"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when a module is created without a name.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module that parses filename with builder and
// provides the result as a *config.Config tagged `name:"<name>"`.
// A nil builder uses NewBuilder defaults.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, filename string, builder *Builder) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if builder == nil {
		builder = NewBuilder()
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*config.Config, error) {
					cfg, err := builder.ParseConfig(filename)
					if err != nil {
						return nil, fmt.Errorf("loading config %q: %w", name, err)
					}

					builder.options.Logger.Info("config loaded",
						slog.String("name", name),
						slog.String("file", filename),
					)

					return cfg, nil
				},
				fx.ResultTags(tag),
			),
		),
	)
}

// ProvideSection returns an Fx option that binds the section at path of the
// config named name into a *T, running its Defaulter and Validator hooks.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func ProvideSection[T any](name, path string) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(cfg *config.Config) (*T, error) {
				return config.Provider(new(T), path)(cfg)
			},
			fx.ParamTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	)
}
