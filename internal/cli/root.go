// Package cli implements the jsonconfig command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/0xalexb/jsonconfig"
	"github.com/0xalexb/jsonconfig/config"
	"github.com/0xalexb/jsonconfig/logging"
	"github.com/0xalexb/jsonconfig/schema"
)

type rootFlags struct {
	logLevel   string
	logFormat  string
	envPrefix  string
	dotEnv     []string
	schemaFile string
	lenient    bool
	required   []string
	optional   []string
}

// NewRootCommand builds the command tree. Command output goes to out,
// logs go to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	flags := &rootFlags{}

	var logger *slog.Logger

	rootCmd := &cobra.Command{
		Use:   "jsonconfig",
		Short: "Inspect hierarchical configuration documents",
		Long: `jsonconfig loads JSON, YAML or TOML configuration files into a
configuration tree, optionally merges environment variables and validates
the document against a JSON Schema, then prints what it found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loggerConfig := logging.LoggerConfig{Level: flags.logLevel, Format: flags.logFormat}

			err := logging.ValidateConfig(loggerConfig)
			if err != nil {
				return err
			}

			logger = logging.NewLogger(loggerConfig, errOut)

			return nil
		},
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	persistent.StringVar(&flags.logFormat, "log-format", logging.FormatText, "Log format: json or text")
	persistent.StringVar(&flags.envPrefix, "env-prefix", "", "Merge environment variables named PREFIX_<PATH>")
	persistent.StringSliceVar(&flags.dotEnv, "dotenv", nil, "Read variables from .env files before the environment")
	persistent.StringVar(&flags.schemaFile, "schema", "", "Validate the document against a JSON Schema file")
	persistent.BoolVar(&flags.lenient, "lenient", false, "Resolve missing fields to null instead of failing")
	persistent.StringSliceVar(&flags.required, "required", nil, "Fields that always fail when missing")
	persistent.StringSliceVar(&flags.optional, "optional", nil, "Fields that resolve to null when missing")

	load := func(filename string) (*config.Config, error) {
		return flags.load(filename, logger)
	}

	rootCmd.AddCommand(
		newGetCommand(load),
		newKeysCommand(load),
		newDumpCommand(load),
		newValidateCommand(load),
		newEnvPathCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

// Execute runs the command tree with args.
func Execute(args []string, out, errOut io.Writer) error {
	rootCmd := NewRootCommand(out, errOut)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

type loader func(filename string) (*config.Config, error)

func (f *rootFlags) load(filename string, logger *slog.Logger) (*config.Config, error) {
	opts := []jsonconfig.Option{
		jsonconfig.WithLogger(logger),
		jsonconfig.WithStrictAccess(!f.lenient),
		jsonconfig.WithRequiredFields(f.required...),
		jsonconfig.WithOptionalFields(f.optional...),
		jsonconfig.WithEnvPrefix(f.envPrefix),
		jsonconfig.WithDotEnvFiles(f.dotEnv...),
	}

	if f.schemaFile != "" {
		validator, err := schema.CompileFile(f.schemaFile)
		if err != nil {
			return nil, fmt.Errorf("loading schema: %w", err)
		}

		opts = append(opts, jsonconfig.WithSchema(validator))
	}

	return jsonconfig.NewBuilder(opts...).ParseConfig(filename)
}
