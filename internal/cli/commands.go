package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/0xalexb/jsonconfig"
	"github.com/0xalexb/jsonconfig/config"
	"github.com/0xalexb/jsonconfig/config/keypath"
)

func newGetCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a dotted path as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(args[0])
			if err != nil {
				return err
			}

			value, err := cfg.Get(args[1])
			if err != nil {
				return err
			}

			data, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("encoding value: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return err
		},
	}
}

func newKeysCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file>",
		Short: "List every leaf field as a dotted path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(args[0])
			if err != nil {
				return err
			}

			for key := range cfg.Keys() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newDumpCommand(load loader) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the loaded configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(args[0])
			if err != nil {
				return err
			}

			output, err := render(cfg, format)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)

			return err
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "json", "Output format: json, yaml or debug")

	return cmd
}

func render(cfg *config.Config, format string) (string, error) {
	switch format {
	case "json":
		return cfg.ToJSON()
	case "yaml":
		data, err := yaml.Marshal(cfg.ToDict())
		if err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}

		return strings.TrimSuffix(string(data), "\n"), nil
	case "debug":
		return cfg.String(), nil
	default:
		return "", fmt.Errorf("%w %q", jsonconfig.ErrUnsupportedFormat, format)
	}
}

func newValidateCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Load files and report whether they are valid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, filename := range args {
				_, err := load(filename)
				if err != nil {
					return fmt.Errorf("%s: %w", filename, err)
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", filename)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newEnvPathCommand() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "env-path <NAME>...",
		Short: "Show the config path an environment variable name maps to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				trimmed := name
				if prefix != "" {
					trimmed = strings.TrimPrefix(name, prefix+"_")
				}

				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, keypath.ParseEnvName(trimmed))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Prefix to strip before parsing")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), jsonconfig.VersionString())

			return err
		},
	}
}
