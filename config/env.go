package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/0xalexb/jsonconfig/config/keypath"
)

// MergeWithEnvVariables merges every process environment variable named
// PREFIX_<PATH> into the node. See MergeWithEnv.
func (n *Node) MergeWithEnvVariables(prefix string) error {
	return n.MergeWithEnv(prefix, os.Environ())
}

// MergeWithEnv merges the KEY=VALUE entries of environ whose key starts with
// prefix followed by an underscore. The rest of the key is parsed with
// keypath.ParseEnvName and the string value is upserted at that path.
// Other entries are ignored. Matching entries are applied in key order.
func (n *Node) MergeWithEnv(prefix string, environ []string) error {
	marker := prefix + "_"

	type variable struct {
		name  string
		value string
	}

	var matched []variable

	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, marker) {
			continue
		}

		matched = append(matched, variable{name: name, value: value})
	}

	slices.SortFunc(matched, func(a, b variable) int {
		return strings.Compare(a.name, b.name)
	})

	for _, env := range matched {
		path := keypath.ParseEnvName(strings.TrimPrefix(env.name, marker))
		if len(path) == 0 {
			continue
		}

		err := n.UpdatePath(path, env.value, true)
		if err != nil {
			return fmt.Errorf("merging environment variable %s: %w", env.name, err)
		}

		n.logger.Debug("merged environment variable",
			slog.String("variable", env.name),
			slog.String("path", n.path.Join(path...).String()),
		)
	}

	return nil
}
