// Package toml provides a TOML document parser for the config package.
//
// Key order follows the order in which keys appear in the document, as
// reported by BurntSushi/toml metadata. Keys the metadata does not list are
// appended in lexical order. Arrays of tables are kept as opaque sequences of
// config.Mapping values.
package toml

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/0xalexb/jsonconfig/config"
	"github.com/0xalexb/jsonconfig/config/keypath"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotTable is returned when the selected section is not a table.
var ErrNotTable = errors.New("section is not a table")

const keySep = "\x00"

// Parser implements config.Parser for TOML data.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into an ordered mapping. The path parameter selects a
// table with dotted segments; an empty path returns the whole document.
func (p *Parser) Parse(data []byte, path string) (config.Mapping, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var raw map[string]any

	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	order := make(map[string]int)
	for i, key := range meta.Keys() {
		joined := strings.Join(key, keySep)
		if _, seen := order[joined]; !seen {
			order[joined] = i
		}
	}

	builder := orderedBuilder{order: order}

	if path == "" {
		return builder.table(nil, raw), nil
	}

	prefix := keypath.Split(path)

	section, err := lookup(raw, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	return builder.table(prefix, section), nil
}

func lookup(raw map[string]any, path keypath.Path) (map[string]any, error) {
	current := raw

	for _, key := range path {
		value, ok := current[key]
		if !ok {
			return nil, ErrPathNotFound
		}

		current, ok = value.(map[string]any)
		if !ok {
			return nil, ErrNotTable
		}
	}

	return current, nil
}

type orderedBuilder struct {
	order map[string]int
}

func (b orderedBuilder) table(prefix keypath.Path, raw map[string]any) config.Mapping {
	keys := slices.Collect(maps.Keys(raw))
	slices.SortFunc(keys, func(left, right string) int {
		leftPos, leftKnown := b.order[strings.Join(prefix.Join(left), keySep)]
		rightPos, rightKnown := b.order[strings.Join(prefix.Join(right), keySep)]

		switch {
		case leftKnown && rightKnown:
			return cmp.Compare(leftPos, rightPos)
		case leftKnown:
			return -1
		case rightKnown:
			return 1
		default:
			return strings.Compare(left, right)
		}
	})

	mapping := make(config.Mapping, 0, len(keys))
	for _, key := range keys {
		mapping = append(mapping, config.Field{Key: key, Value: b.value(prefix.Join(key), raw[key])})
	}

	return mapping
}

func (b orderedBuilder) value(path keypath.Path, value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return b.table(path, typed)
	case []map[string]any:
		tables := make([]any, len(typed))
		for i, item := range typed {
			tables[i] = b.table(path, item)
		}

		return tables
	case []any:
		items := make([]any, len(typed))
		for i, item := range typed {
			items[i] = b.value(path, item)
		}

		return items
	default:
		return value
	}
}
