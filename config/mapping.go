package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// Field is a single key/value pair of a Mapping.
type Field struct {
	Key   string
	Value any
}

// Mapping is an insertion-ordered document mapping. Values are scalars
// (string, int64, float64, bool, nil), opaque sequences, or nested mappings.
type Mapping []Field

// FromMap builds a Mapping from a Go map. Go maps carry no order, so keys are
// sorted to keep iteration deterministic. Nested maps are converted too,
// including maps held inside []any sequences.
func FromMap(source map[string]any) Mapping {
	keys := slices.Sorted(maps.Keys(source))

	mapping := make(Mapping, 0, len(keys))
	for _, key := range keys {
		mapping = append(mapping, Field{Key: key, Value: orderedValue(source[key])})
	}

	return mapping
}

func orderedValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return FromMap(typed)
	case []any:
		items := make([]any, len(typed))
		for i, item := range typed {
			items[i] = orderedValue(item)
		}

		return items
	default:
		return value
	}
}

// Get returns the value stored under key.
func (m Mapping) Get(key string) (any, bool) {
	for _, field := range m {
		if field.Key == key {
			return field.Value, true
		}
	}

	return nil, false
}

// Keys returns the keys in insertion order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, field := range m {
		keys[i] = field.Key
	}

	return keys
}

// ToMap converts the mapping, recursively, into unordered Go maps. Mappings
// inside []any sequences are converted as well.
func (m Mapping) ToMap() map[string]any {
	result := make(map[string]any, len(m))
	for _, field := range m {
		result[field.Key] = plainValue(field.Value)
	}

	return result
}

func plainValue(value any) any {
	if nested, ok := asMapping(value); ok {
		return nested.ToMap()
	}

	if items, ok := value.([]any); ok {
		plain := make([]any, len(items))
		for i, item := range items {
			plain[i] = plainValue(item)
		}

		return plain
	}

	return value
}

// MarshalJSON encodes the mapping as a compact JSON object, keeping key order.
func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, field := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", field.Key, err)
		}

		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding value of %q: %w", field.Key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML exposes the mapping to goccy/go-yaml as an ordered map.
func (m Mapping) MarshalYAML() (any, error) {
	slice := make(yaml.MapSlice, len(m))
	for i, field := range m {
		slice[i] = yaml.MapItem{Key: field.Key, Value: field.Value}
	}

	return slice, nil
}

// asMapping reports whether value is one of the supported mapping shapes and
// returns it as a Mapping.
func asMapping(value any) (Mapping, bool) {
	switch typed := value.(type) {
	case Mapping:
		return typed, true
	case map[string]any:
		return FromMap(typed), true
	case yaml.MapSlice:
		mapping := make(Mapping, len(typed))
		for i, item := range typed {
			mapping[i] = Field{Key: fmt.Sprint(item.Key), Value: item.Value}
		}

		return mapping, true
	default:
		return nil, false
	}
}
